package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/inodb/varlift/internal/ensembl"
)

func newLookupCmd() *cobra.Command {
	var noExpand bool

	cmd := &cobra.Command{
		Use:   "lookup <id-or-symbol>",
		Short: "Look up a gene, transcript, or translation accession",
		Long: `Resolve an Ensembl accession or gene symbol. Accession lookups that fail
are retried as symbol lookups for the configured species.`,
		Example: `  varlift lookup ENST00000352904
  varlift lookup --assembly 37 FGFR3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd, args[0], !noExpand)
		},
	}

	cmd.Flags().BoolVar(&noExpand, "no-expand", false, "Skip expansion of child records")

	return cmd
}

func runLookup(cmd *cobra.Command, query string, expand bool) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	client, cleanup, err := newClient(logger)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := cmd.Context()

	result, err := client.IDLookup(ctx, query, expand)
	if errors.Is(err, ensembl.ErrLookupFailed) {
		result, err = client.SymbolLookup(ctx, query, viper.GetString("species"))
	}
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshaling lookup result: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), string(out))
	return nil
}

func newSequenceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sequence <id>",
		Short: "Fetch the raw sequence for an accession",
		Example: `  varlift sequence ENSP00000231803
  varlift sequence --assembly 37 ENST00000352904`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSequence(cmd, args[0])
		},
	}
	return cmd
}

func runSequence(cmd *cobra.Command, id string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	client, cleanup, err := newClient(logger)
	if err != nil {
		return err
	}
	defer cleanup()

	seq, err := client.SequenceLookup(cmd.Context(), id)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), seq)
	return nil
}
