package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/inodb/varlift/internal/output"
	"github.com/inodb/varlift/internal/resolve"
)

func newResolveCmd() *cobra.Command {
	var (
		outputFile string
		workers    int
	)

	cmd := &cobra.Command{
		Use:   "resolve <hgvs>...",
		Short: "Resolve protein-level variant strings to coding and genomic coordinates",
		Example: `  varlift resolve FGFR3:p.R248C
  varlift resolve --assembly 37 FGFR3:p.R248C ALK:p.F1174I
  varlift resolve --assembly grch37 -o resolved.tsv BRAF:p.V600E`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, args, outputFile, workers)
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().IntVar(&workers, "workers", 0, "Concurrent resolutions for multiple inputs (0 = NumCPU)")

	return cmd
}

func runResolve(cmd *cobra.Command, inputs []string, outputFile string, workers int) error {
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

	resolver := resolve.NewResolver(client, viper.GetString("species"))
	resolver.SetLogger(logger)

	out := os.Stdout
	if outputFile != "" {
		out, err = os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer out.Close()
	}

	writer := output.NewTabWriter(out)
	if err := writer.WriteHeader(); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	ctx := cmd.Context()

	// A single input resolves inline; batches go through the worker pool.
	if len(inputs) == 1 {
		v, err := resolver.Resolve(ctx, inputs[0])
		if err != nil {
			logger.Warn("resolution failed", zap.String("input", inputs[0]), zap.Error(err))
			if werr := writer.Write(inputs[0], v); werr != nil {
				return werr
			}
			if ferr := writer.Flush(); ferr != nil {
				return ferr
			}
			return err
		}
		if err := writer.Write(inputs[0], v); err != nil {
			return err
		}
		return writer.Flush()
	}

	items := make(chan resolve.WorkItem, len(inputs))
	for i, in := range inputs {
		items <- resolve.WorkItem{Seq: i, Input: in}
	}
	close(items)

	var failed int
	results := resolver.ParallelResolve(ctx, items, workers)
	if err := resolve.OrderedCollect(results, func(r resolve.WorkResult) error {
		if r.Err != nil {
			failed++
			logger.Warn("resolution failed", zap.String("input", r.Input), zap.Error(r.Err))
		}
		return writer.Write(r.Input, r.Variant)
	}); err != nil {
		return err
	}

	if err := writer.Flush(); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d resolutions failed", failed, len(inputs))
	}
	return nil
}
