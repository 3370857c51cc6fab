// Package main provides the varlift command-line tool.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/inodb/varlift/internal/cachestore"
	"github.com/inodb/varlift/internal/duckdb"
	"github.com/inodb/varlift/internal/ensembl"
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "varlift",
		Short: "Convert protein-level variant nomenclature to coding and genomic coordinates",
		Long: `varlift resolves an HGVS-style protein change (e.g. FGFR3:p.R248C) against
the Ensembl annotation service, selects the best-matching transcript, and
derives the coding- and genomic-level coordinates, including strand-aware
sequence transformation.`,
		Version:       fmt.Sprintf("%s (%s) built %s", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd)
		},
	}

	root.PersistentFlags().String("assembly", "current", "Reference assembly: current, 37, 38, or grchXX")
	root.PersistentFlags().String("species", "human", "Species name for annotation queries")
	root.PersistentFlags().String("cache-mode", "memory", "Response cache: off, memory, disk")
	root.PersistentFlags().String("cache-path", "", "DuckDB response cache path (default: ~/.varlift/responses.duckdb)")
	root.PersistentFlags().Duration("cache-ttl", 24*time.Hour, "Response cache entry lifetime")
	root.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	root.AddCommand(newResolveCmd())
	root.AddCommand(newLookupCmd())
	root.AddCommand(newSequenceCmd())
	root.AddCommand(newConfigCmd())

	return root
}

// initConfig binds flags into viper and loads ~/.varlift.yaml if present.
func initConfig(cmd *cobra.Command) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if err := viper.BindPFlags(cmd.Root().PersistentFlags()); err != nil {
		return err
	}

	viper.SetEnvPrefix("VARLIFT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	home, err := os.UserHomeDir()
	if err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigName(".varlift")
		viper.SetConfigType("yaml")
		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !os.IsNotExist(err) {
				return fmt.Errorf("reading config: %w", err)
			}
		}
	}
	return nil
}

// newLogger builds the CLI logger: human-readable in verbose mode,
// silent otherwise.
func newLogger() (*zap.Logger, error) {
	if viper.GetBool("verbose") {
		return zap.NewDevelopment()
	}
	return zap.NewNop(), nil
}

// newClient builds the Ensembl client from the effective configuration,
// wiring in the configured response cache.
func newClient(logger *zap.Logger) (*ensembl.Client, func(), error) {
	client, err := ensembl.NewClient(viper.GetString("assembly"))
	if err != nil {
		return nil, nil, err
	}
	client.SetLogger(logger)

	cleanup := func() {}
	ttl := viper.GetDuration("cache-ttl")

	switch mode := viper.GetString("cache-mode"); mode {
	case "off":
	case "memory":
		client.SetCache(cachestore.NewMemoryCache(ttl, 10*time.Minute), ttl)
	case "disk":
		path := viper.GetString("cache-path")
		if path == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, nil, fmt.Errorf("cannot determine home directory: %w", err)
			}
			path = home + "/.varlift/responses.duckdb"
		}
		store, err := duckdb.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("open response cache: %w", err)
		}
		cleanup = func() { store.Close() }
		front := cachestore.NewMemoryCache(ttl, 10*time.Minute)
		client.SetCache(cachestore.NewLayered(front, store), ttl)
	default:
		return nil, nil, fmt.Errorf("unknown cache mode %q (expected off, memory, or disk)", mode)
	}

	return client, cleanup, nil
}
