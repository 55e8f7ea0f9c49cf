package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/plaincents/plaincents/internal/config"
	"github.com/plaincents/plaincents/internal/synth"
)

const previewRows = 10

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := newRootCommand(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(cfg *config.Config) *cobra.Command {
	var (
		seed = cfg.Synth.Seed
		year = cfg.Synth.Year
		out  = filepath.Join(cfg.Data.RawDir, "synthetic_12mo.csv")
	)

	cmd := &cobra.Command{
		Use:   "synth",
		Short: "Write a reproducible year of synthetic TD transactions",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows := synth.Generate(synth.Options{Seed: seed, Year: year})

			if err := writeFile(out, rows); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Wrote %d rows to %s\n\nFirst %d rows:\n", len(rows), out, previewRows)

			return synth.WriteCSV(w, rows[:min(previewRows, len(rows))])
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", seed, "random seed")
	cmd.Flags().IntVar(&year, "year", year, "calendar year of the generated transactions")
	cmd.Flags().StringVarP(&out, "out", "o", out, "output CSV path")

	return cmd
}

func writeFile(path string, rows []synth.Row) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing file: %w", cerr)
		}
	}()

	if err := synth.WriteCSV(f, rows); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}

	return nil
}
