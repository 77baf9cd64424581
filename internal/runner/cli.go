// Public domain.

package runner

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Execute parses the command line and runs the selected command.
func Execute() error {
	cfg, err := FromEnv()
	if err != nil {
		return err
	}

	root := &cobra.Command{
		Use:          "freqloop",
		Short:        "relativistic frequency-comparison scenario runner",
		SilenceUsage: true,
	}

	var names []string
	run := &cobra.Command{
		Use:   "run",
		Short: "evaluate scenarios and write the JSON report",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := slog.New(slog.NewTextHandler(os.Stderr, nil))
			sum, err := Run(cmd.Context(), cfg, names, log)
			if err != nil {
				return err
			}
			if sum.Failed > 0 {
				return fmt.Errorf("%d of %d scenarios failed", sum.Failed, len(sum.Results))
			}
			return nil
		},
	}
	run.Flags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "report file")
	run.Flags().IntVarP(&cfg.Workers, "workers", "w", cfg.Workers, "parallel scenario evaluations (0 = one per CPU)")
	run.Flags().StringVarP(&cfg.Model, "model", "m", cfg.Model, "spacetime model: gr, ssz or ssz-tanh")
	run.Flags().StringVarP(&cfg.Catalog, "catalog", "c", cfg.Catalog, "extra experiment records (YAML)")
	run.Flags().StringSliceVarP(&names, "scenario", "s", nil, "scenario selection (default: all)")

	list := &cobra.Command{
		Use:   "list",
		Short: "list available scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			scenarios, err := Scenarios(cfg)
			if err != nil {
				return err
			}
			for _, sc := range scenarios {
				fmt.Fprintf(cmd.OutOrStdout(), "%-30s %s\n", sc.Name, sc.Description)
			}
			return nil
		},
	}

	root.AddCommand(run, list)
	return root.Execute()
}
