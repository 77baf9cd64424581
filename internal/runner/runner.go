// Public domain.

// Package runner drives batch evaluation of the named scenarios and writes
// the machine-readable run report.  Scenarios have no data dependency on
// each other, so they fan out over a bounded worker pool; results are kept
// in submission order regardless of completion order.
package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// Summary is the report artifact of one run.
type Summary struct {
	GeneratedAt time.Time `json:"generated_at"`
	Model       string    `json:"model"`
	Results     []Result  `json:"results"`
	Passed      int       `json:"passed"`
	Failed      int       `json:"failed"`
}

// Run evaluates the selected scenarios in parallel and writes the summary
// to cfg.Output.  An empty names selection runs everything.
func Run(ctx context.Context, cfg Config, names []string, log *slog.Logger) (Summary, error) {
	scenarios, err := Scenarios(cfg)
	if err != nil {
		return Summary{}, err
	}
	if len(names) > 0 {
		scenarios, err = selectScenarios(scenarios, names)
		if err != nil {
			return Summary{}, err
		}
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// results indexed by submission order, as in the solver dispatcher:
	// a fast scenario never overtakes a slow one in the report.
	results := make([]Result, len(scenarios))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, sc := range scenarios {
		i, sc := i, sc
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			r, err := sc.Run()
			if err != nil {
				return fmt.Errorf("scenario %s: %w", sc.Name, err)
			}
			r.Scenario = sc.Name
			results[i] = r
			log.Info("scenario done",
				"scenario", sc.Name,
				"passed", r.Passed,
				"deviation", r.Deviation,
				"elapsed", time.Since(start))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	sum := Summary{
		GeneratedAt: time.Now().UTC(),
		Model:       cfg.Model,
		Results:     results,
	}
	for _, r := range results {
		if r.Passed {
			sum.Passed++
		} else {
			sum.Failed++
		}
	}
	if err := writeSummary(cfg.Output, sum); err != nil {
		return Summary{}, err
	}
	log.Info("run complete",
		"passed", sum.Passed, "failed", sum.Failed, "report", cfg.Output)
	return sum, nil
}

func selectScenarios(all []Scenario, names []string) ([]Scenario, error) {
	byName := make(map[string]Scenario, len(all))
	for _, sc := range all {
		byName[sc.Name] = sc
	}
	out := make([]Scenario, 0, len(names))
	for _, n := range names {
		sc, ok := byName[n]
		if !ok {
			return nil, fmt.Errorf("runner: unknown scenario %q", n)
		}
		out = append(out, sc)
	}
	return out, nil
}

func writeSummary(path string, sum Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("runner: %w", err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(sum); err != nil {
		f.Close()
		return fmt.Errorf("runner: encode summary: %w", err)
	}
	return f.Close()
}
