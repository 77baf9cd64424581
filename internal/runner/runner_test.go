// Public domain.

package runner

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sszlab/freqloop/phys"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFromEnv(t *testing.T) {
	t.Setenv("FREQLOOP_MODEL", "ssz")
	t.Setenv("FREQLOOP_WORKERS", "3")
	cfg, err := FromEnv()
	require.NoError(t, err)
	require.Equal(t, "ssz", cfg.Model)
	require.Equal(t, 3, cfg.Workers)
	require.Equal(t, "freqloop_report.json", cfg.Output)
	require.Empty(t, cfg.Catalog)
}

func TestConfigModel(t *testing.T) {
	cst := phys.Default()
	for name, want := range map[string]string{
		"gr": "GR", "ssz": "SSZ", "ssz-tanh": "SSZ-tanh",
	} {
		m, err := Config{Model: name}.model(cst, phys.MEarth)
		require.NoError(t, err)
		require.Equal(t, want, m.Name())
	}
	_, err := Config{Model: "newton"}.model(cst, phys.MEarth)
	require.Error(t, err)
}

func TestScenarioRegistry(t *testing.T) {
	scenarios, err := Scenarios(Config{Model: "gr"})
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(scenarios), 12)
	seen := map[string]bool{}
	for _, sc := range scenarios {
		require.NotEmpty(t, sc.Name)
		require.NotEmpty(t, sc.Description)
		require.NotNil(t, sc.Run)
		require.False(t, seen[sc.Name], sc.Name)
		seen[sc.Name] = true
	}
	require.True(t, seen["static-loop"])
	require.True(t, seen["experiment-suite"])
	require.True(t, seen["horizon-behavior"])
}

func TestScenariosBadModel(t *testing.T) {
	_, err := Scenarios(Config{Model: "newton"})
	require.Error(t, err)
}

// Every built-in scenario passes its own acceptance bound under each model.
func TestAllScenariosPass(t *testing.T) {
	for _, model := range []string{"gr", "ssz", "ssz-tanh"} {
		scenarios, err := Scenarios(Config{Model: model})
		require.NoError(t, err)
		for _, sc := range scenarios {
			r, err := sc.Run()
			require.NoError(t, err, "%s/%s", model, sc.Name)
			require.True(t, r.Passed, "%s/%s deviation %g", model, sc.Name, r.Deviation)
		}
	}
}

func TestSelectScenarios(t *testing.T) {
	all, err := Scenarios(Config{Model: "gr"})
	require.NoError(t, err)

	sel, err := selectScenarios(all, []string{"path-independence", "static-loop"})
	require.NoError(t, err)
	require.Len(t, sel, 2)
	require.Equal(t, "path-independence", sel[0].Name)
	require.Equal(t, "static-loop", sel[1].Name)

	_, err = selectScenarios(all, []string{"no-such-scenario"})
	require.Error(t, err)
}

func TestRunWritesSummary(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.json")
	cfg := Config{Model: "gr", Output: out, Workers: 2}

	sum, err := Run(context.Background(), cfg, []string{"static-loop", "decomposition-iss"}, discard())
	require.NoError(t, err)
	require.Len(t, sum.Results, 2)
	require.Equal(t, 2, sum.Passed)
	require.Zero(t, sum.Failed)
	require.Equal(t, "gr", sum.Model)
	// submission order survives parallel evaluation
	require.Equal(t, "static-loop", sum.Results[0].Scenario)
	require.Equal(t, "decomposition-iss", sum.Results[1].Scenario)

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	var decoded Summary
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Equal(t, sum.Passed, decoded.Passed)
	require.Len(t, decoded.Results, 2)
}

func TestRunUnknownScenario(t *testing.T) {
	cfg := Config{Model: "gr", Output: filepath.Join(t.TempDir(), "r.json")}
	_, err := Run(context.Background(), cfg, []string{"bogus"}, discard())
	require.Error(t, err)
}

func TestRunWithCatalog(t *testing.T) {
	dir := t.TempDir()
	catalog := filepath.Join(dir, "extra.yaml")
	require.NoError(t, os.WriteFile(catalog, []byte(`
- name: tower-clock
  year: 2024
  citation: Example et al. 2024
  measured: 2.5e-15
  uncertainty: 0.2e-15
  unit: dimensionless (df/f)
  prediction: 2.46e-15
`), 0644))

	cfg := Config{Model: "gr", Output: filepath.Join(dir, "r.json"), Catalog: catalog}
	sum, err := Run(context.Background(), cfg, []string{"experiment-suite"}, discard())
	require.NoError(t, err)
	require.Equal(t, 1, sum.Passed)
	// the loaded record shows up with its own sigma column
	require.Contains(t, sum.Results[0].Values, "sigma:tower-clock")
}
