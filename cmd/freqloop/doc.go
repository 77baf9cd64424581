/*
Command freqloop evaluates relativistic frequency-comparison scenarios
and writes a JSON report.

Program overview

The program builds a set of named scenarios from clock loops, orbital
trajectories and published gravitational redshift experiments, evaluates
each one under a selected spacetime model, and reports whether the
computed observables stay within their acceptance bounds.

Scenarios cover three groups:

  Loop closure      three-clock delta loops, static and along trajectories,
                    plus path independence of the accumulated delta.
  Decomposition     splitting the total frequency shift into its velocity
                    and gravity parts and checking the sum against the total.
  Experiments       Pound-Rebka, Pound-Snider, Gravity Probe A, the GPS
                    daily correction, Galileo 5 and 6, Tokyo Skytree, and
                    the Cassini Shapiro delay.

Command line usage

  freqloop run [options]     Evaluate scenarios, write report.
  freqloop list              List scenario names with descriptions.

  Options:
       -o <report-file>
       -w <workers>
       -m <model>
       -c <catalog-file>
       -s <scenario>[,<scenario>...]

The model is one of gr, ssz or ssz-tanh.  With -s only the named
scenarios are evaluated; the default is all of them.  Run exits with an
error if any evaluated scenario fails.

Each option has an environment variable fallback: FREQLOOP_OUTPUT,
FREQLOOP_WORKERS, FREQLOOP_MODEL and FREQLOOP_CATALOG.  A flag given on
the command line takes precedence.

File formats

The report is a JSON document with one entry per scenario holding the
scenario parameters, computed values, the pass flag and, for experiment
scenarios, the deviation from the measured value in units of the
combined uncertainty.

The optional catalog file supplies extra experiment records in YAML.
Each record lists name, year, citation, measured value, uncertainty,
unit and the predicted value:

  - name: my-tower-experiment
    year: 2024
    citation: Example et al. 2024
    measured: 2.5e-15
    uncertainty: 0.2e-15
    unit: fractional frequency shift
    prediction: 2.46e-15

Records with a name the program knows are predicted from first
principles; unknown records are checked against the prediction field.

-------------
Public domain.
*/
package main
