// Public domain.

package main

import (
	"github.com/soniakeys/exit"

	"github.com/sszlab/freqloop/internal/runner"
)

func main() {
	defer exit.Handler()
	if err := runner.Execute(); err != nil {
		exit.Log(err)
	}
}
