// Command demo fits the OLS regression described by a YAML run
// configuration and prints the classical summary table.
package main

import (
	"fmt"
	"os"

	"github.com/vernadici/econgo/config"
	"github.com/vernadici/econgo/dataset"
	"github.com/vernadici/econgo/regression"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: demo <run-config.yaml>")
		os.Exit(1)
	}

	cfg, err := config.Load(os.Args[1])
	if err != nil {
		fail(err)
	}

	table, err := dataset.LoadCSV(cfg.Data)
	if err != nil {
		fail(err)
	}

	y, x, names, err := table.Split(cfg.Dependent, cfg.Regressors)
	if err != nil {
		fail(err)
	}

	spec := cfg.Spec()
	spec.VarNames = names

	fit, err := regression.Estimate(y, x, spec, regression.DefaultOptions())
	if err != nil {
		fail(err)
	}
	fmt.Println(fit.Summary())
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "demo:", err)
	os.Exit(1)
}
