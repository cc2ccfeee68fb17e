// SPDX-License-Identifier: MIT
// Command pca reduces a delimited numeric table to its leading principal
// components.
//
// Usage:
//
//	pca --input data.tsv --dimensions 2 [--solver svd|eigensym|jacobi]
//	    [--delimiter tab|comma|<char>] [--canonical-signs] [--scatter plot.json] [--verbose]
//
// The retained directions and their explained-variance ratios go to stderr
// via the logger; the reduced table goes to stdout in the input delimiter.
package main

import (
	"fmt"
	"os"
	"unicode/utf8"

	flags "github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pca/dataset"
	"github.com/katalvlaran/pca/pca"
	"github.com/katalvlaran/pca/scatter"
)

type options struct {
	Input          string `short:"i" long:"input" description:"delimited input table (one sample per line)" required:"true"`
	Delimiter      string `short:"d" long:"delimiter" description:"field delimiter: tab, comma or a single character" default:"tab"`
	Dimensions     int    `short:"k" long:"dimensions" description:"number of principal components to keep" default:"2"`
	Solver         string `long:"solver" description:"decomposition routine" choice:"svd" choice:"eigensym" choice:"jacobi" default:"svd"`
	CanonicalSigns bool   `long:"canonical-signs" description:"orient each component so its largest entry is positive"`
	Scatter        string `long:"scatter" description:"write original/projected point sets as JSON to this file"`
	Verbose        bool   `short:"v" long:"verbose" description:"log every pipeline stage"`
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logger.SetOutput(os.Stderr)
	if opts.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	if err := run(opts, logger); err != nil {
		logger.WithError(err).Error("pca failed")
		os.Exit(1)
	}
}

func run(opts options, logger *logrus.Logger) error {
	delim, err := parseDelimiter(opts.Delimiter)
	if err != nil {
		return err
	}
	solver, err := pca.ParseSolver(opts.Solver)
	if err != nil {
		return err
	}

	rows, err := dataset.ReadFile(opts.Input, dataset.WithDelimiter(delim))
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{"input": opts.Input, "samples": len(rows)}).Info("loaded dataset")

	pcaOpts := []pca.Option{pca.WithSolver(solver), pca.WithLogger(logger)}
	if opts.CanonicalSigns {
		pcaOpts = append(pcaOpts, pca.WithCanonicalSigns())
	}
	p := pca.New(pcaOpts...)
	reduced, err := p.Execute(rows, opts.Dimensions)
	if err != nil {
		return err
	}
	res := p.Result()
	if res == nil {
		logger.Warn("empty dataset, nothing to reduce")
		return nil
	}

	ratios := res.ExplainedVarianceRatio()
	for i, c := range res.RetainedComponents() {
		logger.WithFields(logrus.Fields{
			"component": i,
			"variance":  c.Variance,
			"ratio":     ratios[i],
			"direction": c.Direction,
		}).Info("retained component")
	}

	if err := dataset.Write(os.Stdout, reduced, delim); err != nil {
		return err
	}

	if opts.Scatter != "" {
		if err := writeScatter(opts.Scatter, res); err != nil {
			return err
		}
		logger.WithField("path", opts.Scatter).Info("wrote scatter data")
	}

	return nil
}

func writeScatter(path string, res *pca.Result) error {
	plot, err := scatter.Build(res)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := plot.Encode(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func parseDelimiter(s string) (rune, error) {
	switch s {
	case "tab", `\t`:
		return '\t', nil
	case "comma":
		return ',', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("delimiter must be tab, comma or one character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)

	return r, nil
}
