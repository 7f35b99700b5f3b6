// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/profilekit/catalog"
	"github.com/katalvlaran/profilekit/simctx"
)

// app carries the global flags and the state resolved from them before a
// subcommand runs.
type app struct {
	configPath string
	logLevel   string
	dim        int
	domain     []float64
	duration   float64

	logger *log.Logger
	doc    catalog.Document
	sc     simctx.Context
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "profsample",
		Short: "Sample spatial and temporal profiles from a catalog",
		Long: `profsample builds the profiles declared in a YAML catalog and lets you
inspect them: list the entries, print their resolved parameters, sample
them on a grid, or export metadata and samples to a SQLite database.

Examples:
  profsample list --config profiles.yaml
  profsample describe inlet
  profsample sample inlet --from 0 --to 10 --n 11
  profsample export --db ~/.profsample/snapshot.db`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "profiles.yaml", "Path to the catalog document")
	pf.StringVar(&a.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	pf.IntVar(&a.dim, "dim", 0, "Override dimensionality (1 or 2)")
	pf.Float64SliceVar(&a.domain, "domain", nil, "Override domain lengths, one per axis")
	pf.Float64Var(&a.duration, "duration", 0, "Override simulated duration")

	root.AddCommand(
		newListCmd(a),
		newDescribeCmd(a),
		newSampleCmd(a),
		newExportCmd(a),
	)
	return root
}

// setup builds the logger, loads the catalog and applies flag overrides to
// its context.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(a.logLevel)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	a.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		ReportTimestamp: true,
		Prefix:          "profsample",
		Level:           level,
	})

	doc, err := catalog.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("dim") {
		doc.Context.Dimensionality = a.dim
	}
	if flags.Changed("domain") {
		doc.Context.DomainLength = a.domain
	}
	if flags.Changed("duration") {
		t := a.duration
		doc.Context.Duration = &t
	}
	sc, err := doc.SimContext()
	if err != nil {
		return err
	}
	a.doc, a.sc = doc, sc
	a.logger.Debug("catalog loaded",
		"path", a.configPath,
		"profiles", len(doc.Profiles),
		"dim", sc.Dimensionality(),
		"domain", sc.DomainLengths(),
	)
	return nil
}

// build rebuilds a single entry by id.
func (a *app) build(id string) (catalog.Item, error) {
	e, ok := a.doc.Find(id)
	if !ok {
		return catalog.Item{}, fmt.Errorf("no profile %q in %s", id, a.configPath)
	}
	p, err := catalog.Build(a.sc, e.Metadata)
	if err != nil {
		return catalog.Item{}, fmt.Errorf("%s: %w", id, err)
	}
	return catalog.Item{ID: id, Profile: p}, nil
}
