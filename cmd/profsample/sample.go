// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/profilekit/profile"
	"github.com/katalvlaran/profilekit/simctx"
	"github.com/katalvlaran/profilekit/store"
)

var errGrid = errors.New("grid needs --n >= 2 and --from < --to")

// grid returns n evenly spaced points from lo to hi inclusive.
func grid(lo, hi float64, n int) ([]float64, error) {
	if n < 2 || !(lo < hi) {
		return nil, fmt.Errorf("%w (got n=%d, from=%g, to=%g)", errGrid, n, lo, hi)
	}
	pts := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range pts {
		pts[i] = lo + float64(i)*step
	}
	pts[n-1] = hi
	return pts, nil
}

// sampleLine evaluates p along xs; a two-axis profile is cut at y.
func sampleLine(p *profile.Profile, xs []float64, y float64) []store.Sample {
	out := make([]store.Sample, 0, len(xs))
	if f, ok := p.Func1D(); ok {
		for _, x := range xs {
			out = append(out, store.Sample{X: x, Value: f(x)})
		}
		return out
	}
	f, _ := p.Func2D()
	for _, x := range xs {
		out = append(out, store.Sample{X: x, Y: y, Value: f(x, y)})
	}
	return out
}

// sampleGrid evaluates a two-axis profile on xs × ys.
func sampleGrid(p *profile.Profile, xs, ys []float64) []store.Sample {
	f, ok := p.Func2D()
	if !ok {
		return sampleLine(p, xs, 0)
	}
	out := make([]store.Sample, 0, len(xs)*len(ys))
	for _, x := range xs {
		for _, y := range ys {
			out = append(out, store.Sample{X: x, Y: y, Value: f(x, y)})
		}
	}
	return out
}

// defaultSpan is the natural sampling range of p: [0, duration] in time,
// [0, domainLength[axis]] in space.
func defaultSpan(sc simctx.Context, p *profile.Profile, axis int) (float64, error) {
	if p.Name().Temporal() {
		return sc.RequireDuration()
	}
	if l, ok := sc.DomainLength(axis); ok {
		return l, nil
	}
	return 0, fmt.Errorf("axis %d: %w", axis, simctx.ErrPrecursorNotSet)
}

func newSampleCmd(a *app) *cobra.Command {
	var (
		from, to, y float64
		n           int
	)
	cmd := &cobra.Command{
		Use:   "sample <id>",
		Short: "Print a table of sampled values",
		Long: `sample evaluates a profile at --n evenly spaced points of [--from, --to].
Without --to the range ends at the domain length (spatial) or duration
(temporal). Two-axis profiles are cut along x at --y.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			it, err := a.build(args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("to") {
				if to, err = defaultSpan(a.sc, it.Profile, 0); err != nil {
					return fmt.Errorf("%s: --to: %w", it.ID, err)
				}
			}
			xs, err := grid(from, to, n)
			if err != nil {
				return err
			}
			a.logger.Debug("sampling", "id", it.ID, "shape", it.Profile.Name(), "from", from, "to", to, "n", n)

			out := cmd.OutOrStdout()
			st := newStyles(out)
			twoAxis := it.Profile.Arity() == 2
			if twoAxis {
				fmt.Fprintln(out, st.header.Render(fmt.Sprintf("%12s  %12s  %14s", "x", "y", it.ID)))
			} else {
				fmt.Fprintln(out, st.header.Render(fmt.Sprintf("%12s  %14s", "x", it.ID)))
			}
			for _, smp := range sampleLine(it.Profile, xs, y) {
				if twoAxis {
					fmt.Fprintf(out, "%12.6g  %12.6g  %14.8g\n", smp.X, smp.Y, smp.Value)
				} else {
					fmt.Fprintf(out, "%12.6g  %14.8g\n", smp.X, smp.Value)
				}
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&from, "from", 0, "First sampled coordinate")
	cmd.Flags().Float64Var(&to, "to", 0, "Last sampled coordinate (default: domain length or duration)")
	cmd.Flags().IntVar(&n, "n", 11, "Number of points")
	cmd.Flags().Float64Var(&y, "y", 0, "Fixed y coordinate for two-axis profiles")
	return cmd
}
