package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-faster/errors"
	"github.com/oqtopus-team/entcap/catalog"
	"github.com/oqtopus-team/entcap/core"
	"github.com/oqtopus-team/entcap/entangle"
	"github.com/oqtopus-team/entcap/report"
	"go.uber.org/zap"
)

// estimateEntries estimates entries in order and stops between circuits once
// ctx is done.
func estimateEntries(ctx context.Context, entries []catalog.Entry, est *entangle.Estimator,
	samples int, rep *report.Report, rec recorder) error {
	for i, e := range entries {
		if err := ctx.Err(); err != nil {
			return errors.Wrapf(err, "interrupted before %s", e.Name)
		}
		zap.L().Info(fmt.Sprintf("estimating %s (%d/%d)", e.Name, i+1, len(entries)))
		start := time.Now()
		r, err := est.EstimateWithStats(e.Program, samples)
		if err != nil {
			return errors.Wrapf(err, "estimate %s", e.Name)
		}
		res := report.NewResult(e, *r)
		rep.Add(res)
		rec.Record(res)
		zap.L().Debug(fmt.Sprintf("%s took %s", e.Name, time.Since(start)))
	}
	return nil
}

type runCmd struct {
	Circuits []string `short:"c" long:"circuit" description:"circuit to estimate, repeatable, every circuit when omitted"`
}

func (c *runCmd) Execute(args []string) error {
	container, teardown, err := entcap.setup()
	defer teardown()
	if err != nil {
		return err
	}
	return container.Invoke(func(cat *catalog.Catalog, est *entangle.Estimator, s *core.Setting,
		rep *report.Report, rec recorder) error {
		defer rec.Close()
		entries, err := cat.Select(c.Circuits...)
		if err != nil {
			return err
		}
		zap.L().Info(fmt.Sprintf("run %s: %d circuits, %d samples each, seed %d",
			rep.RunID, len(entries), s.Estimator.Samples, est.Seed()))
		if err := runGroup(func(ctx context.Context) error {
			return estimateEntries(ctx, entries, est, s.Estimator.Samples, rep, rec)
		}); err != nil {
			zap.L().Error("run stopped", zap.Error(err))
			return err
		}
		rep.Rank()
		return rep.Write(os.Stdout, s.Output.Format, s.Output.Pretty)
	})
}

type estimateCmd struct {
	Args struct {
		Circuit string `positional-arg-name:"circuit" required:"yes"`
	} `positional-args:"yes"`
}

func (c *estimateCmd) Execute(args []string) error {
	container, teardown, err := entcap.setup()
	defer teardown()
	if err != nil {
		return err
	}
	return container.Invoke(func(cat *catalog.Catalog, est *entangle.Estimator, s *core.Setting,
		rep *report.Report, rec recorder) error {
		defer rec.Close()
		entries, err := cat.Select(c.Args.Circuit)
		if err != nil {
			return err
		}
		if err := runGroup(func(ctx context.Context) error {
			return estimateEntries(ctx, entries, est, s.Estimator.Samples, rep, rec)
		}); err != nil {
			return err
		}
		if s.Output.Format == report.FormatJSON {
			return rep.WriteJSON(os.Stdout, s.Output.Pretty)
		}
		_, err = fmt.Fprintln(os.Stdout, rep.Results[0].Summary())
		return err
	})
}

type listCmd struct {
	Verbose bool `short:"v" long:"verbose" description:"print the gates of every circuit"`
}

func (c *listCmd) Execute(args []string) error {
	container, teardown, err := entcap.setup()
	defer teardown()
	if err != nil {
		return err
	}
	return container.Invoke(func(cat *catalog.Catalog) error {
		return writeList(os.Stdout, cat, c.Verbose)
	})
}

func writeList(w io.Writer, cat *catalog.Catalog, verbose bool) error {
	for _, e := range cat.Entries() {
		p := e.Program
		if _, err := fmt.Fprintf(w, "%s qubits:%d params:%d gates:%d\n",
			e.Name, p.QubitCount(), p.ParameterCount(), p.Len()); err != nil {
			return err
		}
		if !verbose {
			continue
		}
		for _, op := range p.Operations() {
			if _, err := fmt.Fprintf(w, "  %s\n", op); err != nil {
				return err
			}
		}
	}
	return nil
}
