package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"syscall"

	flags "github.com/jessevdk/go-flags"
	"github.com/massn/envordot"

	"github.com/oqtopus-team/entcap/catalog"
	"github.com/oqtopus-team/entcap/core"
	"github.com/oqtopus-team/entcap/entangle"
	"github.com/oqtopus-team/entcap/log"
	"github.com/oqtopus-team/entcap/report"

	"go.uber.org/dig"
	"go.uber.org/zap"
)

var versionByBuildFlag string
var parser *flags.Parser
var entcap *Entcap

func init() {
	if err := envordot.Load(false, ".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Not found \".env\" file. Use only environment variables. Reason:%s\n", err.Error())
	}
	entcap = &Entcap{}
	setParser(entcap)
}

type Entcap struct {
	Conf *core.Conf
}

func setParser(e *Entcap) {
	parser = flags.NewParser(e, flags.Default)
	parser.ShortDescription = "entangling capability estimator"
	parser.LongDescription = "estimates the Meyer-Wallach entangling capability of parameterized quantum circuits."
	parser.AddCommand("run", "estimate a catalog",
		"estimate every circuit of the catalog, or those given by --circuit, and print them ranked", &runCmd{})
	parser.AddCommand("estimate", "estimate one circuit",
		"estimate one circuit and print its mean with the standard error", &estimateCmd{})
	parser.AddCommand("list", "list the catalog",
		"list the circuits of the catalog with their qubit and parameter counts", &listCmd{})
}

func parse() {
	if _, err := parser.Parse(); err != nil {
		code := 1
		if fe, ok := err.(*flags.Error); ok {
			if fe.Type == flags.ErrHelp {
				code = 0
			}
		} else {
			fmt.Fprintf(os.Stderr, "entcap failed, because %s\n", err)
		}
		os.Exit(code)
	}
}

// recorder receives every estimated circuit.
type recorder interface {
	Record(report.Result)
	Close() error
}

type noRecorder struct{}

func (noRecorder) Record(report.Result) {}
func (noRecorder) Close() error         { return nil }

func (e *Entcap) provideDIContainer() (*dig.Container, error) {
	c := dig.New()
	if err := c.Provide(func() (*core.Setting, error) {
		return loadSetting(e.Conf)
	}); err != nil {
		return nil, err
	}
	if err := c.Provide(func() (*catalog.Catalog, error) {
		if e.Conf.CatalogPath == "" {
			return catalog.Default()
		}
		return catalog.LoadFile(e.Conf.CatalogPath)
	}); err != nil {
		return nil, err
	}
	if err := c.Provide(func(s *core.Setting) *entangle.Estimator {
		return entangle.NewEstimatorFromSetting(s.Estimator)
	}); err != nil {
		return nil, err
	}
	if err := c.Provide(func() *report.Report {
		return report.New(core.Version)
	}); err != nil {
		return nil, err
	}
	if err := c.Provide(func(r *report.Report) (recorder, error) {
		if e.Conf.ResultsDir == "" {
			return noRecorder{}, nil
		}
		return log.NewResultLog(e.Conf.ResultsDir, r.RunID)
	}); err != nil {
		return nil, err
	}
	return c, nil
}

// loadSetting overlays the command line on the setting file. A zero seed is
// replaced by a fresh one, which is logged so the run can be repeated.
func loadSetting(conf *core.Conf) (*core.Setting, error) {
	s, err := core.ParseSettingFromPath(conf.SettingPath)
	if err != nil {
		return nil, err
	}
	s.Override(conf)
	if s.Estimator.Seed == 0 {
		s.Estimator.Seed = rand.Uint64()
		zap.L().Info(fmt.Sprintf("no seed is given, drew seed %d", s.Estimator.Seed))
	}
	if err := s.Validate(); err != nil {
		zap.L().Error(fmt.Sprintf("invalid setting/reason:%s", err))
		return nil, err
	}
	zap.L().Debug(fmt.Sprintf("Setting is %+v", *s))
	return s, nil
}

// setup installs the logger and returns the container with a teardown to defer.
func (e *Entcap) setup() (*dig.Container, func(), error) {
	logger, err := log.SetZap(e.Conf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to setup logger. Reason:%s\n", err)
		return nil, func() {}, err
	}
	core.SetVersion(e.Conf, versionByBuildFlag)
	core.SetInfo(e.Conf)
	container, err := e.provideDIContainer()
	if err != nil {
		zap.L().Error(fmt.Sprintf("Failed to setting up DI-Container. Reason:%s", err.Error()))
		return nil, func() { logger.Sync() }, err
	}
	return container, func() { logger.Sync() }, nil
}

// runGroup runs actor until it returns or SIGINT/SIGTERM arrives.
func runGroup(actor func(context.Context) error) error {
	rc := core.NewRunContext()
	rc.AddTask("estimation", actor)
	rc.AddSignalHandler(os.Interrupt, syscall.SIGTERM)
	return rc.Run()
}

func main() {
	parse()
}
