// Package report ranks estimated circuits and renders them as text or JSON.
package report

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/oqtopus-team/entcap/catalog"
	"github.com/oqtopus-team/entcap/entangle"
	"github.com/tidwall/pretty"
)

var jsonIter = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	FormatText = "text"
	FormatJSON = "json"
)

type Result struct {
	Name       string  `json:"name"`
	Qubits     int     `json:"qubits"`
	Parameters int     `json:"parameters"`
	Capability float64 `json:"capability"`
	StdDev     float64 `json:"std_dev"`
	StdErr     float64 `json:"std_err"`
	Samples    int     `json:"samples"`
	Seed       uint64  `json:"seed"`
}

func NewResult(e catalog.Entry, est entangle.Estimate) Result {
	return Result{
		Name:       e.Name,
		Qubits:     e.Program.QubitCount(),
		Parameters: e.Program.ParameterCount(),
		Capability: est.Mean,
		StdDev:     est.StdDev,
		StdErr:     est.StdErr,
		Samples:    est.Samples,
		Seed:       est.Seed,
	}
}

// Summary is the one-line form printed by the estimate command.
func (r Result) Summary() string {
	return fmt.Sprintf("%s: %.4f ± %.4f (std:%.4f samples:%d seed:%d)",
		r.Name, r.Capability, r.StdErr, r.StdDev, r.Samples, r.Seed)
}

type Report struct {
	RunID     string    `json:"run_id"`
	Version   string    `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	Results   []Result  `json:"results"`
}

func New(version string) *Report {
	return &Report{
		RunID:     uuid.NewString(),
		Version:   version,
		CreatedAt: time.Now().UTC(),
		Results:   []Result{},
	}
}

func (r *Report) Add(res Result) {
	r.Results = append(r.Results, res)
}

// Rank orders results by descending capability. Ties keep their insertion order.
func (r *Report) Rank() {
	sort.SliceStable(r.Results, func(i, j int) bool {
		return r.Results[i].Capability > r.Results[j].Capability
	})
}

// WriteText prints one "name: capability" line per result.
func (r *Report) WriteText(w io.Writer) error {
	for _, res := range r.Results {
		if _, err := fmt.Fprintf(w, "%s: %.4f\n", res.Name, res.Capability); err != nil {
			return errors.Wrap(err, "write text report")
		}
	}
	return nil
}

func (r *Report) WriteJSON(w io.Writer, indent bool) error {
	st, err := jsonIter.Marshal(r)
	if err != nil {
		return errors.Wrap(err, "marshal report")
	}
	if indent {
		st = pretty.Pretty(st)
	} else {
		st = append(pretty.Ugly(st), '\n')
	}
	if _, err := w.Write(st); err != nil {
		return errors.Wrap(err, "write json report")
	}
	return nil
}

func (r *Report) Write(w io.Writer, format string, indent bool) error {
	switch format {
	case "", FormatText:
		return r.WriteText(w)
	case FormatJSON:
		return r.WriteJSON(w, indent)
	default:
		return errors.Errorf("unknown report format %q", format)
	}
}
