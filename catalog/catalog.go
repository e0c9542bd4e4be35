// Package catalog holds named circuit programs: the built-in four-qubit study set
// and catalogs loaded from TOML files.
package catalog

import (
	"fmt"
	"sort"

	"github.com/go-faster/errors"
	"github.com/oqtopus-team/entcap/circuit"
	"github.com/oqtopus-team/entcap/common"
)

type Entry struct {
	Name    string
	Program *circuit.Program
}

// Catalog keeps entries in insertion order.
type Catalog struct {
	entries []Entry
	index   map[string]int
}

func New() *Catalog {
	return &Catalog{index: make(map[string]int)}
}

func (c *Catalog) Add(name string, p *circuit.Program) error {
	if name == "" {
		return fmt.Errorf("circuit name is empty")
	}
	if p == nil {
		return fmt.Errorf("circuit %s has no program", name)
	}
	key := common.NormalizeName(name)
	if _, ok := c.index[key]; ok {
		return fmt.Errorf("circuit %s is defined twice", name)
	}
	c.index[key] = len(c.entries)
	c.entries = append(c.entries, Entry{Name: name, Program: p})
	return nil
}

func (c *Catalog) Len() int { return len(c.entries) }

func (c *Catalog) Entries() []Entry {
	return append([]Entry(nil), c.entries...)
}

func (c *Catalog) Names() []string {
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.Name
	}
	return names
}

// Lookup matches names case-insensitively, ignoring "_" and "-".
func (c *Catalog) Lookup(name string) (Entry, bool) {
	i, ok := c.index[common.NormalizeName(name)]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// Select returns the named entries in catalog order. No names selects everything.
func (c *Catalog) Select(names ...string) ([]Entry, error) {
	if len(names) == 0 {
		return c.Entries(), nil
	}
	picked := make([]int, 0, len(names))
	seen := make(map[int]bool)
	var missing []string
	for _, n := range names {
		i, ok := c.index[common.NormalizeName(n)]
		if !ok {
			missing = append(missing, n)
			continue
		}
		if !seen[i] {
			seen[i] = true
			picked = append(picked, i)
		}
	}
	if len(missing) > 0 {
		return nil, errors.Errorf("unknown circuits %v, known circuits are %v", missing, c.Names())
	}
	sort.Ints(picked)
	entries := make([]Entry, len(picked))
	for k, i := range picked {
		entries[k] = c.entries[i]
	}
	return entries, nil
}
