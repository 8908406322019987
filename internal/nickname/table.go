// Package nickname holds the static first-name equivalence table and the
// exclusion list of known false-positive names. Both are versioned YAML
// documents embedded at build time and loaded once into an immutable Table.
package nickname

import (
	_ "embed"
	"strings"
	"sync"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

//go:embed nicknames.yaml
var nicknamesYAML []byte

//go:embed exclusions.yaml
var exclusionsYAML []byte

type nicknameFile struct {
	Version int        `yaml:"version"`
	Groups  [][]string `yaml:"groups"`
}

type exclusionFile struct {
	Version int      `yaml:"version"`
	Names   []string `yaml:"names"`
}

// Table is an immutable lookup over nickname groups and excluded names.
// Safe for concurrent use.
type Table struct {
	version    int
	groupOf    map[string][]int
	exclusions map[string]bool
}

// Load parses the embedded tables.
func Load() (*Table, error) {
	var nf nicknameFile
	if err := yaml.Unmarshal(nicknamesYAML, &nf); err != nil {
		return nil, eris.Wrap(err, "nickname: parse nicknames")
	}
	var ef exclusionFile
	if err := yaml.Unmarshal(exclusionsYAML, &ef); err != nil {
		return nil, eris.Wrap(err, "nickname: parse exclusions")
	}

	t := &Table{
		version:    nf.Version,
		groupOf:    make(map[string][]int),
		exclusions: make(map[string]bool, len(ef.Names)),
	}
	for i, group := range nf.Groups {
		for _, name := range group {
			key := strings.ToLower(strings.TrimSpace(name))
			t.groupOf[key] = append(t.groupOf[key], i)
		}
	}
	for _, name := range ef.Names {
		t.exclusions[strings.ToLower(strings.TrimSpace(name))] = true
	}
	return t, nil
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the process-wide table, loading it on first use.
// The embedded data is static, so a parse failure is a build defect.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := Load()
		if err != nil {
			panic(err)
		}
		defaultTable = t
	})
	return defaultTable
}

// Version reports the data version of the nickname table.
func (t *Table) Version() int { return t.version }

// Equivalent reports whether two first names refer to the same given name:
// either equal (case-insensitive) or members of a shared nickname group.
// Symmetric by construction.
func (t *Table) Equivalent(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	if a == b {
		return true
	}
	for _, ga := range t.groupOf[a] {
		for _, gb := range t.groupOf[b] {
			if ga == gb {
				return true
			}
		}
	}
	return false
}

// Excluded reports whether a candidate name is on the false-positive list.
func (t *Table) Excluded(name string) bool {
	return t.exclusions[strings.ToLower(strings.TrimSpace(name))]
}
