package vocab

import (
	_ "embed"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed tables.yaml
var builtinTables []byte

var builtin map[string]*Table

// Built-in tables, loaded from tables.yaml at init.
var (
	ComponentTypes   *Table
	Topologies       *Table
	Strands          *Table
	Roles            *Table
	Access           *Table
	RoleIntegrations *Table
	Refinements      *Table
	Orientations     *Table
	Encodings        *Table
	Restrictions     *Table
	Languages        *Table
	Frameworks       *Table
	Directions       *Table
	InteractionTypes *Table
	ParticipantRoles *Table
)

func init() {
	tables, err := parseTables(builtinTables)
	if err != nil {
		panic(fmt.Sprintf("vocab: built-in tables: %v", err))
	}
	builtin = tables
	bind := map[string]**Table{
		"component_types":   &ComponentTypes,
		"topologies":        &Topologies,
		"strands":           &Strands,
		"roles":             &Roles,
		"access":            &Access,
		"role_integrations": &RoleIntegrations,
		"refinements":       &Refinements,
		"orientations":      &Orientations,
		"encodings":         &Encodings,
		"restrictions":      &Restrictions,
		"languages":         &Languages,
		"frameworks":        &Frameworks,
		"directions":        &Directions,
		"interaction_types": &InteractionTypes,
		"participant_roles": &ParticipantRoles,
	}
	for name, dst := range bind {
		t, ok := tables[name]
		if !ok {
			panic("vocab: built-in table missing: " + name)
		}
		*dst = t
	}
}

// LoadTables parses tables in the tables.yaml format: a mapping from table
// name to a mapping from symbol to canonical term URI.
func LoadTables(r io.Reader) (map[string]*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("vocab: read tables: %w", err)
	}
	return parseTables(data)
}

func parseTables(data []byte) (map[string]*Table, error) {
	var raw map[string]map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("vocab: parse tables: %w", err)
	}
	out := make(map[string]*Table, len(raw))
	for name, terms := range raw {
		t, err := NewTable(name, terms)
		if err != nil {
			return nil, err
		}
		out[name] = t
	}
	return out, nil
}

// Builtin returns a built-in table by its tables.yaml name.
func Builtin(name string) (*Table, bool) {
	t, ok := builtin[name]
	return t, ok
}

// TableNames returns the names of the built-in tables, sorted.
func TableNames() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
