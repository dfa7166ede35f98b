package generator

import (
	"bytes"
	"embed"
	"fmt"
	"go/token"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed gd.yaml templates/*.tmpl
var EmbeddedFiles embed.FS

// Param is one parameter of a native entry point
type Param struct {
	Name string
	Kind Kind
}

// GoType returns the Go type used for the parameter in a wrapper
func (p Param) GoType() string {
	return GoTypes[p.Kind]
}

// Declaration describes one native libgd entry point
type Declaration struct {
	Name      string   `yaml:"name"`
	Returns   Kind     `yaml:"returns"`
	RawParams []string `yaml:"params"`
	Doc       string   `yaml:"doc"`

	// Manual entries take pointers, buffers or strings and are wrapped by hand
	Manual    bool   `yaml:"manual"`
	Signature string `yaml:"signature"`

	Params []Param `yaml:"-"`
	GoName string  `yaml:"-"`
}

// Table is the parsed declaration table
type Table struct {
	Package      string        `yaml:"package"`
	Includes     []string      `yaml:"includes"`
	Declarations []Declaration `yaml:"declarations"`
}

// LoadDeclarations parses and validates a declaration table
func LoadDeclarations(r io.Reader) (*Table, error) {
	var table Table
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&table); err != nil {
		return nil, fmt.Errorf("failed to decode declaration table: %w", err)
	}
	if table.Package == "" {
		return nil, fmt.Errorf("declaration table has no package")
	}
	seen := make(map[string]bool, len(table.Declarations))
	for i := range table.Declarations {
		decl := &table.Declarations[i]
		if decl.Name == "" {
			return nil, fmt.Errorf("declaration %d has no name", i)
		}
		if seen[decl.Name] {
			return nil, fmt.Errorf("duplicate declaration %s", decl.Name)
		}
		seen[decl.Name] = true
		decl.GoName = GoName(decl.Name)

		if decl.Manual {
			if decl.Signature == "" {
				return nil, fmt.Errorf("manual declaration %s has no signature", decl.Name)
			}
			continue
		}
		if decl.Returns == "" {
			decl.Returns = KindVoid
		}
		if !ReturnKinds[decl.Returns] {
			return nil, fmt.Errorf("%s: unsupported return kind %q", decl.Name, decl.Returns)
		}
		params, err := parseParams(decl.RawParams)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", decl.Name, err)
		}
		decl.Params = params
	}
	return &table, nil
}

// DefaultTable returns the embedded libgd declaration table
func DefaultTable() (*Table, error) {
	content, err := EmbeddedFiles.ReadFile("gd.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded declaration table: %w", err)
	}
	return LoadDeclarations(bytes.NewReader(content))
}

// Generated returns the declarations that get a generated wrapper, sorted by name
func (t *Table) Generated() []Declaration {
	var out []Declaration
	for _, decl := range t.Declarations {
		if !decl.Manual {
			out = append(out, decl)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// Manual returns the names of hand wrapped declarations in table order
func (t *Table) Manual() []string {
	var out []string
	for _, decl := range t.Declarations {
		if decl.Manual {
			out = append(out, decl.Name)
		}
	}
	return out
}

// Lookup finds a declaration by its native name
func (t *Table) Lookup(name string) (Declaration, bool) {
	for _, decl := range t.Declarations {
		if decl.Name == name {
			return decl, true
		}
	}
	return Declaration{}, false
}

// GoName derives the Go wrapper name of a native entry point,
// e.g. "gdImageLine" -> "gdgenImageLine"
func GoName(name string) string {
	return GoNamePrefix + strings.TrimPrefix(name, "gd")
}

// parseParams reads "name kind" pairs
func parseParams(raw []string) ([]Param, error) {
	params := make([]Param, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for _, entry := range raw {
		fields := strings.Fields(entry)
		if len(fields) != 2 {
			return nil, fmt.Errorf("malformed parameter %q, want \"name kind\"", entry)
		}
		name, kind := fields[0], Kind(fields[1])
		if !token.IsIdentifier(name) || token.IsKeyword(name) {
			return nil, fmt.Errorf("invalid parameter name %q", name)
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate parameter %q", name)
		}
		seen[name] = true
		if !ParamKinds[kind] {
			return nil, fmt.Errorf("unsupported parameter kind %q", kind)
		}
		params = append(params, Param{Name: name, Kind: kind})
	}
	return params, nil
}
