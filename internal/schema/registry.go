package schema

import (
	"embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// Names of the embedded schemas.
const (
	TOC     = "TOC"
	Catalog = "Catalog"
)

// Schema represents a JSON schema for one of the static resources.
type Schema struct {
	Name   string // Resource name (e.g., "TOC")
	Source string // Raw JSON schema document
}

// registry lists the embedded schemas by resource name.
var registry = []string{TOC, Catalog}

var (
	compileMu sync.Mutex
	compiled  = map[string]*jsonschema.Schema{}
)

// All returns all schemas sorted by name.
func All() ([]Schema, error) {
	schemas := make([]Schema, 0, len(registry))
	for _, name := range registry {
		s, err := Get(name)
		if err != nil {
			return nil, err
		}
		schemas = append(schemas, *s)
	}

	sort.Slice(schemas, func(i, j int) bool {
		return schemas[i].Name < schemas[j].Name
	})
	return schemas, nil
}

// Get returns a single schema by name.
func Get(name string) (*Schema, error) {
	for _, n := range registry {
		if n == name {
			content, err := schemaFS.ReadFile(filename(n))
			if err != nil {
				return nil, fmt.Errorf("failed to read schema %s: %w", n, err)
			}
			return &Schema{Name: n, Source: string(content)}, nil
		}
	}
	return nil, fmt.Errorf("schema not found: %s", name)
}

// Validate checks a decoded JSON document (the result of json.Unmarshal into
// an any) against the named schema.
func Validate(name string, doc any) error {
	s, err := compile(name)
	if err != nil {
		return err
	}
	if err := s.Validate(doc); err != nil {
		return fmt.Errorf("document does not match %s schema: %w", name, err)
	}
	return nil
}

// compile compiles a schema once and caches it.
func compile(name string) (*jsonschema.Schema, error) {
	compileMu.Lock()
	defer compileMu.Unlock()

	if s, ok := compiled[name]; ok {
		return s, nil
	}

	def, err := Get(name)
	if err != nil {
		return nil, err
	}

	compiler := jsonschema.NewCompiler()
	url := filename(name)
	if err := compiler.AddResource(url, strings.NewReader(def.Source)); err != nil {
		return nil, fmt.Errorf("failed to load %s schema: %w", name, err)
	}
	s, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("failed to compile %s schema: %w", name, err)
	}
	compiled[name] = s
	return s, nil
}

// filename maps a schema name to its embedded file.
func filename(name string) string {
	return fmt.Sprintf("schemas/%s.json", strings.ToLower(name))
}
