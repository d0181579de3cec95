package catalog

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ethansocal/math-answers/internal/schema"
)

// --- XML form ---
// <catalog base="https://..." ext="png">
//   <chapter number="11">
//     <section number="2" prefix="se11c02_"/>
//   </chapter>
// </catalog>

type xmlCatalog struct {
	XMLName  xml.Name     `xml:"catalog"`
	Base     string       `xml:"base,attr"`
	Ext      string       `xml:"ext,attr"`
	Chapters []xmlChapter `xml:"chapter"`
}

type xmlChapter struct {
	Number   string       `xml:"number,attr"`
	Sections []xmlSection `xml:"section"`
}

type xmlSection struct {
	Number string `xml:"number,attr"`
	Prefix string `xml:"prefix,attr"`
}

// LoadXML reads a catalog from its XML form.
func LoadXML(r io.Reader) (*Catalog, error) {
	var doc xmlCatalog
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode catalog xml: %w", err)
	}

	var entries []Entry
	for _, ch := range doc.Chapters {
		for _, s := range ch.Sections {
			entries = append(entries, Entry{
				Chapter: ch.Number,
				Section: s.Number,
				Prefix:  s.Prefix,
			})
		}
	}
	return New(doc.Base, doc.Ext, entries)
}

// --- YAML form ---
// base_url: https://...
// ext: png
// chapters:
//   - number: "11"
//     sections:
//       - number: "2"
//         prefix: se11c02_

type yamlCatalog struct {
	BaseURL  string        `yaml:"base_url"`
	Ext      string        `yaml:"ext"`
	Chapters []yamlChapter `yaml:"chapters"`
}

type yamlChapter struct {
	Number   string        `yaml:"number"`
	Sections []yamlSection `yaml:"sections"`
}

type yamlSection struct {
	Number string `yaml:"number"`
	Prefix string `yaml:"prefix"`
}

// LoadYAML reads a catalog from its YAML form, validated against the
// catalog schema.
func LoadYAML(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	raw, err := yamlToJSONValue(data)
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(schema.Catalog, raw); err != nil {
		return nil, err
	}

	var doc yamlCatalog
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode catalog yaml: %w", err)
	}

	var entries []Entry
	for _, ch := range doc.Chapters {
		for _, s := range ch.Sections {
			entries = append(entries, Entry{
				Chapter: ch.Number,
				Section: s.Number,
				Prefix:  s.Prefix,
			})
		}
	}
	return New(doc.BaseURL, doc.Ext, entries)
}

// yamlToJSONValue decodes YAML into the value json.Unmarshal would produce,
// which is what the schema validator expects.
func yamlToJSONValue(data []byte) (any, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode catalog yaml: %w", err)
	}
	b, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("catalog yaml is not representable as json: %w", err)
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("failed to re-decode catalog: %w", err)
	}
	return doc, nil
}

// LoadFile reads a catalog from path, choosing the format by extension.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	var c *Catalog
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xml":
		c, err = LoadXML(f)
	case ".yaml", ".yml":
		c, err = LoadYAML(f)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
