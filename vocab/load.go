package vocab

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Meta is the YAML sidecar describing a vocabulary data file.
//
// Example:
//
//	lang: en
//	bicameral: true
//	source: "books corpus, 2020 snapshot"
type Meta struct {
	Lang      string            `yaml:"lang"`
	Bicameral bool              `yaml:"bicameral"`
	Source    string            `yaml:"source,omitempty"`
	Notes     map[string]string `yaml:"notes,omitempty"`
}

// LoadFile reads a vocabulary data file together with its YAML metadata
// sidecar. The data file may be TSV word counts or a bare word list, exactly
// as Parse accepts.
func LoadFile(dataPath, metaPath string, opts ...Option) (*Vocab, error) {
	metaRaw, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, fmt.Errorf("vocab: read metadata: %w", err)
	}
	var meta Meta
	if err := yaml.Unmarshal(metaRaw, &meta); err != nil {
		return nil, fmt.Errorf("%w: metadata: %v", ErrFormat, err)
	}
	if meta.Lang == "" {
		return nil, fmt.Errorf("%w: metadata is missing lang", ErrFormat)
	}

	data, err := os.ReadFile(dataPath)
	if err != nil {
		return nil, fmt.Errorf("vocab: read data: %w", err)
	}

	notes := meta.Notes
	if meta.Source != "" {
		if notes == nil {
			notes = make(map[string]string, 1)
		}
		notes["source"] = meta.Source
	}
	if notes != nil {
		opts = append(opts, WithMeta(notes))
	}

	return Parse(meta.Lang, meta.Bicameral, string(data), opts...)
}
