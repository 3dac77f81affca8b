package punct

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for profile handling and composition.
var (
	// ErrBadProfile indicates malformed profile data.
	ErrBadProfile = errors.New("punct: malformed punctuation profile")

	// ErrRandomness indicates a randomness value outside [0,1].
	ErrRandomness = errors.New("punct: randomness must be within [0,1]")
)

// Insert is a weighted separator option placed between two words.
// Text replaces a single plain space, so it usually carries its own
// surrounding whitespace (", ", ": ", " … ").
type Insert struct {
	Text   string  `yaml:"text"`
	Weight float64 `yaml:"weight"`
}

// Wrap is a weighted prefix/suffix pair. For WrapSentence it surrounds the
// whole sentence ("", "." or "¡", "!"); for WrapInner it surrounds a span of
// words ("(", ")" or "“", "”"). The empty pair is the identity option.
type Wrap struct {
	Prefix string  `yaml:"prefix"`
	Suffix string  `yaml:"suffix"`
	Weight float64 `yaml:"weight"`
}

// Profile describes how one language punctuates proofing sentences.
// Weights within a table are relative probabilities; they need not sum to 1.
// A Profile is read-only once constructed and safe to share.
type Profile struct {
	Insert       []Insert `yaml:"insert"`
	WrapSentence []Wrap   `yaml:"wrap_sentence"`
	WrapInner    []Wrap   `yaml:"wrap_inner"`
}

// Validate checks the profile invariants: at least one table populated and
// no negative weights.
func (p *Profile) Validate() error {
	if p == nil {
		return fmt.Errorf("%w: nil profile", ErrBadProfile)
	}
	if len(p.Insert) == 0 && len(p.WrapSentence) == 0 && len(p.WrapInner) == 0 {
		return fmt.Errorf("%w: all option tables are empty", ErrBadProfile)
	}
	for _, in := range p.Insert {
		if in.Weight < 0 {
			return fmt.Errorf("%w: negative insert weight %v for %q", ErrBadProfile, in.Weight, in.Text)
		}
	}
	for _, w := range p.WrapSentence {
		if w.Weight < 0 {
			return fmt.Errorf("%w: negative wrap_sentence weight %v", ErrBadProfile, w.Weight)
		}
	}
	for _, w := range p.WrapInner {
		if w.Weight < 0 {
			return fmt.Errorf("%w: negative wrap_inner weight %v", ErrBadProfile, w.Weight)
		}
	}

	return nil
}

// Load reads a YAML Profile from r and validates it.
func Load(r io.Reader) (*Profile, error) {
	var p Profile
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadProfile, err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// LoadFile reads a YAML Profile from path.
func LoadFile(path string) (*Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("punct: open profile: %w", err)
	}
	defer f.Close()

	return Load(f)
}
