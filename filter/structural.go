package filter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Criteria are the structural constraints applied on top of case
// resolution. The zero value matches every word.
//
// Substring constraints (StartsWith, EndsWith, Contains, Inner) must be
// purely alphabetic — they are matched literally, and the restriction keeps
// filter-syntax characters from sneaking in should an implementation compile
// them into a pattern. Multiple Contains/Inner values AND-combine.
//
// Length counts runes, not bytes. Length (exact) overrides MinLength and
// MaxLength. Pattern is a regular expression the whole word must match;
// anchors are implicit.
type Criteria struct {
	MinLength  int
	MaxLength  int
	Length     int
	StartsWith string
	EndsWith   string
	Contains   []string
	Inner      []string
	Pattern    string
}

// Empty reports whether no constraint is set.
func (c Criteria) Empty() bool {
	return c.MinLength == 0 && c.MaxLength == 0 && c.Length == 0 &&
		c.StartsWith == "" && c.EndsWith == "" &&
		len(c.Contains) == 0 && len(c.Inner) == 0 && c.Pattern == ""
}

// Validate checks criteria invariants without touching any collection.
func (c Criteria) Validate() error {
	if err := checkAlphabetic("startswith", c.StartsWith); err != nil {
		return err
	}
	if err := checkAlphabetic("endswith", c.EndsWith); err != nil {
		return err
	}
	for _, s := range c.Contains {
		if err := checkAlphabetic("contains", s); err != nil {
			return err
		}
	}
	for _, s := range c.Inner {
		if err := checkAlphabetic("inner", s); err != nil {
			return err
		}
	}
	if c.MinLength < 0 || c.MaxLength < 0 || c.Length < 0 {
		return fmt.Errorf("%w: negative length constraint", ErrValidation)
	}
	if c.MaxLength > 0 && c.MinLength > c.MaxLength {
		return fmt.Errorf("%w: min_length %d exceeds max_length %d", ErrValidation, c.MinLength, c.MaxLength)
	}

	return nil
}

// Key returns a canonical string form of the criteria for memoization keys.
// String fields are quoted so element boundaries survive any input; two
// distinct criteria can never share a key.
func (c Criteria) Key() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(c.MinLength))
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(c.MaxLength))
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(c.Length))
	b.WriteByte(',')
	b.WriteString(strconv.Quote(c.StartsWith))
	b.WriteByte(',')
	b.WriteString(strconv.Quote(c.EndsWith))
	b.WriteByte(',')
	writeQuotedList(&b, c.Contains)
	b.WriteByte(',')
	writeQuotedList(&b, c.Inner)
	b.WriteByte(',')
	b.WriteString(strconv.Quote(c.Pattern))

	return b.String()
}

func writeQuotedList(b *strings.Builder, list []string) {
	for i, s := range list {
		if i > 0 {
			b.WriteByte('+')
		}
		b.WriteString(strconv.Quote(s))
	}
}

// Apply filters col by the criteria. Sub-filters run in fixed order —
// prefix, suffix, contains, inner, length, regex — and each short-circuits:
// an empty intermediate result is reported immediately as ErrNoMatch naming
// the stage, rather than running the remaining stages against nothing.
//
// With no criteria set, Apply is the identity: col is returned unchanged.
//
// Errors: ErrValidation for malformed criteria (checked before any
// filtering), ErrNoMatch naming the emptying stage.
//
// Complexity: O(len(col) · word length) per stage.
func Apply(col Collection, c Criteria) (Collection, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.Empty() {
		return col, nil
	}

	var err error
	if c.StartsWith != "" {
		col, err = keep(col, "startswith="+c.StartsWith, func(w string) bool {
			return strings.HasPrefix(w, c.StartsWith)
		})
		if err != nil {
			return nil, err
		}
	}
	if c.EndsWith != "" {
		col, err = keep(col, "endswith="+c.EndsWith, func(w string) bool {
			return strings.HasSuffix(w, c.EndsWith)
		})
		if err != nil {
			return nil, err
		}
	}
	for _, sub := range c.Contains {
		col, err = keep(col, "contains="+sub, func(w string) bool {
			return strings.Contains(w, sub)
		})
		if err != nil {
			return nil, err
		}
	}
	for _, sub := range c.Inner {
		col, err = keep(col, "inner="+sub, func(w string) bool {
			return strings.Contains(innerPart(w), sub)
		})
		if err != nil {
			return nil, err
		}
	}

	if c.Length > 0 {
		col, err = keep(col, "length="+strconv.Itoa(c.Length), func(w string) bool {
			return utf8.RuneCountInString(w) == c.Length
		})
		if err != nil {
			return nil, err
		}
	} else if c.MinLength > 0 || c.MaxLength > 0 {
		stage := fmt.Sprintf("min_length=%d,max_length=%d", c.MinLength, c.MaxLength)
		col, err = keep(col, stage, func(w string) bool {
			n := utf8.RuneCountInString(w)
			if n < c.MinLength {
				return false
			}

			return c.MaxLength == 0 || n <= c.MaxLength
		})
		if err != nil {
			return nil, err
		}
	}

	if c.Pattern != "" {
		re, compErr := regexp.Compile("^(?:" + c.Pattern + ")$")
		if compErr != nil {
			return nil, fmt.Errorf("%w: pattern %q: %v", ErrValidation, c.Pattern, compErr)
		}
		col, err = keep(col, "pattern="+c.Pattern, re.MatchString)
		if err != nil {
			return nil, err
		}
	}

	return col, nil
}

// keep returns the entries whose word satisfies pred, or ErrNoMatch naming
// the stage when none survive.
func keep(col Collection, stage string, pred func(string) bool) (Collection, error) {
	out := make(Collection, 0, len(col))
	for _, e := range col {
		if pred(e.Word) {
			out = append(out, e)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no words after %s", ErrNoMatch, stage)
	}

	return out, nil
}

// innerPart strips the first and last rune of w. Words of length two or
// fewer have no inner part and can never satisfy an Inner constraint.
func innerPart(w string) string {
	runes := []rune(w)
	if len(runes) <= 2 {
		return ""
	}

	return string(runes[1 : len(runes)-1])
}

// checkAlphabetic enforces the letters-only rule for substring constraints.
func checkAlphabetic(name, s string) error {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return fmt.Errorf("%w: %s must be purely alphabetic, got %q", ErrValidation, name, s)
		}
	}

	return nil
}
