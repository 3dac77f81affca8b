package punct

import "sort"

// Built-in punctuation profiles. Weights are relative frequencies observed in
// large text corpora for each language; they deliberately keep rare marks
// (ellipses, dashes) at low but non-zero probability so proofs exercise them.
var builtin = map[string]*Profile{
	"en": {
		Insert: []Insert{
			{Text: " ", Weight: 0.365},
			{Text: ", ", Weight: 0.403},
			{Text: ": ", Weight: 0.088},
			{Text: "; ", Weight: 0.058},
			{Text: "–", Weight: 0.057},
			{Text: "—", Weight: 0.022},
			{Text: " … ", Weight: 0.006},
		},
		WrapSentence: []Wrap{
			{Prefix: "", Suffix: ".", Weight: 0.923},
			{Prefix: "", Suffix: "!", Weight: 0.034},
			{Prefix: "", Suffix: "?", Weight: 0.04},
			{Prefix: "", Suffix: "…", Weight: 0.003},
		},
		WrapInner: []Wrap{
			{Prefix: "", Suffix: "", Weight: 0.825},
			{Prefix: "(", Suffix: ")", Weight: 0.133},
			{Prefix: "‘", Suffix: "’", Weight: 0.013},
			{Prefix: "“", Suffix: "”", Weight: 0.028},
		},
	},
	"ar": {
		Insert: []Insert{
			{Text: " ", Weight: 0.364},
			{Text: ": ", Weight: 0.108},
			{Text: "، ", Weight: 0.463},
			{Text: "؛ ", Weight: 0.066},
		},
		WrapSentence: []Wrap{
			{Prefix: "", Suffix: ".", Weight: 0.914},
			{Prefix: "", Suffix: "؟", Weight: 0.052},
			{Prefix: "", Suffix: "!", Weight: 0.033},
		},
		WrapInner: []Wrap{
			{Prefix: "", Suffix: "", Weight: 0.971},
			{Prefix: "’", Suffix: "‘", Weight: 0.007},
			{Prefix: "”", Suffix: "“", Weight: 0.022},
		},
	},
	"fa": {
		Insert: []Insert{
			{Text: " ", Weight: 0.364},
			{Text: ": ", Weight: 0.108},
			{Text: "، ", Weight: 0.463},
			{Text: "؛ ", Weight: 0.066},
		},
		WrapSentence: []Wrap{
			{Prefix: "", Suffix: ".", Weight: 0.914},
			{Prefix: "", Suffix: "؟", Weight: 0.052},
			{Prefix: "", Suffix: "!", Weight: 0.033},
		},
		WrapInner: []Wrap{
			{Prefix: "", Suffix: "", Weight: 0.971},
			{Prefix: "’", Suffix: "‘", Weight: 0.007},
			{Prefix: "”", Suffix: "“", Weight: 0.022},
		},
	},
	"es": {
		Insert: []Insert{
			{Text: " ", Weight: 0.277},
			{Text: ", ", Weight: 0.49},
			{Text: ": ", Weight: 0.093},
			{Text: "; ", Weight: 0.073},
			{Text: "– ", Weight: 0.026},
			{Text: "— ", Weight: 0.03},
			{Text: "… ", Weight: 0.011},
		},
		WrapSentence: []Wrap{
			{Prefix: "", Suffix: ".", Weight: 0.928},
			{Prefix: "¡", Suffix: "!", Weight: 0.029},
			{Prefix: "¿", Suffix: "?", Weight: 0.036},
			{Prefix: "", Suffix: "…", Weight: 0.008},
		},
		WrapInner: []Wrap{
			{Prefix: "", Suffix: "", Weight: 0.814},
			{Prefix: "(", Suffix: ")", Weight: 0.129},
			{Prefix: "‘", Suffix: "’", Weight: 0.013},
			{Prefix: "“", Suffix: "”", Weight: 0.044},
		},
	},
}

// Default returns the built-in Profile for a language code, or (nil, false)
// when the language has no built-in profile. The returned Profile is shared;
// callers must not mutate it.
func Default(lang string) (*Profile, bool) {
	p, ok := builtin[lang]

	return p, ok
}

// Languages lists the language codes with built-in profiles, sorted.
func Languages() []string {
	langs := make([]string, 0, len(builtin))
	for l := range builtin {
		langs = append(langs, l)
	}
	sort.Strings(langs)

	return langs
}
