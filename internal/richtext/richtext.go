// Package richtext provides the rich-text element model completion
// descriptions are rendered into.
//
// Language engines produce descriptions as tagged text parts. FromTagged
// renders those parts into a Text made of styled runs, which is the form
// the editor host consumes.
package richtext

import "strings"

// Style classifies a run of text for presentation.
type Style uint8

const (
	StylePlain Style = iota
	StyleKeyword
	StyleIdentifier
	StyleType
	StyleParameter
	StyleLiteral
	StyleComment
	StylePunctuation
)

// String returns the style name.
func (s Style) String() string {
	switch s {
	case StyleKeyword:
		return "keyword"
	case StyleIdentifier:
		return "identifier"
	case StyleType:
		return "type"
	case StyleParameter:
		return "parameter"
	case StyleLiteral:
		return "literal"
	case StyleComment:
		return "comment"
	case StylePunctuation:
		return "punctuation"
	default:
		return "plain"
	}
}

// Run is a contiguous piece of text with a single style.
type Run struct {
	Text  string
	Style Style
}

// Text is a rendered rich-text element: an ordered sequence of styled runs.
type Text struct {
	Runs []Run
}

// New creates a Text from the given runs.
func New(runs ...Run) *Text {
	return &Text{Runs: runs}
}

// Plain creates a single-run Text with no styling.
func Plain(s string) *Text {
	if s == "" {
		return &Text{}
	}
	return &Text{Runs: []Run{{Text: s}}}
}

// Plain returns the unstyled concatenation of all runs.
func (t *Text) Plain() string {
	var sb strings.Builder
	for _, run := range t.Runs {
		sb.WriteString(run.Text)
	}
	return sb.String()
}

// IsEmpty returns true if the text contains no characters.
func (t *Text) IsEmpty() bool {
	for _, run := range t.Runs {
		if run.Text != "" {
			return false
		}
	}
	return true
}

// TaggedPart is one tagged piece of an engine-produced description.
type TaggedPart struct {
	// Tag is the engine's classification for this part. Unrecognized tags
	// render as plain text.
	Tag string

	// Text is the literal content.
	Text string
}

// styleByTag maps engine part tags to run styles.
var styleByTag = map[string]Style{
	"keyword":     StyleKeyword,
	"identifier":  StyleIdentifier,
	"type":        StyleType,
	"typename":    StyleType,
	"parameter":   StyleParameter,
	"literal":     StyleLiteral,
	"number":      StyleLiteral,
	"string":      StyleLiteral,
	"comment":     StyleComment,
	"punctuation": StylePunctuation,
	"space":       StylePlain,
	"text":        StylePlain,
}

// FromTagged renders tagged description parts into a Text. Empty parts are
// dropped; adjacent parts that resolve to the same style are merged.
func FromTagged(parts []TaggedPart) *Text {
	t := &Text{}
	for _, part := range parts {
		if part.Text == "" {
			continue
		}
		style := styleByTag[part.Tag]
		if n := len(t.Runs); n > 0 && t.Runs[n-1].Style == style {
			t.Runs[n-1].Text += part.Text
			continue
		}
		t.Runs = append(t.Runs, Run{Text: part.Text, Style: style})
	}
	return t
}
