package richtext

import (
	"reflect"
	"testing"
)

func TestFromTagged(t *testing.T) {
	tests := []struct {
		name  string
		parts []TaggedPart
		want  []Run
	}{
		{
			name: "styles resolved",
			parts: []TaggedPart{
				{Tag: "keyword", Text: "func"},
				{Tag: "space", Text: " "},
				{Tag: "identifier", Text: "Close"},
			},
			want: []Run{
				{Text: "func", Style: StyleKeyword},
				{Text: " ", Style: StylePlain},
				{Text: "Close", Style: StyleIdentifier},
			},
		},
		{
			name: "adjacent same-style parts merged",
			parts: []TaggedPart{
				{Tag: "text", Text: "a"},
				{Tag: "space", Text: " "},
				{Tag: "unknown-tag", Text: "b"},
			},
			want: []Run{{Text: "a b", Style: StylePlain}},
		},
		{
			name: "empty parts dropped",
			parts: []TaggedPart{
				{Tag: "keyword", Text: ""},
				{Tag: "type", Text: "int"},
			},
			want: []Run{{Text: "int", Style: StyleType}},
		},
		{name: "nil parts", parts: nil, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromTagged(tt.parts)
			if !reflect.DeepEqual(got.Runs, tt.want) {
				t.Errorf("FromTagged() runs = %+v, want %+v", got.Runs, tt.want)
			}
		})
	}
}

func TestTextPlain(t *testing.T) {
	txt := New(
		Run{Text: "func ", Style: StyleKeyword},
		Run{Text: "Close()", Style: StyleIdentifier},
	)
	if got := txt.Plain(); got != "func Close()" {
		t.Errorf("Plain() = %q, want %q", got, "func Close()")
	}

	if !Plain("").IsEmpty() {
		t.Error("empty text not reported empty")
	}
	if Plain("x").IsEmpty() {
		t.Error("non-empty text reported empty")
	}
}
