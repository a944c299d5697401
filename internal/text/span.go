package text

// ByteOffset is a byte position within buffer text.
type ByteOffset int

// RevisionID identifies a buffer revision. It increases monotonically with
// each edit.
type RevisionID uint64

// Span is a half-open byte range [Start, End) within buffer text.
type Span struct {
	Start ByteOffset
	End   ByteOffset
}

// NewSpan creates a span, normalizing reversed bounds.
func NewSpan(start, end ByteOffset) Span {
	if end < start {
		start, end = end, start
	}
	return Span{Start: start, End: end}
}

// Len returns the span length in bytes.
func (s Span) Len() int {
	return int(s.End - s.Start)
}

// IsEmpty returns true if the span covers no bytes.
func (s Span) IsEmpty() bool {
	return s.End <= s.Start
}

// Contains returns true if the offset falls within the span.
func (s Span) Contains(offset ByteOffset) bool {
	return offset >= s.Start && offset < s.End
}
