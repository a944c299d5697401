package text

import (
	"strings"
	"sync"
	"unicode/utf8"
)

// Buffer is the live text of one editor buffer.
//
// Buffer is safe for concurrent use. Readers that need a stable view across
// multiple calls should take a Snapshot instead of reading the buffer
// directly.
type Buffer struct {
	mu       sync.RWMutex
	text     string
	revision RevisionID
}

// NewBuffer creates an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// NewBufferFromString creates a buffer with the given initial content.
func NewBufferFromString(s string) *Buffer {
	return &Buffer{text: s}
}

// Text returns the full buffer content.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.text
}

// Len returns the buffer length in bytes.
func (b *Buffer) Len() ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return ByteOffset(len(b.text))
}

// RevisionID returns the current revision. It changes on every edit.
func (b *Buffer) RevisionID() RevisionID {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revision
}

// RuneAt returns the rune starting at the given byte offset and its size in
// bytes. Returns utf8.RuneError and size 0 if offset is out of range.
func (b *Buffer) RuneAt(offset ByteOffset) (rune, int) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return runeAt(b.text, offset)
}

// RuneBefore returns the rune ending at the given byte offset and its size
// in bytes. Returns utf8.RuneError and size 0 if no rune ends there.
func (b *Buffer) RuneBefore(offset ByteOffset) (rune, int) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return runeBefore(b.text, offset)
}

// Insert inserts text at the given offset.
func (b *Buffer) Insert(offset ByteOffset, s string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if offset < 0 || int(offset) > len(b.text) {
		return ErrOffsetOutOfRange
	}

	var sb strings.Builder
	sb.Grow(len(b.text) + len(s))
	sb.WriteString(b.text[:offset])
	sb.WriteString(s)
	sb.WriteString(b.text[offset:])
	b.text = sb.String()
	b.revision++
	return nil
}

// Delete removes the byte range [start, end).
func (b *Buffer) Delete(start, end ByteOffset) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if end < start {
		return ErrInvalidRange
	}
	if start < 0 || int(end) > len(b.text) {
		return ErrOffsetOutOfRange
	}

	b.text = b.text[:start] + b.text[end:]
	b.revision++
	return nil
}

// Replace replaces the byte range [start, end) with the given text.
func (b *Buffer) Replace(start, end ByteOffset, s string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if end < start {
		return ErrInvalidRange
	}
	if start < 0 || int(end) > len(b.text) {
		return ErrOffsetOutOfRange
	}

	b.text = b.text[:start] + s + b.text[end:]
	b.revision++
	return nil
}

// Snapshot returns an immutable view of the buffer at its current revision.
func (b *Buffer) Snapshot() *Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return &Snapshot{text: b.text, revision: b.revision}
}

// IsEmpty returns true if the buffer contains no text.
func (b *Buffer) IsEmpty() bool {
	return b.Len() == 0
}

func runeAt(s string, offset ByteOffset) (rune, int) {
	if offset < 0 || int(offset) >= len(s) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(s[offset:])
}

func runeBefore(s string, offset ByteOffset) (rune, int) {
	if offset <= 0 || int(offset) > len(s) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeLastRuneInString(s[:offset])
}
