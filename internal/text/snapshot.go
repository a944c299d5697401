package text

// Snapshot provides a read-only view of a buffer at a specific revision.
// It is safe for concurrent access and will not change even if the original
// buffer is modified.
type Snapshot struct {
	text     string
	revision RevisionID
}

// NewSnapshot creates a standalone snapshot from raw text. Primarily useful
// in tests and for engines that operate on detached text.
func NewSnapshot(text string, revision RevisionID) *Snapshot {
	return &Snapshot{text: text, revision: revision}
}

// Text returns the full snapshot content.
func (s *Snapshot) Text() string {
	return s.text
}

// TextRange returns text in the given byte range, clamped to the snapshot.
func (s *Snapshot) TextRange(start, end ByteOffset) string {
	if start < 0 {
		start = 0
	}
	if int(end) > len(s.text) {
		end = ByteOffset(len(s.text))
	}
	if end <= start {
		return ""
	}
	return s.text[start:end]
}

// Len returns the snapshot length in bytes.
func (s *Snapshot) Len() ByteOffset {
	return ByteOffset(len(s.text))
}

// Revision returns the buffer revision this snapshot was taken at.
func (s *Snapshot) Revision() RevisionID {
	return s.revision
}

// RuneAt returns the rune starting at the given byte offset and its size in
// bytes. Returns utf8.RuneError and size 0 if offset is out of range.
func (s *Snapshot) RuneAt(offset ByteOffset) (rune, int) {
	return runeAt(s.text, offset)
}

// RuneBefore returns the rune ending at the given byte offset and its size
// in bytes. Returns utf8.RuneError and size 0 if no rune ends there.
func (s *Snapshot) RuneBefore(offset ByteOffset) (rune, int) {
	return runeBefore(s.text, offset)
}
