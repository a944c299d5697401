// Package text provides the buffer and snapshot model used by the
// completion pipeline.
//
// A Buffer is the live, mutable text of one editor buffer. A Snapshot is an
// immutable view of a buffer at a specific revision; it never changes after
// creation, even if the buffer is edited. The completion pipeline captures
// exactly one snapshot per trigger and threads it through candidate
// computation and description resolution so that every read sees the text
// as it existed when completion started.
//
// Offsets are byte offsets into UTF-8 text. Rune accessors decode at the
// given offset; callers that walk backwards use RuneBefore.
package text
