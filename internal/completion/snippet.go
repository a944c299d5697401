package completion

import (
	"unicode"

	"github.com/dshills/asyncomplete/internal/document"
	"github.com/dshills/asyncomplete/internal/engine"
	"github.com/dshills/asyncomplete/internal/text"
)

// TryRewriteAsSnippetTrigger detects the identifier-"?"-Tab sequence and
// rewrites it into a snippet trigger by synchronously deleting the
// two-byte range ["?", Tab) before the caret.
//
// The rewrite applies only when the engine's snippet policy asks for it,
// the caret is at least three bytes in, the byte two positions back is '?',
// and the '?' directly follows an identifier that is itself separated from
// earlier context by whitespace (or starts the buffer). Returning true
// means completion participates without producing items here; the snippet
// subsystem takes over. On no match nothing is modified.
//
// Runs synchronously on the editor's UI path: it edits the live buffer, not
// the snapshot.
func TryRewriteAsSnippetTrigger(eng engine.Engine, doc *document.Document, snap *text.Snapshot, caret text.ByteOffset) bool {
	if eng == nil || doc == nil || snap == nil {
		return false
	}
	if eng.Rules().SnippetTrigger != engine.SnippetIdentifierQuestionTab {
		return false
	}
	if caret < 3 {
		return false
	}
	if r, _ := snap.RuneAt(caret - 2); r != '?' {
		return false
	}

	// Walk the identifier run directly before the '?'.
	end := caret - 2
	start := end
	for {
		r, size := snap.RuneBefore(start)
		if size == 0 || !isIdentifierRune(r) {
			break
		}
		start -= text.ByteOffset(size)
	}
	if start == end {
		return false
	}

	// The identifier must be whitespace-separated from anything before it.
	if start > 0 {
		r, size := snap.RuneBefore(start)
		if size == 0 || !unicode.IsSpace(r) {
			return false
		}
	}

	return doc.Buffer().Delete(caret-2, caret) == nil
}

// isIdentifierRune reports whether the rune can appear in an identifier.
func isIdentifierRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
