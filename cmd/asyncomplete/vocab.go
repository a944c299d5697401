package main

import (
	"github.com/dshills/asyncomplete/internal/glyph"
	"github.com/dshills/asyncomplete/internal/wordlist"
)

// demoVocabulary is a small Go-flavored word list for the scratchpad.
func demoVocabulary() []wordlist.Word {
	return []wordlist.Word{
		{Text: "break", Tag: glyph.TagKeyword, Doc: "terminates the innermost loop"},
		{Text: "chan", Tag: glyph.TagKeyword, Doc: "declares a channel type"},
		{Text: "const", Tag: glyph.TagKeyword, Doc: "declares a constant"},
		{Text: "continue", Tag: glyph.TagKeyword, Doc: "begins the next loop iteration"},
		{Text: "defer", Tag: glyph.TagKeyword, Doc: "schedules a call for function exit"},
		{Text: "for", Tag: glyph.TagKeyword, Doc: "the loop statement"},
		{Text: "func", Tag: glyph.TagKeyword, Doc: "declares a function", Insert: "func "},
		{Text: "go", Tag: glyph.TagKeyword, Doc: "starts a goroutine"},
		{Text: "if", Tag: glyph.TagKeyword, Doc: "conditional statement"},
		{Text: "interface", Tag: glyph.TagKeyword, Doc: "declares an interface type"},
		{Text: "range", Tag: glyph.TagKeyword, Doc: "iterates a collection"},
		{Text: "return", Tag: glyph.TagKeyword, Doc: "returns from a function"},
		{Text: "select", Tag: glyph.TagKeyword, Doc: "waits on channel operations"},
		{Text: "struct", Tag: glyph.TagKeyword, Doc: "declares a struct type"},
		{Text: "switch", Tag: glyph.TagKeyword, Doc: "multi-way conditional"},
		{Text: "type", Tag: glyph.TagKeyword, Doc: "declares a named type"},
		{Text: "var", Tag: glyph.TagKeyword, Doc: "declares a variable"},

		{Text: "append", Tag: glyph.TagFunction, Doc: "appends to a slice"},
		{Text: "cap", Tag: glyph.TagFunction, Doc: "capacity of a slice or channel"},
		{Text: "close", Tag: glyph.TagFunction, Doc: "closes a channel"},
		{Text: "copy", Tag: glyph.TagFunction, Doc: "copies slice elements"},
		{Text: "len", Tag: glyph.TagFunction, Doc: "length of a collection"},
		{Text: "make", Tag: glyph.TagFunction, Doc: "allocates slices, maps, channels"},
		{Text: "new", Tag: glyph.TagFunction, Doc: "allocates a zeroed value"},
		{Text: "panic", Tag: glyph.TagFunction, Doc: "aborts with a runtime error"},
		{Text: "recover", Tag: glyph.TagFunction, Doc: "regains control after panic"},

		{Text: "bool", Tag: glyph.TagStruct, Doc: "boolean type"},
		{Text: "byte", Tag: glyph.TagStruct, Doc: "alias for uint8"},
		{Text: "error", Tag: glyph.TagInterface, Doc: "the error interface"},
		{Text: "int", Tag: glyph.TagStruct, Doc: "platform integer type"},
		{Text: "rune", Tag: glyph.TagStruct, Doc: "alias for int32"},
		{Text: "string", Tag: glyph.TagStruct, Doc: "immutable UTF-8 text"},

		{Text: "context", Tag: glyph.TagModule, Doc: "cancellation and deadlines"},
		{Text: "fmt", Tag: glyph.TagModule, Doc: "formatted I/O"},
		{Text: "os", Tag: glyph.TagModule, Doc: "operating system interface"},
		{Text: "strings", Tag: glyph.TagModule, Doc: "string manipulation"},
		{Text: "sync", Tag: glyph.TagModule, Doc: "synchronization primitives"},
		{Text: "syscall", Tag: glyph.TagModule, Doc: "low-level OS primitives", Restricted: true},
		{Text: "time", Tag: glyph.TagModule, Doc: "time and durations"},
		{Text: "unsafe", Tag: glyph.TagModule, Doc: "type-unsafe operations", Restricted: true},
	}
}
