// Package glyph maps semantic candidate tags to the icons the completion UI
// displays next to items and filters.
//
// Tags form a closed enumeration. Icon resolution examines a candidate's
// tags in their given order and the first recognized tag wins; unrecognized
// tags are skipped rather than treated as errors.
package glyph

// Tag is a semantic classification attached to a completion candidate by
// the language engine.
type Tag uint8

const (
	TagUnknown Tag = iota
	TagText
	TagKeyword
	TagMethod
	TagFunction
	TagConstructor
	TagField
	TagVariable
	TagClass
	TagInterface
	TagStruct
	TagEnum
	TagEnumMember
	TagConstant
	TagModule
	TagProperty
	TagSnippet
	TagOperator
	TagTypeParameter
)

// String returns the tag name.
func (t Tag) String() string {
	switch t {
	case TagText:
		return "text"
	case TagKeyword:
		return "keyword"
	case TagMethod:
		return "method"
	case TagFunction:
		return "function"
	case TagConstructor:
		return "constructor"
	case TagField:
		return "field"
	case TagVariable:
		return "variable"
	case TagClass:
		return "class"
	case TagInterface:
		return "interface"
	case TagStruct:
		return "struct"
	case TagEnum:
		return "enum"
	case TagEnumMember:
		return "enum-member"
	case TagConstant:
		return "constant"
	case TagModule:
		return "module"
	case TagProperty:
		return "property"
	case TagSnippet:
		return "snippet"
	case TagOperator:
		return "operator"
	case TagTypeParameter:
		return "type-parameter"
	default:
		return "unknown"
	}
}

// Icon identifies a UI glyph.
type Icon uint8

const (
	IconNone Icon = iota
	IconText
	IconKeyword
	IconMethod
	IconFunction
	IconField
	IconVariable
	IconClass
	IconInterface
	IconStruct
	IconEnum
	IconConstant
	IconModule
	IconProperty
	IconSnippet
	IconOperator
	IconTypeParameter

	// IconWarning decorates candidates with restricted platform
	// applicability.
	IconWarning
)

// iconByTag is the closed tag-to-icon lookup table. Tags without an entry
// are not recognized and do not resolve an icon.
var iconByTag = map[Tag]Icon{
	TagText:          IconText,
	TagKeyword:       IconKeyword,
	TagMethod:        IconMethod,
	TagFunction:      IconFunction,
	TagConstructor:   IconMethod,
	TagField:         IconField,
	TagVariable:      IconVariable,
	TagClass:         IconClass,
	TagInterface:     IconInterface,
	TagStruct:        IconStruct,
	TagEnum:          IconEnum,
	TagEnumMember:    IconEnum,
	TagConstant:      IconConstant,
	TagModule:        IconModule,
	TagProperty:      IconProperty,
	TagSnippet:       IconSnippet,
	TagOperator:      IconOperator,
	TagTypeParameter: IconTypeParameter,
}

// ForTag returns the icon for a single tag, or IconNone if the tag is not
// recognized.
func ForTag(tag Tag) Icon {
	return iconByTag[tag]
}

// ForTags resolves an icon from an ordered tag list. Tags are examined in
// their given order and the first recognized tag wins. Returns IconNone
// when no tag resolves.
func ForTags(tags []Tag) Icon {
	for _, tag := range tags {
		if icon, ok := iconByTag[tag]; ok {
			return icon
		}
	}
	return IconNone
}

// Rune returns a single-character rendering of the icon for text UIs.
func (i Icon) Rune() rune {
	switch i {
	case IconText:
		return 'T'
	case IconKeyword:
		return 'k'
	case IconMethod:
		return 'm'
	case IconFunction:
		return 'f'
	case IconField:
		return 'F'
	case IconVariable:
		return 'v'
	case IconClass:
		return 'C'
	case IconInterface:
		return 'I'
	case IconStruct:
		return 'S'
	case IconEnum:
		return 'E'
	case IconConstant:
		return 'K'
	case IconModule:
		return 'M'
	case IconProperty:
		return 'p'
	case IconSnippet:
		return 's'
	case IconOperator:
		return 'o'
	case IconTypeParameter:
		return 't'
	case IconWarning:
		return '!'
	default:
		return ' '
	}
}
