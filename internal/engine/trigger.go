package engine

// TriggerKind is the engine-normalized classification of a completion
// trigger.
type TriggerKind uint8

const (
	// TriggerInvoke is an explicit completion request.
	TriggerInvoke TriggerKind = iota

	// TriggerInsertion is completion caused by a typed character.
	TriggerInsertion

	// TriggerDeletion is completion caused by deleting a character.
	TriggerDeletion
)

// String returns the trigger kind name.
func (k TriggerKind) String() string {
	switch k {
	case TriggerInvoke:
		return "invoke"
	case TriggerInsertion:
		return "insertion"
	case TriggerDeletion:
		return "deletion"
	default:
		return "unknown"
	}
}

// Trigger is the normalized trigger descriptor passed to engines.
// Character is meaningful for insertion and deletion triggers and zero
// otherwise.
type Trigger struct {
	Kind      TriggerKind
	Character rune
}
