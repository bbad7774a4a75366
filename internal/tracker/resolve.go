package tracker

// OutcomeKind classifies the result of a resolution.
type OutcomeKind int

const (
	// Empty means no instance is configured.
	Empty OutcomeKind = iota
	// Single means exactly one instance exists and is used unconditionally.
	Single
	// NeedsDisambiguation means the user has to choose among Candidates.
	NeedsDisambiguation
	// Default means the default-instance policy picked Instance.
	Default
)

func (k OutcomeKind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Single:
		return "single"
	case NeedsDisambiguation:
		return "needs-disambiguation"
	case Default:
		return "default"
	}
	return "unknown"
}

// Outcome is the result of Resolve or ResolveDefault.
type Outcome struct {
	Kind OutcomeKind

	// Instance is set for Single and Default.
	Instance Instance

	// Candidates is set for NeedsDisambiguation.
	Candidates Collection

	// Fallback is true for a Default outcome when no entry was flagged and
	// the first entry was used instead. Callers should tell the user.
	Fallback bool
}

// Resolve implements the "ask me" policy: one instance is used directly,
// several require a choice from the user.
func Resolve(c Collection) Outcome {
	switch len(c) {
	case 0:
		return Outcome{Kind: Empty}
	case 1:
		return Outcome{Kind: Single, Instance: c[0]}
	default:
		return Outcome{Kind: NeedsDisambiguation, Candidates: c}
	}
}

// ResolveDefault implements the default-instance policy. The first flagged
// entry wins; later flagged entries are ignored. With no flagged entry the
// first entry is used and Fallback is set.
func ResolveDefault(c Collection) Outcome {
	if len(c) == 0 {
		return Outcome{Kind: Empty}
	}
	for _, inst := range c {
		if inst.IsDefault {
			return Outcome{Kind: Default, Instance: inst}
		}
	}
	return Outcome{Kind: Default, Instance: c[0], Fallback: true}
}
