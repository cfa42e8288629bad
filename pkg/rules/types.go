package rules

// Kind discriminates the three criterion forms
type Kind int

const (
	// ByName matches the full package name exactly
	ByName Kind = iota
	// ByType matches the package type exactly
	ByType
	// ByVendor matches packages whose name starts with "<vendor>/"
	ByVendor
)

const (
	typePrefix   = "type:"
	vendorPrefix = "vendor:"
)

// String returns the config prefix for the kind, or "name" for ByName
func (k Kind) String() string {
	switch k {
	case ByType:
		return "type"
	case ByVendor:
		return "vendor"
	default:
		return "name"
	}
}

// Criterion is a parsed matching predicate
type Criterion struct {
	Kind  Kind
	Value string
}

// String renders the criterion back in its configuration form
func (c Criterion) String() string {
	switch c.Kind {
	case ByType:
		return typePrefix + c.Value
	case ByVendor:
		return vendorPrefix + c.Value
	default:
		return c.Value
	}
}

// Entry associates a target path template with its criteria
type Entry struct {
	// Target is the symlink path template, possibly containing placeholders
	Target string
	// Criteria is never empty; any element matching selects the entry
	Criteria []Criterion
}
