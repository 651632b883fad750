package list

// NoIndex is the index reported when the cursor is not on an element.
const NoIndex = -1

// PositionKind identifies which of the three cursor states a Position holds.
type PositionKind uint8

const (
	// PositionEmpty means the list has no elements.
	PositionEmpty PositionKind = iota

	// PositionOnElement means the cursor sits on a real element.
	PositionOnElement

	// PositionGhost means the cursor sits on the virtual slot between the
	// tail and the head.
	PositionGhost
)

// String returns a string representation of the position kind.
func (k PositionKind) String() string {
	switch k {
	case PositionEmpty:
		return "empty"
	case PositionOnElement:
		return "element"
	case PositionGhost:
		return "ghost"
	default:
		return "unknown"
	}
}

// Position is a value snapshot of a cursor's state. Index is the element
// index when Kind is PositionOnElement and NoIndex otherwise.
type Position struct {
	Kind  PositionKind
	Index int
}

// OnElement returns true if the position sits on a real element.
func (p Position) OnElement() bool {
	return p.Kind == PositionOnElement
}
