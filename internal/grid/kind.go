package grid

// Kind classifies a Node: either a cell of the map (empty, wall, start, end) or a cell marked by
// the search (potential, checked, selected).
type Kind uint8

const (
	KindEmpty Kind = iota
	KindWall
	KindStart
	KindEnd
	KindPotential
	KindChecked
	KindSelected
)

//go:generate go tool enumer -type=Kind -trimprefix=Kind -values -text -json kind.go

// HasCosts returns whether nodes of this kind carry meaningful costs.
//
// Empty and wall nodes never do. The end node only has a g-cost once the search reaches it.
func (k Kind) HasCosts() bool {
	switch k {
	case KindEmpty, KindWall:
		return false
	case KindStart, KindEnd, KindPotential, KindChecked, KindSelected:
		return true
	default:
		panicUnknownKind(k)
		return false
	}
}

// IsSearch returns whether the kind is one set by the search (potential, checked or selected),
// as opposed to one set by the user.
func (k Kind) IsSearch() bool {
	switch k {
	case KindPotential, KindChecked, KindSelected:
		return true
	case KindEmpty, KindWall, KindStart, KindEnd:
		return false
	default:
		panicUnknownKind(k)
		return false
	}
}
