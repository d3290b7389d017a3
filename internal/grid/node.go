package grid

import (
	"fmt"

	"github.com/pkg/errors"
)

const (
	// OrthogonalCost is the cost of a horizontal or vertical step.
	OrthogonalCost = 10

	// DiagonalCost is the cost of a diagonal step, a fixed-point approximation of √2·10.
	DiagonalCost = 14

	// Unset is the value of costs not yet calculated.
	Unset = -1
)

// Node is one cell of the Grid. Its position is fixed, while its Kind and costs are mutated by
// the placement operations and by the search.
type Node struct {
	pos   Pos
	kind  Kind
	gCost int
	hCost int
}

// NewNode creates an empty node at the given position.
func NewNode(x, y int) *Node {
	return &Node{pos: Pos{x, y}, kind: KindEmpty, gCost: Unset, hCost: Unset}
}

// X coordinate (column) of the node.
func (n *Node) X() int { return n.pos[0] }

// Y coordinate (row) of the node.
func (n *Node) Y() int { return n.pos[1] }

// Pos returns the node's position.
func (n *Node) Pos() Pos { return n.pos }

// Kind returns the current classification of the node.
func (n *Node) Kind() Kind { return n.kind }

// GCost is the cost of the best known path from the start to this node, or Unset.
func (n *Node) GCost() int { return n.gCost }

// HCost is the heuristic (octile distance) from this node to the end, or Unset.
func (n *Node) HCost() int { return n.hCost }

// FCost is GCost + HCost.
func (n *Node) FCost() int { return n.gCost + n.hCost }

// String implements fmt.Stringer.
func (n *Node) String() string {
	if !n.kind.HasCosts() {
		return fmt.Sprintf("%s%s", n.kind, n.pos)
	}
	return fmt.Sprintf("%s%s[g=%d h=%d f=%d]", n.kind, n.pos, n.gCost, n.hCost, n.FCost())
}

// MakeStart turns the node into the start of the search, with a zero g-cost.
func (n *Node) MakeStart() {
	n.kind = KindStart
	n.gCost = 0
}

// MakeEnd turns the node into the target of the search. Its g-cost is unset until the search
// reaches it.
func (n *Node) MakeEnd() {
	n.kind = KindEnd
	n.resetCosts()
}

// MakeWall turns the node into an obstacle. Walls carry no costs.
func (n *Node) MakeWall() {
	n.kind = KindWall
	n.resetCosts()
}

// MakeEmpty turns the node into an empty cell. Empty cells carry no costs.
func (n *Node) MakeEmpty() {
	n.kind = KindEmpty
	n.resetCosts()
}

func (n *Node) resetCosts() {
	n.gCost, n.hCost = Unset, Unset
}

func (n *Node) IsStart() bool     { return n.kind == KindStart }
func (n *Node) IsEnd() bool       { return n.kind == KindEnd }
func (n *Node) IsWall() bool      { return n.kind == KindWall }
func (n *Node) IsEmpty() bool     { return n.kind == KindEmpty }
func (n *Node) IsChecked() bool   { return n.kind == KindChecked }
func (n *Node) IsPotential() bool { return n.kind == KindPotential }
func (n *Node) IsSelected() bool  { return n.kind == KindSelected }

// DistanceTo returns the octile distance to the other node. It is used both as the heuristic and
// as the cost of a step between neighbours.
func (n *Node) DistanceTo(other *Node) int {
	return n.pos.Octile(other.pos)
}

// CalculateGCost relaxes the g-cost of the node reached from prev: the cost is only updated if
// it is unset or if going through prev is cheaper.
func (n *Node) CalculateGCost(prev *Node) {
	candidate := prev.gCost + n.DistanceTo(prev)
	if n.gCost == Unset || candidate < n.gCost {
		n.gCost = candidate
	}
}

// MakePotential marks the node as part of the frontier, reached from prev. The g-cost is relaxed
// and the h-cost is always recalculated to the given end.
//
// It can be called on empty nodes, or again on potential nodes, when they are reached through
// another neighbour.
func (n *Node) MakePotential(prev, end *Node) {
	switch n.kind {
	case KindEmpty, KindPotential:
		// Valid.
	case KindWall, KindStart, KindEnd, KindChecked, KindSelected:
		invariantf("MakePotential(%s): node must be empty or potential", n)
	default:
		panicUnknownKind(n.kind)
	}
	n.CalculateGCost(prev)
	n.hCost = n.DistanceTo(end)
	n.kind = KindPotential
}

// MakeChecked moves a potential node to the closed set. It panics (ErrInvariant) if the node is
// not potential.
func (n *Node) MakeChecked() {
	if n.kind != KindPotential {
		invariantf("MakeChecked(%s): node must be potential", n)
	}
	n.kind = KindChecked
}

// MakeSelected marks a checked node as part of the final path. It panics (ErrInvariant) if the
// node is not checked.
func (n *Node) MakeSelected() {
	if n.kind != KindChecked {
		invariantf("MakeSelected(%s): node must be checked", n)
	}
	n.kind = KindSelected
}

// invariantf panics with an error wrapping ErrInvariant.
func invariantf(format string, args ...any) {
	panic(errors.Wrapf(ErrInvariant, format, args...))
}

func panicUnknownKind(k Kind) {
	invariantf("unknown node kind %d", uint8(k))
}
