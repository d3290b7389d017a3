package grid

import (
	"context"
	"slices"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// State of the search state machine. Each Grid.Tick performs the work of one state.
type State uint8

const (
	StateMarking State = iota
	StateChecking
	StateBacktracking
	StateEnd
)

//go:generate go tool enumer -type=State -trimprefix=State -values -text -json search.go

// State returns the current state of the search.
func (g *Grid) State() State { return g.state }

// Done returns whether the search reached StateEnd.
func (g *Grid) Done() bool { return g.state == StateEnd }

// Ticks returns how many times Tick has been called.
func (g *Grid) Ticks() int { return g.ticks }

// Potential returns a copy of the frontier, in insertion order.
func (g *Grid) Potential() []*Node { return slices.Clone(g.potential) }

// Checked returns a copy of the closed set, starting with the start node.
func (g *Grid) Checked() []*Node { return slices.Clone(g.checked) }

// Selected returns a copy of the selected nodes, ordered from the end towards the start.
func (g *Grid) Selected() []*Node { return slices.Clone(g.selected) }

// Path returns the selected nodes from the start to the end. It is only complete once Done.
func (g *Grid) Path() []*Node {
	path := slices.Clone(g.selected)
	slices.Reverse(path)
	return path
}

// Stalled returns whether the frontier was exhausted without reaching the end: the last marking
// pass found nothing to add and the search will keep alternating between StateChecking and
// StateMarking without progress.
//
// Tick is unaffected by it, it is only informative for drivers.
func (g *Grid) Stalled() bool {
	return g.state == StateChecking && len(g.potential) == 0
}

// Tick advances the search by one step. After StateEnd it is a no-op.
func (g *Grid) Tick() {
	g.ticks++
	switch g.state {
	case StateMarking:
		if g.markPotentialNodes() {
			g.selected = append(g.selected, g.endNode)
			g.setState(StateBacktracking)
		} else {
			g.setState(StateChecking)
		}
	case StateChecking:
		g.checkBestPotentialNode()
		g.setState(StateMarking)
	case StateBacktracking:
		g.backtrackCurrent = g.selectBestPreviousNode(g.backtrackCurrent)
		g.selected = append(g.selected, g.backtrackCurrent)
		if g.backtrackCurrent == g.startNode {
			g.setState(StateEnd)
		}
	case StateEnd:
		// Nothing to do.
	default:
		invariantf("unknown search state %d", uint8(g.state))
	}
}

func (g *Grid) setState(state State) {
	if state != g.state {
		klog.V(2).Infof("tick #%d: %s -> %s", g.ticks, g.state, state)
	}
	if state == StateEnd {
		klog.V(1).Infof("Search finished after %d ticks: path with %d nodes, cost %d",
			g.ticks, len(g.selected), g.endNode.GCost())
	}
	g.state = state
}

// markPotentialNodes expands every node of the closed set. It returns true as soon as the end
// node is found among the neighbours.
func (g *Grid) markPotentialNodes() (foundEnd bool) {
	for _, current := range g.checked {
		for _, neighbour := range g.NeighborNodes(current) {
			if neighbour.IsEnd() {
				neighbour.CalculateGCost(current)
				klog.V(2).Infof("end %s reached from %s", neighbour, current)
				return true
			}
			if neighbour.IsEmpty() || neighbour.IsPotential() {
				if neighbour.IsEmpty() {
					g.potential = append(g.potential, neighbour)
				}
				// Potential nodes are re-evaluated, and may get a lower g-cost through current.
				neighbour.MakePotential(current, g.endNode)
			}
		}
	}
	return false
}

// checkBestPotentialNode moves the potential node with the lowest f-cost to the closed set.
// Ties are broken by the lowest h-cost, and then by the order in the frontier.
// At most one node is moved.
func (g *Grid) checkBestPotentialNode() {
	minFCost, minHCost := Unset, Unset
	for _, node := range g.potential {
		if minFCost == Unset || node.FCost() < minFCost {
			minFCost = node.FCost()
		}
	}
	for _, node := range g.potential {
		if node.FCost() != minFCost {
			continue
		}
		if minHCost == Unset || node.HCost() < minHCost {
			minHCost = node.HCost()
		}
	}

	bestIdx := slices.IndexFunc(g.potential, func(node *Node) bool {
		return node.FCost() == minFCost && node.HCost() == minHCost
	})
	if bestIdx == -1 {
		// Empty frontier.
		return
	}
	best := g.potential[bestIdx]
	g.potential = slices.Delete(g.potential, bestIdx, bestIdx+1)
	g.checked = append(g.checked, best)
	best.MakeChecked()
	klog.V(2).Infof("checked %s", best)
}

// selectBestPreviousNode returns the neighbour of current to continue the path towards the start:
// among the checked neighbours (or the start) with a g-cost strictly lower than current's, the
// start if present, otherwise the first one with the lowest g-cost, which is marked as selected.
//
// It panics with ErrInvariant if there is no such neighbour.
func (g *Grid) selectBestPreviousNode(current *Node) *Node {
	var best *Node
	for _, node := range g.NeighborNodes(current) {
		if !(node.IsChecked() || node.IsStart()) || node.GCost() >= current.GCost() {
			continue
		}
		if node.IsStart() {
			return node
		}
		if best == nil || node.GCost() < best.GCost() {
			best = node
		}
	}
	if best == nil {
		invariantf("backtracking from %s: no neighbour with a lower g-cost", current)
	}
	best.MakeSelected()
	klog.V(2).Infof("selected %s", best)
	return best
}

// Run ticks until the search ends, ctx is cancelled or maxTicks ticks were run by this call.
// A maxTicks <= 0 means no limit: with an unreachable end the search never finishes, and only
// ctx can stop it.
//
// It returns the number of ticks run, and ctx.Err() or ErrTickLimit if the search didn't end.
func (g *Grid) Run(ctx context.Context, maxTicks int) (ticks int, err error) {
	for !g.Done() {
		if maxTicks > 0 && ticks >= maxTicks {
			return ticks, errors.Wrapf(ErrTickLimit, "search not finished after %d ticks (state %s)",
				ticks, g.state)
		}
		if err = ctx.Err(); err != nil {
			return ticks, err
		}
		g.Tick()
		ticks++
	}
	return ticks, nil
}
