package ordering

import (
	"fmt"

	"github.com/soniakeys/bits"
)

// ErrCycleDetected is returned by TopologicalOrder when g is not acyclic.
var ErrCycleDetected = fmt.Errorf("ordering: graph is not acyclic")

// toposortOrCycle runs a single DFS pass over g using temp (on recursion
// stack) and perm (fully explored) bitsets, following the classic
// depth-first topological sort. It returns a valid order if g is acyclic,
// or the closed cycle (first == last) it found otherwise.
func toposortOrCycle(g *Graph) (order []int, cycle []int) {
	n := g.N()
	order = make([]int, n)
	i := n
	temp := bits.New(n)
	perm := bits.New(n)

	var cycleFound bool
	var cycleStart int = -1

	var visit func(node int)
	visit = func(node int) {
		if temp.Bit(node) == 1 {
			cycleFound = true
			cycleStart = node
			return
		}
		if perm.Bit(node) == 1 {
			return
		}
		temp.SetBit(node, 1)
		for _, nb := range g.Successors(node) {
			visit(nb)
			if cycleFound {
				if cycleStart >= 0 {
					x := len(order) - 1 - len(cycle)
					order[x] = node
					cycle = order[x:]
					if node == cycleStart {
						cycleStart = -1
					}
				}
				return
			}
		}
		temp.SetBit(node, 0)
		perm.SetBit(node, 1)
		i--
		order[i] = node
	}

	for n0 := 0; n0 < n; n0++ {
		if perm.Bit(n0) == 1 {
			continue
		}
		visit(n0)
		if cycleFound {
			// cycle currently holds the path from cycleStart to the node
			// whose back edge closed it; close it by repeating its first class.
			closed := append(append([]int(nil), cycle...), cycle[0])
			return nil, closed
		}
	}
	return order[i:], nil
}

// TopologicalOrder returns a valid class-id ordering, or ErrCycleDetected
// if g contains a cycle.
func TopologicalOrder(g *Graph) ([]int, error) {
	order, cycle := toposortOrCycle(g)
	if cycle != nil {
		return nil, ErrCycleDetected
	}
	return order, nil
}

// CoordinatesFromOrder maps each class id in order to its rank (0-based),
// giving the relative coordinate of every class along its axis.
func CoordinatesFromOrder(order []int) map[int]int {
	coord := make(map[int]int, len(order))
	for rank, classID := range order {
		coord[classID] = rank
	}
	return coord
}
