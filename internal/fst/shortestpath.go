package fst

import "container/heap"

// Path is one (input, output, weight) accepting path through a machine.
type Path struct {
	Input  string
	Output string
	Weight Weight
}

// searchNode is a partial path frontier entry for the n-best search
// below: the state we're at, the accumulated weight and output so far,
// and (for reconstructing Input) the input consumed so far.
type searchNode struct {
	state  int
	weight Weight
	input  string
	output string
}

type nodeHeap []searchNode

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return h[i].weight < h[j].weight }
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(searchNode)) }
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// ShortestPath returns the n minimum-weight accepting paths through a, in
// non-decreasing weight order. For the machines this system searches
// (by the time ShortestPath runs the machine has already been composed
// against a fixed-length literal input acceptor, even where a grammar's
// own closures are unbounded), a plain
// best-first search over the frontier of partial paths is guaranteed to
// terminate and is equivalent to running Dijkstra n times with
// previously-emitted paths excluded.
//
// maxExpansions bounds pathological inputs (defensive only; every real
// machine here terminates long before the bound is reached).
func ShortestPath(a *Fst, n int) ([]Path, error) {
	if n <= 0 {
		n = 1
	}
	const maxExpansions = 2_000_000

	h := &nodeHeap{{state: a.Start, weight: 0}}
	heap.Init(h)

	var results []Path
	expansions := 0

	for h.Len() > 0 && len(results) < n {
		expansions++
		if expansions > maxExpansions {
			break
		}
		node := heap.Pop(h).(searchNode)

		if fa, fw := a.IsFinal(node.state); fa {
			results = append(results, Path{
				Input:  node.input,
				Output: node.output,
				Weight: node.weight + fw,
			})
			if len(results) >= n {
				break
			}
		}

		for _, arc := range a.ArcsFrom(node.state) {
			next := searchNode{
				state:  arc.To,
				weight: node.weight + arc.Weight,
				input:  node.input,
				output: node.output,
			}
			if arc.In != Epsilon {
				next.input += string(arc.In)
			}
			if arc.Out != Epsilon {
				next.output += string(arc.Out)
			}
			heap.Push(h, next)
		}
	}

	if len(results) == 0 {
		return nil, ErrEmptyLanguage
	}
	return results, nil
}
