package ordering

// DetectCycle reports whether g contains a cycle, returning it as a
// closed sequence of class ids (first == last) when found.
func DetectCycle(g *Graph) ([]int, bool) {
	_, cycle := toposortOrCycle(g)
	return cycle, cycle != nil
}
