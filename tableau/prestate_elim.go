package tableau

// eliminatePrestates runs Phase 2 (rule PR): every solid edge Δ →^χ Γ
// where Γ is a prestate is rewritten to Δ →^χ Δ′ for every state Δ′
// reachable from Γ via a dashed edge. Prestates and dashed edges are then
// discarded; the state set is carried over unchanged.
func eliminatePrestates(pt *Pretableau) *Tableau {
	dashedFrom := make(map[NodeId][]NodeId, len(pt.DashedEdges))
	for _, d := range pt.DashedEdges {
		dashedFrom[d.From] = append(dashedFrom[d.From], d.To)
	}

	var edges []SolidEdge
	for _, s := range pt.SolidEdges {
		for _, stateID := range dashedFrom[s.To] {
			edges = append(edges, SolidEdge{From: s.From, To: stateID, Label: s.Label})
		}
	}

	states := make(map[NodeId]*Node, len(pt.States))
	for id, n := range pt.States {
		states[id] = n
	}

	return &Tableau{States: states, Edges: edges}
}
