package pipeline

// Board is the stage-partitioned view of the lead collection, used for
// pipeline visualization. It is a pure projection: recomputed from the
// authoritative lead collection on every query, never cached.
type Board map[Stage][]*Lead

// GroupByStage partitions leads into per-stage buckets preserving input
// order. Every stage key is present, empty stages included.
func GroupByStage(leads []*Lead) Board {
	board := make(Board, len(AllStages()))
	for _, stage := range AllStages() {
		board[stage] = make([]*Lead, 0)
	}
	for _, lead := range leads {
		board[lead.Status] = append(board[lead.Status], lead)
	}
	return board
}
