package domain

// HistoryEntry is one recorded workflow result. The history is append-only
// and never pruned; unbounded growth is an accepted tradeoff of this design.
type HistoryEntry struct {
	Timestamp Timestamp `json:"timestamp"`
	Workflow  Workflow  `json:"workflow"`
	Data      Payload   `json:"data"`
}
