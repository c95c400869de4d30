package game

import "time"

// RoundResult is what a single PlayRound call hands back to the caller
type RoundResult struct {
	PlayerMove   Move
	ComputerMove Move
	Outcome      Outcome
}

// RoundRecord is the immutable entry kept in the history log for a completed round
type RoundRecord struct {
	RoundResult
	Number   int       // 1-based round number within the session
	PlayedAt time.Time // when the round was resolved
}

// HistoryLog is a last-in-first-out store of completed rounds.
// It is not safe for concurrent use; a Session owns exactly one.
type HistoryLog struct {
	records []RoundRecord
}

// NewHistoryLog creates an empty history log
func NewHistoryLog() *HistoryLog {
	return &HistoryLog{}
}

// Push records r as the most recent round
func (h *HistoryLog) Push(r RoundRecord) {
	h.records = append(h.records, r)
}

// Pop removes and returns the most recent round. ok is false when the log is empty.
func (h *HistoryLog) Pop() (r RoundRecord, ok bool) {
	if len(h.records) == 0 {
		return RoundRecord{}, false
	}
	last := len(h.records) - 1
	r = h.records[last]
	h.records[last] = RoundRecord{}
	h.records = h.records[:last]
	return r, true
}

// Peek returns the most recent round without removing it
func (h *HistoryLog) Peek() (RoundRecord, bool) {
	if len(h.records) == 0 {
		return RoundRecord{}, false
	}
	return h.records[len(h.records)-1], true
}

// IsEmpty reports whether no rounds are held
func (h *HistoryLog) IsEmpty() bool {
	return len(h.records) == 0
}

// Len returns the number of rounds held
func (h *HistoryLog) Len() int {
	return len(h.records)
}

// Traverse returns a copy of every held round, most recent first.
// The log itself is left untouched.
func (h *HistoryLog) Traverse() []RoundRecord {
	out := make([]RoundRecord, len(h.records))
	for i, r := range h.records {
		out[len(h.records)-1-i] = r
	}
	return out
}
