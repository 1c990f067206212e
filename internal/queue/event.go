// Package queue defines message payloads exchanged over the message broker.
package queue

// BattleCompletedEvent is published after a battle's outcome has been
// persisted. It contains enough information for downstream consumers to
// log or trigger analytics without querying the primary database.
type BattleCompletedEvent struct {
	EventID     string  `json:"event_id"`
	WinnerID    uint64  `json:"winner_id"`
	WinnerName  string  `json:"winner"`
	WinnerScore float64 `json:"winner_score"`
	LoserID     uint64  `json:"loser_id"`
	LoserName   string  `json:"loser"`
	LoserScore  float64 `json:"loser_score"`
	OccurredAt  string  `json:"occurred_at"`
}
