package domain

import "time"

// HistoryRecord is one dispatched command line.
type HistoryRecord struct {
	ID        string
	Sender    string
	Line      string
	Outcome   string
	Error     string
	CreatedAt time.Time
}

// HistoryFilter narrows history queries. Zero values mean no constraint.
type HistoryFilter struct {
	Sender  string
	Outcome string
	Limit   int
	Offset  int
}
