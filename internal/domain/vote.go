package domain

import "time"

// Vote represents a single user's vote. At most one row exists per
// user; re-voting updates Name and UpdatedAt in place, the row id is
// stable across re-votes.
type Vote struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// VoteSummaryEntry is one option's share of the tally
type VoteSummaryEntry struct {
	Name       string  `json:"name"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// VoteSummary is the derived, on-demand aggregation of votes grouped
// by option name, ordered by count descending. Winner is nil when no
// votes exist. Ties break by option name ascending.
type VoteSummary struct {
	Winner *string            `json:"winner"`
	Count  int                `json:"count"`
	List   []VoteSummaryEntry `json:"list"`
}

// VoteRequest represents a vote submission request
type VoteRequest struct {
	Name string `json:"name"`
}

// VoteResponse represents the response after voting
type VoteResponse struct {
	ID string `json:"id"`
}

// CurrentVoteResponse wraps the caller's current vote, nil if the user
// has not voted yet.
type CurrentVoteResponse struct {
	CurrentVote *Vote `json:"current_vote"`
}

// OptionsResponse lists the distinct option names voted so far
type OptionsResponse struct {
	List []string `json:"list"`
}
