package models

// TimestampLayout is the display format used for history entry timestamps,
// e.g. "04 Mar 2026 18:27".
const TimestampLayout = "02 Jan 2006 15:04"

// ProfileInput holds the five profile fields submitted by a user,
// after sanitization.
type ProfileInput struct {
	UserName  string `json:"user_name"`
	Interests string `json:"interests"`
	Skills    string `json:"skills"`
	Education string `json:"education"`
	Goals     string `json:"goals"`
}

// HistoryEntry records one completed advice request. Entries are created
// once per successful request and never modified afterwards.
type HistoryEntry struct {
	Name      string       `json:"name"`
	Timestamp string       `json:"timestamp"`
	Inputs    ProfileInput `json:"inputs"`
	Advice    string       `json:"advice"`
}
