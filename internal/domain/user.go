package domain

// User represents a person who contacted the bot at least once.
type User struct {
	UserID   int64
	Username string
}

// ChatInfo is the subset of chat metadata the bot needs for
// reachability checks and display-name resolution.
type ChatInfo struct {
	ID       int64
	Username string
}
