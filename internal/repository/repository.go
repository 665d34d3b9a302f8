package repository

// UserStore defines persistence for the set of known user IDs.
// Record must persist the updated set before returning.
type UserStore interface {
	Contains(userID int64) bool
	Record(userID int64) error
	Len() int
}
