package domain

// User is the store-independent projection of a user record. Credential
// material is deliberately absent: it never leaves the store layer.
type User struct {
	ID               uint
	Username         string
	Mood             string
	Interests        []string
	FriendIDs        []uint
	FriendRequestIDs []uint
}

// Summary is the minimal display projection used when resolving friend and
// request ID sets.
type Summary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// Profile is what a user sees of their own record.
type Profile struct {
	Username  string   `json:"username"`
	Mood      string   `json:"mood"`
	Interests []string `json:"interests"`
}

// Recommendation ranks a non-friend candidate by the number of friends shared
// with the requesting user.
type Recommendation struct {
	Username           string `json:"username"`
	MutualFriendsCount int    `json:"mutualFriendsCount"`
}
