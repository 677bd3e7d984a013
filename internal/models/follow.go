package models

// Follow is a directed follow edge: FollowerID follows FollowingID.
// Both ends must reference existing users at creation time and the
// ordered pair is unique.
type Follow struct {
	FollowerID  int `json:"followerId"`
	FollowingID int `json:"followingId"`
}
