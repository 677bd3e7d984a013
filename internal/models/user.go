// Package models defines the domain entities and API wire shapes.
package models

// User is a registered account. The password is stored verbatim and is
// never serialized in responses.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"-"`
}

// Profile is the public view of a user, with follower and following
// counts computed from the follow edges at read time.
type Profile struct {
	ID             int    `json:"id"`
	Username       string `json:"username"`
	Name           string `json:"name"`
	FollowersCount int    `json:"followersCount"`
	FollowingCount int    `json:"followingCount"`
}
