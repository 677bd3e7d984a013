package models

// Post is a text post in the feed. Likes is the set of user ids that
// liked the post (a given id appears at most once); Comments is the
// comment sequence in insertion order.
type Post struct {
	ID       int       `json:"id"`
	UserID   int       `json:"userId"`
	Content  string    `json:"content"`
	Likes    []int     `json:"likes"`
	Comments []Comment `json:"comments"`
}

// Comment is a single comment attached to a post. Comment ids are drawn
// from one counter shared across all posts.
type Comment struct {
	ID      int    `json:"id"`
	UserID  int    `json:"userId"`
	Content string `json:"content"`
}
