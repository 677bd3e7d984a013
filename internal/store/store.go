// Package store implements the in-memory social-graph store. It owns
// the users, posts and follow-edge collections plus the monotonic id
// counters, and enforces the consistency rules at the operation level.
package store

import (
	"context"
	"sync"

	"ripple/internal/models"
	"ripple/internal/observability"
)

// UserStore defines user and profile operations.
type UserStore interface {
	CreateUser(ctx context.Context, name, username, password string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByID(ctx context.Context, id int) (*models.User, error)
	Profile(ctx context.Context, id int) (*models.Profile, error)
	ClearAll(ctx context.Context) error
}

// PostStore defines post, like and comment operations.
type PostStore interface {
	CreatePost(ctx context.Context, userID int, content string) (*models.Post, error)
	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, id int) (*models.Post, error)
	DeletePost(ctx context.Context, postID, requesterID int) error
	LikePost(ctx context.Context, postID, userID int) error
	UnlikePost(ctx context.Context, postID, userID int) error
	AddComment(ctx context.Context, postID, userID int, content string) (*models.Comment, error)
	ListComments(ctx context.Context, postID int) ([]models.Comment, error)
}

// FollowStore defines follow-edge operations.
type FollowStore interface {
	Follow(ctx context.Context, followerID, followingID int) error
	Unfollow(ctx context.Context, followerID, followingID int) error
}

// edge is a directed follow relationship key.
type edge struct {
	follower  int
	following int
}

// Store holds all collections in process memory. Mutating operations
// take the write lock for their whole check-then-act sequence, so every
// operation is atomic with respect to concurrent requests; reads take
// the read lock and return copies, never interior pointers.
type Store struct {
	mu sync.RWMutex

	users     map[int]*models.User
	usernames map[string]int
	posts     map[int]*models.Post
	follows   map[edge]struct{}

	// id counters are monotonic and never reused; only ClearAll resets them
	nextUserID    int
	nextPostID    int
	nextCommentID int

	userLog   *observability.StoreLogger
	postLog   *observability.StoreLogger
	followLog *observability.StoreLogger
}

var (
	_ UserStore   = (*Store)(nil)
	_ PostStore   = (*Store)(nil)
	_ FollowStore = (*Store)(nil)
)

// New creates an empty store with all counters at 1.
func New() *Store {
	s := &Store{
		userLog:   observability.NewStoreLogger("user"),
		postLog:   observability.NewStoreLogger("post"),
		followLog: observability.NewStoreLogger("follow"),
	}
	s.reset()
	return s
}

// reset reinitializes collections and counters. Callers hold the write
// lock (or own the store exclusively, as in New).
func (s *Store) reset() {
	s.users = make(map[int]*models.User)
	s.usernames = make(map[string]int)
	s.posts = make(map[int]*models.Post)
	s.follows = make(map[edge]struct{})
	s.nextUserID = 1
	s.nextPostID = 1
	s.nextCommentID = 1
}

// ClearAll empties every collection and resets all three id counters
// to 1. Intended for test isolation; the API layer gates the endpoint
// that reaches it.
func (s *Store) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reset()

	s.userLog.LogMutation(ctx, "clear_all", nil)
	observability.RecordStoreOp("store", "clear_all", nil)
	s.updateGauges()
	return nil
}

// updateGauges refreshes the live-entity metrics. Callers hold the lock.
func (s *Store) updateGauges() {
	observability.SetEntityCount("user", len(s.users))
	observability.SetEntityCount("post", len(s.posts))
	observability.SetEntityCount("follow", len(s.follows))
}
