package store

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/observability"
)

// CreateUser registers a new user. Usernames are unique; ids are
// assigned sequentially and never reused.
func (s *Store) CreateUser(ctx context.Context, name, username, password string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.usernames[username]; taken {
		err := models.NewDuplicateError("Username already exists")
		s.userLog.LogRejected(ctx, "create", err)
		observability.RecordStoreOp("user", "create", err)
		return nil, err
	}

	user := &models.User{
		ID:       s.nextUserID,
		Username: username,
		Name:     name,
		Password: password,
	}
	s.nextUserID++
	s.users[user.ID] = user
	s.usernames[username] = user.ID

	s.userLog.LogMutation(ctx, "create", map[string]interface{}{"user_id": user.ID, "username": username})
	observability.RecordStoreOp("user", "create", nil)
	s.updateGauges()

	out := *user
	return &out, nil
}

// GetUserByUsername returns the user with the given username, or nil
// when no such user exists.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.usernames[username]
	if !ok {
		return nil, nil
	}
	out := *s.users[id]
	return &out, nil
}

// GetUserByID returns the user with the given id, or nil when no such
// user exists. The keyed map keeps per-post author lookups O(1).
func (s *Store) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	out := *user
	return &out, nil
}

// Profile returns the public view of a user. Follower and following
// counts are computed by scanning the follow edges at read time; the
// store keeps no cached counters.
func (s *Store) Profile(ctx context.Context, id int) (*models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, models.NewNotFoundError("User not found")
	}

	followers, following := 0, 0
	for e := range s.follows {
		if e.following == id {
			followers++
		}
		if e.follower == id {
			following++
		}
	}

	return &models.Profile{
		ID:             user.ID,
		Username:       user.Username,
		Name:           user.Name,
		FollowersCount: followers,
		FollowingCount: following,
	}, nil
}
