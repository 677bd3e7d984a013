package store

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/observability"
)

// Follow creates a directed follow edge. Self-follows are rejected
// before existence checks, duplicate edges after them, so the most
// specific error always wins.
func (s *Store) Follow(ctx context.Context, followerID, followingID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if followerID == followingID {
		err := models.NewValidationError("Cannot follow yourself")
		s.followLog.LogRejected(ctx, "follow", err)
		observability.RecordStoreOp("follow", "create", err)
		return err
	}
	if _, ok := s.users[followerID]; !ok {
		err := models.NewNotFoundError("User not found")
		s.followLog.LogRejected(ctx, "follow", err)
		observability.RecordStoreOp("follow", "create", err)
		return err
	}
	if _, ok := s.users[followingID]; !ok {
		err := models.NewNotFoundError("User not found")
		s.followLog.LogRejected(ctx, "follow", err)
		observability.RecordStoreOp("follow", "create", err)
		return err
	}

	e := edge{follower: followerID, following: followingID}
	if _, exists := s.follows[e]; exists {
		err := models.NewDuplicateError("Already following")
		s.followLog.LogRejected(ctx, "follow", err)
		observability.RecordStoreOp("follow", "create", err)
		return err
	}

	s.follows[e] = struct{}{}

	s.followLog.LogMutation(ctx, "follow", map[string]interface{}{"follower_id": followerID, "following_id": followingID})
	observability.RecordStoreOp("follow", "create", nil)
	s.updateGauges()
	return nil
}

// Unfollow removes a follow edge. The only failure is the edge being
// absent; neither end is checked for existence, since an edge can only
// exist between users that did.
func (s *Store) Unfollow(ctx context.Context, followerID, followingID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := edge{follower: followerID, following: followingID}
	if _, exists := s.follows[e]; !exists {
		err := models.NewStateError("Not following")
		s.followLog.LogRejected(ctx, "unfollow", err)
		observability.RecordStoreOp("follow", "delete", err)
		return err
	}

	delete(s.follows, e)

	s.followLog.LogMutation(ctx, "unfollow", map[string]interface{}{"follower_id": followerID, "following_id": followingID})
	observability.RecordStoreOp("follow", "delete", nil)
	s.updateGauges()
	return nil
}
