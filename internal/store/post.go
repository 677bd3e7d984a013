package store

import (
	"context"
	"sort"

	"ripple/internal/models"
	"ripple/internal/observability"
)

// clonePost returns a deep copy of a post so callers never observe
// later mutations of the store's copy.
func clonePost(p *models.Post) models.Post {
	out := *p
	out.Likes = make([]int, len(p.Likes))
	copy(out.Likes, p.Likes)
	out.Comments = make([]models.Comment, len(p.Comments))
	copy(out.Comments, p.Comments)
	return out
}

// CreatePost creates a post owned by userID. The owner must exist.
func (s *Store) CreatePost(ctx context.Context, userID int, content string) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userID]; !ok {
		err := models.NewNotFoundError("User not found")
		s.postLog.LogRejected(ctx, "create", err)
		observability.RecordStoreOp("post", "create", err)
		return nil, err
	}

	post := &models.Post{
		ID:       s.nextPostID,
		UserID:   userID,
		Content:  content,
		Likes:    []int{},
		Comments: []models.Comment{},
	}
	s.nextPostID++
	s.posts[post.ID] = post

	s.postLog.LogMutation(ctx, "create", map[string]interface{}{"post_id": post.ID, "user_id": userID})
	observability.RecordStoreOp("post", "create", nil)
	s.updateGauges()

	out := clonePost(post)
	return &out, nil
}

// ListPosts returns a snapshot of all posts ordered by id descending
// (most recent first; ids are unique and monotonic, so the order is a
// stable total order).
func (s *Store) ListPosts(ctx context.Context) ([]models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Post, 0, len(s.posts))
	for _, p := range s.posts {
		out = append(out, clonePost(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

// GetPost returns a snapshot of a single post.
func (s *Store) GetPost(ctx context.Context, id int) (*models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	post, ok := s.posts[id]
	if !ok {
		return nil, models.NewNotFoundError("Post not found")
	}
	out := clonePost(post)
	return &out, nil
}

// DeletePost removes a post. Only the owning user may delete it; the
// ownership check runs before any side effect.
func (s *Store) DeletePost(ctx context.Context, postID, requesterID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[postID]
	if !ok {
		err := models.NewNotFoundError("Post not found")
		s.postLog.LogRejected(ctx, "delete", err)
		observability.RecordStoreOp("post", "delete", err)
		return err
	}
	if post.UserID != requesterID {
		err := models.NewForbiddenError("Not authorized to delete this post")
		s.postLog.LogRejected(ctx, "delete", err)
		observability.RecordStoreOp("post", "delete", err)
		return err
	}

	delete(s.posts, postID)

	s.postLog.LogMutation(ctx, "delete", map[string]interface{}{"post_id": postID, "user_id": requesterID})
	observability.RecordStoreOp("post", "delete", nil)
	s.updateGauges()
	return nil
}

// LikePost adds userID to the post's likes set. The post and the user
// must both exist, and a user may like a post at most once.
func (s *Store) LikePost(ctx context.Context, postID, userID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[postID]
	if !ok {
		err := models.NewNotFoundError("Post not found")
		s.postLog.LogRejected(ctx, "like", err)
		observability.RecordStoreOp("post", "like", err)
		return err
	}
	if _, ok := s.users[userID]; !ok {
		err := models.NewNotFoundError("User not found")
		s.postLog.LogRejected(ctx, "like", err)
		observability.RecordStoreOp("post", "like", err)
		return err
	}
	for _, id := range post.Likes {
		if id == userID {
			err := models.NewDuplicateError("Already liked")
			s.postLog.LogRejected(ctx, "like", err)
			observability.RecordStoreOp("post", "like", err)
			return err
		}
	}

	post.Likes = append(post.Likes, userID)

	s.postLog.LogMutation(ctx, "like", map[string]interface{}{"post_id": postID, "user_id": userID})
	observability.RecordStoreOp("post", "like", nil)
	return nil
}

// UnlikePost removes userID from the post's likes set. Unlike LikePost
// this checks only likes-set membership, not that the user exists; an
// unknown user simply is not in the set.
func (s *Store) UnlikePost(ctx context.Context, postID, userID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[postID]
	if !ok {
		err := models.NewNotFoundError("Post not found")
		s.postLog.LogRejected(ctx, "unlike", err)
		observability.RecordStoreOp("post", "unlike", err)
		return err
	}

	idx := -1
	for i, id := range post.Likes {
		if id == userID {
			idx = i
			break
		}
	}
	if idx == -1 {
		err := models.NewStateError("Not liked yet")
		s.postLog.LogRejected(ctx, "unlike", err)
		observability.RecordStoreOp("post", "unlike", err)
		return err
	}

	post.Likes = append(post.Likes[:idx], post.Likes[idx+1:]...)

	s.postLog.LogMutation(ctx, "unlike", map[string]interface{}{"post_id": postID, "user_id": userID})
	observability.RecordStoreOp("post", "unlike", nil)
	return nil
}

// AddComment appends a comment to a post. Checks run in a fixed order
// so error responses stay deterministic: post existence, then field
// presence, then author existence. Comment ids come from one counter
// shared across all posts.
func (s *Store) AddComment(ctx context.Context, postID, userID int, content string) (*models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[postID]
	if !ok {
		err := models.NewNotFoundError("Post not found")
		s.postLog.LogRejected(ctx, "comment", err)
		observability.RecordStoreOp("comment", "create", err)
		return nil, err
	}
	if userID <= 0 || content == "" {
		err := models.NewValidationError("Missing fields")
		s.postLog.LogRejected(ctx, "comment", err)
		observability.RecordStoreOp("comment", "create", err)
		return nil, err
	}
	if _, ok := s.users[userID]; !ok {
		err := models.NewNotFoundError("User not found")
		s.postLog.LogRejected(ctx, "comment", err)
		observability.RecordStoreOp("comment", "create", err)
		return nil, err
	}

	comment := models.Comment{
		ID:      s.nextCommentID,
		UserID:  userID,
		Content: content,
	}
	s.nextCommentID++
	post.Comments = append(post.Comments, comment)

	s.postLog.LogMutation(ctx, "comment", map[string]interface{}{"post_id": postID, "comment_id": comment.ID})
	observability.RecordStoreOp("comment", "create", nil)

	out := comment
	return &out, nil
}

// ListComments returns a snapshot of a post's comments in insertion
// (chronological) order.
func (s *Store) ListComments(ctx context.Context, postID int) ([]models.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	post, ok := s.posts[postID]
	if !ok {
		return nil, models.NewNotFoundError("Post not found")
	}
	out := make([]models.Comment, len(post.Comments))
	copy(out, post.Comments)
	return out, nil
}
