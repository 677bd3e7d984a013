package seed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
)

// Options configures a seeding run.
type Options struct {
	BaseURL  string // e.g. http://localhost:3000
	Users    int
	PostsPer int // posts per user
	Seed     int64
}

// Stats reports what a seeding run created.
type Stats struct {
	Users    int
	Posts    int
	Follows  int
	Likes    int
	Comments int
}

// Seeder drives the HTTP API to populate a running instance.
type Seeder struct {
	opts    Options
	client  *http.Client
	factory *Factory
}

// NewSeeder creates a Seeder for the given options.
func NewSeeder(opts Options) *Seeder {
	if opts.Users <= 0 {
		opts.Users = 10
	}
	if opts.PostsPer <= 0 {
		opts.PostsPer = 3
	}
	return &Seeder{
		opts:    opts,
		client:  &http.Client{},
		factory: NewFactory(opts.Seed),
	}
}

type registeredUser struct {
	ID int `json:"id"`
}

type registerResponse struct {
	User registeredUser `json:"user"`
}

type createPostResponse struct {
	Post struct {
		ID int `json:"id"`
	} `json:"post"`
}

// Run registers users, creates posts, and layers follows, likes and
// comments on top. Duplicate-edge rejections from random pairings are
// expected and skipped.
func (s *Seeder) Run(ctx context.Context) (Stats, error) {
	var stats Stats

	userIDs := make([]int, 0, s.opts.Users)
	for i := 0; i < s.opts.Users; i++ {
		var resp registerResponse
		if err := s.postJSON(ctx, "/api/register", s.factory.Register(), &resp); err != nil {
			return stats, fmt.Errorf("register user: %w", err)
		}
		userIDs = append(userIDs, resp.User.ID)
		stats.Users++
	}

	postIDs := make([]int, 0, s.opts.Users*s.opts.PostsPer)
	for _, uid := range userIDs {
		n := s.factory.Number(1, s.opts.PostsPer)
		for i := 0; i < n; i++ {
			var resp createPostResponse
			if err := s.postJSON(ctx, "/api/posts", s.factory.Post(uid), &resp); err != nil {
				return stats, fmt.Errorf("create post: %w", err)
			}
			postIDs = append(postIDs, resp.Post.ID)
			stats.Posts++
		}
	}

	// Random follow mesh: each user follows a handful of others.
	for _, uid := range userIDs {
		for i := 0; i < s.factory.Number(1, 4); i++ {
			target := userIDs[s.factory.Number(0, len(userIDs)-1)]
			if target == uid {
				continue
			}
			path := fmt.Sprintf("/api/users/%d/follow", target)
			err := s.postJSON(ctx, path, map[string]int{"followerId": uid}, nil)
			if err != nil {
				continue // duplicate edge from random pairing
			}
			stats.Follows++
		}
	}

	// Random likes and comments.
	for _, uid := range userIDs {
		for i := 0; i < s.factory.Number(1, 5); i++ {
			pid := postIDs[s.factory.Number(0, len(postIDs)-1)]
			likePath := fmt.Sprintf("/api/posts/%d/like", pid)
			if err := s.postJSON(ctx, likePath, map[string]int{"userId": uid}, nil); err == nil {
				stats.Likes++
			}
		}
		for i := 0; i < s.factory.Number(0, 3); i++ {
			pid := postIDs[s.factory.Number(0, len(postIDs)-1)]
			commentPath := fmt.Sprintf("/api/posts/%d/comments", pid)
			if err := s.postJSON(ctx, commentPath, s.factory.Comment(uid), nil); err == nil {
				stats.Comments++
			}
		}
	}

	log.Printf("seeded %d users, %d posts, %d follows, %d likes, %d comments",
		stats.Users, stats.Posts, stats.Follows, stats.Likes, stats.Comments)
	return stats, nil
}

// postJSON sends a JSON body and optionally decodes a 2xx response into out.
func (s *Seeder) postJSON(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.opts.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%s: status %d: %s", path, resp.StatusCode, msg)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
