// Package seed creates demo data against a running API instance. The
// store lives in process memory, so seeding has to go through the live
// server rather than a database handle.
package seed

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v6"
)

// RegisterPayload is the request body for POST /api/register.
type RegisterPayload struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// PostPayload is the request body for POST /api/posts.
type PostPayload struct {
	UserID  int    `json:"userId"`
	Content string `json:"content"`
}

// CommentPayload is the request body for POST /api/posts/:id/comments.
type CommentPayload struct {
	UserID  int    `json:"userId"`
	Content string `json:"content"`
}

// Factory builds fake request payloads. A fixed seed value makes the
// generated data reproducible across runs.
type Factory struct {
	faker *gofakeit.Faker
	n     int
}

// NewFactory creates a Factory seeded with the given value.
func NewFactory(seed int64) *Factory {
	return &Factory{faker: gofakeit.New(seed)}
}

// Register builds a registration payload with a unique username.
func (f *Factory) Register() RegisterPayload {
	f.n++
	return RegisterPayload{
		Name: f.faker.Name(),
		// usernames must be unique per run; suffix with a counter
		Username: fmt.Sprintf("%s%d", f.faker.Username(), f.n),
		Password: f.faker.Password(true, true, true, false, false, 12),
	}
}

// Post builds a post payload for the given user.
func (f *Factory) Post(userID int) PostPayload {
	return PostPayload{
		UserID:  userID,
		Content: f.faker.Sentence(f.faker.Number(5, 15)),
	}
}

// Comment builds a comment payload for the given user.
func (f *Factory) Comment(userID int) CommentPayload {
	return CommentPayload{
		UserID:  userID,
		Content: f.faker.Sentence(f.faker.Number(3, 10)),
	}
}

// Number exposes the faker's bounded integer generator for callers
// picking random follow/like targets.
func (f *Factory) Number(min, max int) int {
	return f.faker.Number(min, max)
}
