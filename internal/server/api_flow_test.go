package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"ripple/internal/config"
	"ripple/internal/models"
	"ripple/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newAPITestApp wires a real in-memory store through the full route
// table, including the flag-gated clear endpoint.
func newAPITestApp() *fiber.App {
	cfg := &config.Config{
		Port:         "3000",
		Env:          "development",
		FeatureFlags: "admin_reset=on",
	}
	st := store.New()
	s := NewServerWithDeps(cfg, st, st, st)

	app := fiber.New()
	s.SetupRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	var parsed map[string]interface{}
	// Array responses are decoded by the caller.
	_ = json.NewDecoder(resp.Body).Decode(&parsed)
	_ = resp.Body.Close()
	return resp, parsed
}

func registerUser(t *testing.T, app *fiber.App, name, username string) int {
	t.Helper()
	resp, body := doJSON(t, app, http.MethodPost, "/api/register", map[string]string{
		"name": name, "username": username, "password": "pw",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	user := body["user"].(map[string]interface{})
	return int(user["id"].(float64))
}

func TestAPIFlow(t *testing.T) {
	app := newAPITestApp()

	aliceID := registerUser(t, app, "Alice", "alice")
	bobID := registerUser(t, app, "Bob", "bob")
	require.Equal(t, 1, aliceID)
	require.Equal(t, 2, bobID)

	// Duplicate registration is rejected without consuming an id.
	resp, body := doJSON(t, app, http.MethodPost, "/api/register", map[string]string{
		"name": "Other Alice", "username": "alice", "password": "pw",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Username already exists", body["error"])

	// Login round trip.
	resp, body = doJSON(t, app, http.MethodPost, "/api/login", map[string]string{
		"username": "alice", "password": "pw",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Login successful", body["message"])

	resp, body = doJSON(t, app, http.MethodPost, "/api/login", map[string]string{
		"username": "alice", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid credentials", body["error"])

	// Alice posts twice, Bob once.
	for i, tc := range []struct {
		userID  int
		content string
	}{
		{aliceID, "first"},
		{aliceID, "second"},
		{bobID, "hello from bob"},
	} {
		resp, body = doJSON(t, app, http.MethodPost, "/api/posts", map[string]interface{}{
			"userId": tc.userID, "content": tc.content,
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		post := body["post"].(map[string]interface{})
		assert.Equal(t, float64(i+1), post["id"])
	}

	// Feed is newest-first.
	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	rawResp, err := app.Test(req)
	require.NoError(t, err)
	var posts []models.Post
	require.NoError(t, json.NewDecoder(rawResp.Body).Decode(&posts))
	_ = rawResp.Body.Close()
	require.Len(t, posts, 3)
	assert.Equal(t, []int{3, 2, 1}, []int{posts[0].ID, posts[1].ID, posts[2].ID})

	// Bob likes Alice's first post; a second like is rejected.
	resp, _ = doJSON(t, app, http.MethodPost, "/api/posts/1/like", map[string]interface{}{"userId": bobID})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp, body = doJSON(t, app, http.MethodPost, "/api/posts/1/like", map[string]interface{}{"userId": bobID})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Already liked", body["error"])

	// Unlike, then unlike again.
	resp, _ = doJSON(t, app, http.MethodPost, "/api/posts/1/unlike", map[string]interface{}{"userId": bobID})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp, body = doJSON(t, app, http.MethodPost, "/api/posts/1/unlike", map[string]interface{}{"userId": bobID})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Not liked yet", body["error"])

	// Bob comments on Alice's post.
	resp, body = doJSON(t, app, http.MethodPost, "/api/posts/1/comments", map[string]interface{}{
		"userId": bobID, "content": "nice post",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	comment := body["comment"].(map[string]interface{})
	assert.Equal(t, float64(1), comment["id"])

	// Bob follows Alice; her profile reflects the edge.
	resp, _ = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/users/%d/follow", aliceID),
		map[string]interface{}{"followerId": bobID})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/users/%d", aliceID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), body["followersCount"])
	assert.Equal(t, float64(0), body["followingCount"])

	// Bob cannot delete Alice's post; Alice can.
	resp, body = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/posts/2?userId=%d", bobID), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Not authorized to delete this post", body["error"])

	resp, _ = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/posts/2?userId=%d", aliceID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Clearing resets the counters: the next user is id 1 again.
	resp, _ = doJSON(t, app, http.MethodDelete, "/api/users/clear", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	freshID := registerUser(t, app, "Carol", "carol")
	assert.Equal(t, 1, freshID)
}

func TestClearRouteDisabledByFlag(t *testing.T) {
	cfg := &config.Config{
		Port:         "3000",
		Env:          "production",
		FeatureFlags: "admin_reset=off",
	}
	st := store.New()
	s := NewServerWithDeps(cfg, st, st, st)

	app := fiber.New()
	s.SetupRoutes(app)

	req := httptest.NewRequest(http.MethodDelete, "/api/users/clear", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestHealthEndpoints(t *testing.T) {
	app := newAPITestApp()

	for _, path := range []string{"/health/live", "/health/ready"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		_ = resp.Body.Close()
	}
}
