package server

import (
	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /api/posts
// @Summary Create a post
// @Tags posts
// @Accept json
// @Produce json
// @Param request body object{userId=int,content=string} true "Post"
// @Success 200 {object} object{message=string,post=models.Post}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /posts [post]
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		UserID  int    `json:"userId"`
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Missing fields"))
	}

	// Validate required fields
	if req.UserID <= 0 || req.Content == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Missing fields"))
	}

	post, err := s.posts.CreatePost(c.UserContext(), req.UserID, req.Content)
	if err != nil {
		return models.RespondWithError(c, models.StatusFor(err), err)
	}

	return c.JSON(fiber.Map{
		"message": "Post created",
		"post":    post,
	})
}

// GetPosts handles GET /api/posts
// @Summary List all posts, latest first
// @Tags posts
// @Produce json
// @Success 200 {array} models.Post
// @Router /posts [get]
func (s *Server) GetPosts(c *fiber.Ctx) error {
	posts, err := s.posts.ListPosts(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(posts)
}

// LikePost handles POST /api/posts/:id/like
// @Summary Like a post
// @Tags posts
// @Accept json
// @Produce json
// @Param request body object{userId=int} true "Liking user"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /posts/{id}/like [post]
func (s *Server) LikePost(c *fiber.Ctx) error {
	postID, ok := parseID(c, "id", "Post not found")
	if !ok {
		return nil
	}

	var req struct {
		UserID int `json:"userId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Missing fields"))
	}

	if err := s.posts.LikePost(c.UserContext(), postID, req.UserID); err != nil {
		return models.RespondWithError(c, models.StatusFor(err), err)
	}

	return c.JSON(fiber.Map{"message": "Post liked"})
}

// UnlikePost handles POST /api/posts/:id/unlike
// @Summary Unlike a post
// @Tags posts
// @Accept json
// @Produce json
// @Param request body object{userId=int} true "Unliking user"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /posts/{id}/unlike [post]
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	postID, ok := parseID(c, "id", "Post not found")
	if !ok {
		return nil
	}

	var req struct {
		UserID int `json:"userId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Missing fields"))
	}

	if err := s.posts.UnlikePost(c.UserContext(), postID, req.UserID); err != nil {
		return models.RespondWithError(c, models.StatusFor(err), err)
	}

	return c.JSON(fiber.Map{"message": "Post unliked"})
}

// DeletePost handles DELETE /api/posts/:id?userId=ID
// The requester id arrives as a query parameter; a missing or
// unparsable value is a missing field, checked before the post lookup.
// @Summary Delete a post (owner only)
// @Tags posts
// @Produce json
// @Param userId query int true "Requesting user id"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /posts/{id} [delete]
func (s *Server) DeletePost(c *fiber.Ctx) error {
	userID := c.QueryInt("userId", 0)
	if userID <= 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("User ID required"))
	}

	postID, ok := parseID(c, "id", "Post not found")
	if !ok {
		return nil
	}

	if err := s.posts.DeletePost(c.UserContext(), postID, userID); err != nil {
		return models.RespondWithError(c, models.StatusFor(err), err)
	}

	return c.JSON(fiber.Map{"message": "Post deleted successfully"})
}
