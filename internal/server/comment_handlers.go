package server

import (
	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateComment handles POST /api/posts/:id/comments
// Validation order is part of the contract: post existence first, then
// field presence, then author existence. The store runs that sequence
// atomically.
// @Summary Comment on a post
// @Tags comments
// @Accept json
// @Produce json
// @Param request body object{userId=int,content=string} true "Comment"
// @Success 200 {object} object{message=string,comment=models.Comment}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /posts/{id}/comments [post]
func (s *Server) CreateComment(c *fiber.Ctx) error {
	postID, ok := parseID(c, "id", "Post not found")
	if !ok {
		return nil
	}

	var req struct {
		UserID  int    `json:"userId"`
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Missing fields"))
	}

	comment, err := s.posts.AddComment(c.UserContext(), postID, req.UserID, req.Content)
	if err != nil {
		return models.RespondWithError(c, models.StatusFor(err), err)
	}

	return c.JSON(fiber.Map{
		"message": "Comment added",
		"comment": comment,
	})
}

// GetComments handles GET /api/posts/:id/comments
// @Summary List a post's comments in insertion order
// @Tags comments
// @Produce json
// @Success 200 {array} models.Comment
// @Failure 404 {object} models.ErrorResponse
// @Router /posts/{id}/comments [get]
func (s *Server) GetComments(c *fiber.Ctx) error {
	postID, ok := parseID(c, "id", "Post not found")
	if !ok {
		return nil
	}

	comments, err := s.posts.ListComments(c.UserContext(), postID)
	if err != nil {
		return models.RespondWithError(c, models.StatusFor(err), err)
	}

	return c.JSON(comments)
}
