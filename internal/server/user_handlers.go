package server

import (
	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetUserProfile handles GET /api/users/:id
// @Summary Get user profile
// @Description Public profile with follower and following counts
// @Tags users
// @Produce json
// @Success 200 {object} models.Profile
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{id} [get]
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	id, ok := parseID(c, "id", "User not found")
	if !ok {
		return nil
	}

	profile, err := s.users.Profile(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, models.StatusFor(err), err)
	}

	return c.JSON(profile)
}

// FollowUser handles POST /api/users/:id/follow
// @Summary Follow a user
// @Tags users
// @Accept json
// @Produce json
// @Param request body object{followerId=int} true "Follower"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{id}/follow [post]
func (s *Server) FollowUser(c *fiber.Ctx) error {
	followingID, ok := parseID(c, "id", "User not found")
	if !ok {
		return nil
	}

	var req struct {
		FollowerID int `json:"followerId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Missing fields"))
	}

	if err := s.follows.Follow(c.UserContext(), req.FollowerID, followingID); err != nil {
		return models.RespondWithError(c, models.StatusFor(err), err)
	}

	return c.JSON(fiber.Map{"message": "Followed successfully"})
}

// UnfollowUser handles POST /api/users/:id/unfollow
// The only failure mode is "Not following": neither end of the edge is
// checked for existence, so a bad id degrades to the same 400.
// @Summary Unfollow a user
// @Tags users
// @Accept json
// @Produce json
// @Param request body object{followerId=int} true "Follower"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} models.ErrorResponse
// @Router /users/{id}/unfollow [post]
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	followingID, _ := c.ParamsInt("id")

	var req struct {
		FollowerID int `json:"followerId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Missing fields"))
	}

	if err := s.follows.Unfollow(c.UserContext(), req.FollowerID, followingID); err != nil {
		return models.RespondWithError(c, models.StatusFor(err), err)
	}

	return c.JSON(fiber.Map{"message": "Unfollowed successfully"})
}

// ClearAll handles DELETE /api/users/clear. Test-only reset: empties
// every collection and resets the id counters. The route is registered
// only when the admin_reset feature flag is enabled.
func (s *Server) ClearAll(c *fiber.Ctx) error {
	if err := s.users.ClearAll(c.UserContext()); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{"message": "All users and related data cleared"})
}
