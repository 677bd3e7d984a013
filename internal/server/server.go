// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"time"

	"ripple/internal/config"
	"ripple/internal/featureflags"
	"ripple/internal/middleware"
	"ripple/internal/store"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	users          store.UserStore
	posts          store.PostStore
	follows        store.FollowStore
	promMiddleware *fiberprometheus.FiberPrometheus
	featureFlags   *featureflags.Manager
}

// NewServer creates a new server instance owning a fresh store.
func NewServer(cfg *config.Config) *Server {
	st := store.New()
	srv := NewServerWithDeps(cfg, st, st, st)
	// Prometheus registration is global; only the production constructor
	// wires it so repeated test servers do not collide in the registry.
	srv.promMiddleware = fiberprometheus.New("ripple-api")
	return srv
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes the store.
func NewServerWithDeps(cfg *config.Config, users store.UserStore, posts store.PostStore, follows store.FollowStore) *Server {
	return &Server{
		config:       cfg,
		users:        users,
		posts:        posts,
		follows:      follows,
		featureFlags: featureflags.NewManager(cfg.FeatureFlags),
	}
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context middleware to propagate the request ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
		app.Use(s.promMiddleware.Middleware)
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS middleware runs last so browser clients still receive CORS
	// headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept",
		MaxAge:       86400, // 24 hours
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	// Auth routes
	api.Post("/register", s.Register)
	api.Post("/login", s.Login)

	// User routes
	users := api.Group("/users")
	// The bulk reset is registered only when the admin_reset flag is on;
	// production deployments run without the route entirely.
	if s.featureFlags.Enabled("admin_reset", 0) {
		users.Delete("/clear", s.ClearAll)
	}
	// Define specific /:id/:resource routes BEFORE generic /:id route
	users.Post("/:id/follow", s.FollowUser)
	users.Post("/:id/unfollow", s.UnfollowUser)
	users.Get("/:id", s.GetUserProfile)

	// Post routes
	posts := api.Group("/posts")
	posts.Post("/", s.CreatePost)
	posts.Get("/", s.GetPosts)
	// Define specific /:id/:resource routes BEFORE generic /:id route
	posts.Post("/:id/like", s.LikePost)
	posts.Post("/:id/unlike", s.UnlikePost)
	posts.Post("/:id/comments", s.CreateComment)
	posts.Get("/:id/comments", s.GetComments)
	posts.Delete("/:id", s.DeletePost)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests. The store lives in
// process memory, so readiness reduces to the process being up.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "healthy",
		"checks": fiber.Map{
			"store": "healthy",
		},
		"time": time.Now(),
	})
}
