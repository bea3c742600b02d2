// Package server is the resource-oriented transport adapter: the Fiber app,
// its middleware stack, the REST routes and the GraphQL endpoint.
package server

import (
	"context"
	"errors"
	"net"
	"time"

	"inkwell/config"
	"inkwell/database"
	"inkwell/graph"
	"inkwell/middleware"
	"inkwell/models"
	"inkwell/repository"
	"inkwell/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/graphql-go/graphql"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers.
type Server struct {
	config *config.Config
	db     *gorm.DB
	redis  *redis.Client
	app    *fiber.App

	promMiddleware *fiberprometheus.FiberPrometheus

	users *service.UserService
	posts *service.PostService
	tasks *service.TaskService

	schema graphql.Schema
}

// New creates a server over an already-connected database handle and an
// optional Redis client.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*Server, error) {
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	// Each server carries its own metrics registry so instances never
	// collide on collector registration.
	prom := fiberprometheus.NewWithRegistry(prometheus.NewRegistry(), "inkwell-api", "http", "", nil)

	s := &Server{
		config:         cfg,
		db:             db,
		redis:          rdb,
		promMiddleware: prom,
		users:          service.NewUserService(userRepo, postRepo),
		posts:          service.NewPostService(postRepo, userRepo),
		tasks:          service.NewTaskService(taskRepo, userRepo),
	}

	schema, err := graph.NewSchema(s.users, s.posts, s.tasks, cfg.ExcerptLength)
	if err != nil {
		return nil, err
	}
	s.schema = schema

	s.app = fiber.New(fiber.Config{
		AppName: "Inkwell API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				return c.Status(fiberErr.Code).JSON(models.ErrorResponse{Error: fiberErr.Message})
			}
			return models.RespondWithError(c, fiber.StatusInternalServerError, err)
		},
	})

	s.setupMiddleware()
	s.setupRoutes()

	return s, nil
}

// App exposes the underlying Fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) setupMiddleware() {
	s.app.Use(requestid.New())
	s.app.Use(middleware.Tracing())
	s.app.Use(s.promMiddleware.Middleware)
	s.app.Use(helmet.New())
	s.app.Use(middleware.StructuredLogger())

	// Global rate limiting (100 requests per minute per IP)
	s.app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}

	s.app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400,
	}))
}

func (s *Server) setupRoutes() {
	s.promMiddleware.RegisterAt(s.app, "/metrics")

	s.app.Post("/graphql", graph.Handler(s.schema))

	api := s.app.Group("/api")
	api.Get("/", s.HealthCheck)

	users := api.Group("/users")
	users.Get("/", s.GetUsers)
	users.Post("/", middleware.RateLimit(s.redis, 10, time.Minute, "create_user"), s.CreateUser)
	// Define specific /:id/:resource routes BEFORE generic /:id route
	users.Get("/:id/posts", s.GetUserPosts)
	users.Get("/:id/tasks", s.GetUserTasks)
	users.Get("/:id", s.GetUser)
	users.Put("/:id", s.UpdateUser)
	users.Delete("/:id", s.DeleteUser)

	posts := api.Group("/posts")
	posts.Get("/", s.GetPosts)
	posts.Post("/", middleware.RateLimit(s.redis, 10, time.Minute, "create_post"), s.CreatePost)
	posts.Get("/:id", s.GetPost)
	posts.Put("/:id", s.UpdatePost)
	posts.Delete("/:id", s.DeletePost)

	tasks := api.Group("/tasks")
	tasks.Get("/", s.GetTasks)
	tasks.Post("/", middleware.RateLimit(s.redis, 10, time.Minute, "create_task"), s.CreateTask)
	tasks.Get("/:id", s.GetTask)
	tasks.Put("/:id", s.UpdateTask)
	tasks.Delete("/:id", s.DeleteTask)
}

// HealthCheck handles health check requests.
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(fiber.Map{
		"status": "healthy",
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// respondError translates store and service errors into wire status codes.
// This is the only place REST error translation happens.
func (s *Server) respondError(c *fiber.Ctx, err error) error {
	var validation *models.ValidationError
	var reference *models.ReferenceError
	var notFound *models.NotFoundError

	switch {
	case errors.As(err, &notFound):
		return c.SendStatus(fiber.StatusNotFound)
	case errors.As(err, &validation):
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	case errors.As(err, &reference):
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	default:
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
}

// Start starts the server.
func (s *Server) Start() error {
	return s.app.Listen(net.JoinHostPort(s.config.Host, s.config.Port))
}

// Shutdown gracefully shuts down the server and its connections.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.app.ShutdownWithContext(ctx); err != nil {
		return err
	}

	if err := database.Close(s.db); err != nil {
		return err
	}

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			return err
		}
	}

	return nil
}
