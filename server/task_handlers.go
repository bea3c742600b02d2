package server

import (
	"time"

	"inkwell/models"

	"github.com/gofiber/fiber/v2"
)

// GetTasks handles GET /api/tasks
func (s *Server) GetTasks(c *fiber.Ctx) error {
	if userID := c.Query("user_id"); userID != "" {
		tasks, err := s.tasks.ListByUser(c.Context(), userID)
		if err != nil {
			return s.respondError(c, err)
		}
		return c.JSON(tasks)
	}

	tasks, err := s.tasks.List(c.Context())
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(tasks)
}

// GetTask handles GET /api/tasks/:id
func (s *Server) GetTask(c *fiber.Ctx) error {
	task, err := s.tasks.Get(c.Context(), c.Params("id"))
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(task)
}

// CreateTask handles POST /api/tasks
func (s *Server) CreateTask(c *fiber.Ctx) error {
	var req struct {
		Title       string    `json:"title"`
		Description string    `json:"description"`
		UserID      string    `json:"user_id"`
		StartDate   time.Time `json:"start_date"`
		EndDate     time.Time `json:"end_date"`
		Status      string    `json:"status"`
		Priority    string    `json:"priority"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("invalid request body"))
	}

	task := &models.Task{
		Title:       req.Title,
		Description: req.Description,
		UserID:      req.UserID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      models.TaskStatus(req.Status),
		Priority:    models.TaskPriority(req.Priority),
	}
	created, err := s.tasks.Create(c.Context(), task)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateTask handles PUT /api/tasks/:id
func (s *Server) UpdateTask(c *fiber.Ctx) error {
	var update models.TaskUpdate
	if err := c.BodyParser(&update); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("invalid request body"))
	}

	task, err := s.tasks.Update(c.Context(), c.Params("id"), update)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(task)
}

// DeleteTask handles DELETE /api/tasks/:id
func (s *Server) DeleteTask(c *fiber.Ctx) error {
	if _, err := s.tasks.Delete(c.Context(), c.Params("id")); err != nil {
		return s.respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
