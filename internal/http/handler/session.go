package handler

import (
	"github.com/gofiber/fiber/v2"

	"examdocs/internal/model"
	"examdocs/internal/service"
)

type roomRequest struct {
	Name     string `json:"name" form:"name"`
	Capacity int    `json:"capacity" form:"capacity"`
}

// CreateSession starts an empty session.
// @Summary Create session
// @Tags sessions
// @Produce json
// @Success 201 {object} session.Snapshot
// @Router /sessions [post]
func CreateSession(svc service.SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusCreated).JSON(svc.Create())
	}
}

// GetSession returns the rooms of a session.
// @Summary Get session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} session.Snapshot
// @Failure 404 {object} errorPayload
// @Router /sessions/{id} [get]
func GetSession(svc service.SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		snap, err := svc.Get(c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(snap)
	}
}

// DeleteSession drops a session and its rooms.
// @Summary Delete session
// @Tags sessions
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} errorPayload
// @Router /sessions/{id} [delete]
func DeleteSession(svc service.SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.Params("id")); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// AddRoom appends a room ({name, capacity}) to a session.
// @Summary Add room
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param room body roomRequest true "Room"
// @Success 201 {object} session.Snapshot
// @Failure 400 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Router /sessions/{id}/rooms [post]
func AddRoom(svc service.SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req roomRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "body must be {name, capacity}")
		}
		snap, err := svc.AddRoom(c.Params("id"), model.Room{Name: req.Name, Capacity: req.Capacity})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(snap)
	}
}

// ClearRooms removes every room of a session.
// @Summary Clear rooms
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} session.Snapshot
// @Router /sessions/{id}/rooms [delete]
func ClearRooms(svc service.SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		snap, err := svc.ClearRooms(c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(snap)
	}
}
