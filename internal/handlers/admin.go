package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/disha-labs/disha-backend/internal/dialog"
	"github.com/disha-labs/disha-backend/internal/models"
	"github.com/disha-labs/disha-backend/internal/storage"
)

// AdminHandler exposes session inspection/reset and catalog management.
type AdminHandler struct {
	store   storage.Store
	manager *dialog.Manager
}

// NewAdminHandler creates an admin handler.
func NewAdminHandler(store storage.Store, manager *dialog.Manager) *AdminHandler {
	return &AdminHandler{store: store, manager: manager}
}

// ListSessions returns every dialog session.
func (h *AdminHandler) ListSessions(c *fiber.Ctx) error {
	sessions, err := h.store.ListSessions()
	if err != nil {
		log.Printf("Error listing sessions: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list sessions",
		})
	}
	return c.JSON(fiber.Map{
		"count":    len(sessions),
		"sessions": sessions,
	})
}

// GetSession returns one phone's dialog state.
func (h *AdminHandler) GetSession(c *fiber.Ctx) error {
	phone := c.Params("phone")

	session, err := h.manager.Session(phone)
	if errors.Is(err, storage.ErrSessionNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Session not found",
		})
	}
	if err != nil {
		log.Printf("Error loading session %s: %v", phone, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load session",
		})
	}
	return c.JSON(session)
}

// ResetSession deletes one phone's session so the next inbound message
// starts a fresh dialog. Sessions never expire on their own; this is the
// only reset path.
func (h *AdminHandler) ResetSession(c *fiber.Ctx) error {
	phone := c.Params("phone")

	err := h.manager.Reset(phone)
	if errors.Is(err, storage.ErrSessionNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Session not found",
		})
	}
	if err != nil {
		log.Printf("Error resetting session %s: %v", phone, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to reset session",
		})
	}

	log.Printf("Session reset for %s", phone)
	return c.JSON(fiber.Map{"success": true})
}

// CreateOpportunity upserts one catalog record. Deadlines are validated
// here so the ranking pipeline never meets an unparsable date.
func (h *AdminHandler) CreateOpportunity(c *fiber.Ctx) error {
	var opp models.Opportunity
	if err := c.BodyParser(&opp); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid opportunity payload",
		})
	}

	if opp.ID == "" || opp.Title == "" || opp.Category == "" || opp.EducationLevel == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "id, title, category and education_level are required",
		})
	}
	if opp.Eligibility.MinAge > opp.Eligibility.MaxAge {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "min_age must not exceed max_age",
		})
	}
	if _, err := opp.ParseDeadline(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "deadline must be a calendar date in " + models.DeadlineFormat + " format",
		})
	}

	if err := h.store.SaveOpportunity(&opp); err != nil {
		log.Printf("Error saving opportunity %s: %v", opp.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save opportunity",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(&opp)
}

// ListOpportunities returns the catalog in insertion order.
func (h *AdminHandler) ListOpportunities(c *fiber.Ctx) error {
	opps, err := h.store.ListOpportunities()
	if err != nil {
		log.Printf("Error listing opportunities: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list opportunities",
		})
	}
	return c.JSON(fiber.Map{
		"count":         len(opps),
		"opportunities": opps,
	})
}

// DeleteOpportunity removes one catalog record.
func (h *AdminHandler) DeleteOpportunity(c *fiber.Ctx) error {
	id := c.Params("id")

	err := h.store.DeleteOpportunity(id)
	if errors.Is(err, storage.ErrOpportunityNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Opportunity not found",
		})
	}
	if err != nil {
		log.Printf("Error deleting opportunity %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete opportunity",
		})
	}
	return c.JSON(fiber.Map{"success": true})
}
