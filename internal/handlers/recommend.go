package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/disha-labs/disha-backend/internal/models"
	"github.com/disha-labs/disha-backend/internal/recommend"
	"github.com/disha-labs/disha-backend/internal/storage"
)

// RecommendHandler serves the eligibility/ranking pipeline.
type RecommendHandler struct {
	service *recommend.Service
}

// NewRecommendHandler creates a recommendation handler.
func NewRecommendHandler(service *recommend.Service) *RecommendHandler {
	return &RecommendHandler{service: service}
}

// Recommend handles POST /recommend: a student profile in, the eligible
// opportunities out, ordered by deadline.
func (h *RecommendHandler) Recommend(c *fiber.Ctx) error {
	var student models.StudentProfile
	if err := c.BodyParser(&student); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid student profile",
		})
	}
	if student.Age <= 0 || student.EducationLevel == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "age and education_level are required",
		})
	}

	recommendations, err := h.service.Recommend(&student)
	if err != nil {
		if errors.Is(err, recommend.ErrInvalidDeadline) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		log.Printf("Error recommending: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute recommendations",
		})
	}

	return c.JSON(fiber.Map{
		"count":           len(recommendations),
		"recommendations": recommendations,
	})
}

// Alternatives handles GET /recommend/:id/alternatives: up to three
// same-category, same-education-level replacements for a missed record.
func (h *RecommendHandler) Alternatives(c *fiber.Ctx) error {
	id := c.Params("id")

	alternatives, err := h.service.Alternatives(id)
	if err != nil {
		if errors.Is(err, storage.ErrOpportunityNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Opportunity not found",
			})
		}
		log.Printf("Error suggesting alternatives for %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to suggest alternatives",
		})
	}

	return c.JSON(fiber.Map{
		"count":        len(alternatives),
		"alternatives": alternatives,
	})
}
