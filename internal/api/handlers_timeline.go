package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// ShowTimeline renders the full history of every entry kind, newest first,
// with no date filter.
func (handler *Handler) ShowTimeline(c *fiber.Ctx) error {
	rows, err := handler.mergedRows(false, time.Time{}, time.Time{})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load entries")
	}

	return handler.render(c, "timeline", fiber.Map{
		"Title": "Timeline",
		"Rows":  rows,
	})
}
