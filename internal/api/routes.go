package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)

	app.Get("/", handler.ShowDay)
	app.Get("/timeline", handler.ShowTimeline)

	registerEntryRoutes(app, handler, handler.foodEntryResource())
	registerEntryRoutes(app, handler, handler.bowelMovementResource())
	registerEntryRoutes(app, handler, handler.giSymptomResource())
	registerEntryRoutes(app, handler, handler.accidentResource())
	registerEntryRoutes(app, handler, handler.miralaxCapResource())
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
