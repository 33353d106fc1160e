package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// MethodOverride lets HTML forms express PATCH, PUT and DELETE through a
// hidden _method field on a POST, since browser forms only submit GET and
// POST.
func MethodOverride(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodPost {
		switch strings.ToUpper(strings.TrimSpace(c.FormValue("_method"))) {
		case fiber.MethodPatch:
			c.Method(fiber.MethodPatch)
		case fiber.MethodPut:
			c.Method(fiber.MethodPut)
		case fiber.MethodDelete:
			c.Method(fiber.MethodDelete)
		}
	}
	return c.Next()
}
