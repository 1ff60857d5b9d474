package presenter

import "github.com/gofiber/fiber/v2"

type ErrorResponse struct {
	Message string `json:"message"`
}

// FormError is the error payload of the form endpoint.
type FormError struct {
	Error string `json:"error"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

// WantsJSON reports whether the client prefers JSON over HTML. Without an Accept header HTML wins.
func WantsJSON(c *fiber.Ctx) bool {
	return c.Accepts(fiber.MIMETextHTML, fiber.MIMEApplicationJSON) == fiber.MIMEApplicationJSON
}

// Page renders an HTML view, or v as JSON when the client asked for it.
func Page(c *fiber.Ctx, status int, view string, data fiber.Map, v any) error {
	if WantsJSON(c) {
		return JSON(c, status, v)
	}
	return c.Status(status).Render(view, data)
}
