package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/moodlens/moodlens/web"
)

// IndexHandler serves the embedded browser page
type IndexHandler struct{}

func NewIndexHandler() *IndexHandler {
	return &IndexHandler{}
}

// Index GET / - camera capture page posting data-URL frames to /predict
func (h *IndexHandler) Index(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(web.IndexHTML)
}
