package handlers

import (
	"github.com/gofiber/fiber/v2"

	"tradepost/internal/apperr"
	applog "tradepost/internal/log"
)

// envelope is the uniform response shape for every endpoint.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func respond(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(envelope{Success: true, Message: message, Data: data})
}

func respondFail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(envelope{Success: false, Message: message})
}

// respondErr maps a tagged error to its status; untagged errors get a
// generic 500 and a log entry instead of leaking detail.
func respondErr(c *fiber.Ctx, action string, err error) error {
	status, msg := apperr.StatusOf(err)
	if status == fiber.StatusInternalServerError {
		applog.Error(c, action, err, nil)
	}
	return respondFail(c, status, msg)
}
