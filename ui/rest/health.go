package rest

import (
	"github.com/floatkit/floatkit/domains/health"
	"github.com/floatkit/floatkit/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type Health struct {
	Service health.IHealthUsecase
}

func InitRestHealth(app fiber.Router, service health.IHealthUsecase) Health {
	handler := Health{Service: service}
	app.Get("/health", handler.GetStatus)
	return handler
}

func (h *Health) GetStatus(c *fiber.Ctx) error {
	status := h.Service.Status(c.UserContext())

	code := 200
	if !status.Healthy {
		code = 503
	}
	return c.Status(code).JSON(utils.ResponseData{
		Status:  code,
		Code:    "SUCCESS",
		Message: "Health status retrieved",
		Results: status,
	})
}
