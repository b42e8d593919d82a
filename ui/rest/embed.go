package rest

import (
	"context"
	"time"

	domainEmbed "github.com/floatkit/floatkit/domains/embed"
	"github.com/gofiber/fiber/v2"
)

// Embed serves the public script endpoint. It sits outside the basic-auth
// API group: any page on the internet loads it via a script tag.
type Embed struct {
	Service domainEmbed.IEmbedUsecase
}

func InitRestEmbed(app fiber.Router, service domainEmbed.IEmbedUsecase) Embed {
	rest := Embed{Service: service}
	app.Get("/widget-js/:id", rest.ServeScript)
	return rest
}

func (h *Embed) ServeScript(c *fiber.Ctx) error {
	widgetID := c.Params("id")
	script, served := h.Service.BuildScript(c.UserContext(), widgetID)

	if served {
		view := domainEmbed.ViewEvent{
			WidgetID:  widgetID,
			IP:        c.IP(),
			UserAgent: c.Get(fiber.HeaderUserAgent),
			CreatedAt: time.Now().UTC(),
		}
		// Fire-and-forget: delivery never waits on analytics. The request
		// context dies with the response, so recording gets its own.
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			h.Service.RecordView(ctx, view)
		}()
	}

	c.Set(fiber.HeaderContentType, "text/javascript; charset=utf-8")
	c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
	c.Set(fiber.HeaderCacheControl, "no-store, max-age=0")
	return c.SendString(script)
}
