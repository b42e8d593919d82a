package rest

import (
	domainEmbed "github.com/floatkit/floatkit/domains/embed"
	domainWidget "github.com/floatkit/floatkit/domains/widget"
	"github.com/floatkit/floatkit/pkg/utils"
	"github.com/floatkit/floatkit/widgetengine/template"
	"github.com/gofiber/fiber/v2"
)

type Widget struct {
	Service      domainWidget.IWidgetUsecase
	EmbedService domainEmbed.IEmbedUsecase
}

func InitRestWidget(app fiber.Router, service domainWidget.IWidgetUsecase, embedService domainEmbed.IEmbedUsecase) Widget {
	rest := Widget{Service: service, EmbedService: embedService}

	app.Get("/widgets", rest.ListWidgets)
	app.Post("/widgets", rest.CreateWidget)
	app.Get("/widgets/:id", rest.GetWidget)
	app.Put("/widgets/:id", rest.UpdateWidget)
	app.Delete("/widgets/:id", rest.DeleteWidget)
	app.Get("/widgets/:id/preview", rest.PreviewWidget)
	app.Get("/widgets/:id/stats", rest.WidgetStats)
	app.Get("/widgets/:id/snippet", rest.WidgetSnippet)
	app.Get("/templates", rest.ListTemplates)

	return rest
}

// templateInfo is the catalog projection for the builder's picker.
type templateInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *Widget) ListTemplates(c *fiber.Ctx) error {
	defs := template.List()
	infos := make([]templateInfo, len(defs))
	for i, def := range defs {
		infos[i] = templateInfo{ID: def.ID, Name: def.Name, Description: def.Description}
	}

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Templates fetched",
		Results: infos,
	})
}

func (h *Widget) ListWidgets(c *fiber.Ctx) error {
	widgets, err := h.Service.List(c.UserContext())
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Widgets fetched",
		Results: widgets,
	})
}

func (h *Widget) CreateWidget(c *fiber.Ctx) error {
	var req domainWidget.CreateWidgetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(utils.ResponseData{
			Status:  400,
			Code:    "BAD_REQUEST",
			Message: err.Error(),
		})
	}

	w, err := h.Service.Create(c.UserContext(), req)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Widget created",
		Results: w,
	})
}

func (h *Widget) GetWidget(c *fiber.Ctx) error {
	w, err := h.Service.GetByID(c.UserContext(), c.Params("id"))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Widget fetched",
		Results: w,
	})
}

func (h *Widget) UpdateWidget(c *fiber.Ctx) error {
	var req domainWidget.UpdateWidgetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(utils.ResponseData{
			Status:  400,
			Code:    "BAD_REQUEST",
			Message: err.Error(),
		})
	}

	w, err := h.Service.Update(c.UserContext(), c.Params("id"), req)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Widget updated",
		Results: w,
	})
}

func (h *Widget) DeleteWidget(c *fiber.Ctx) error {
	err := h.Service.Delete(c.UserContext(), c.Params("id"))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Widget deleted",
		Results: nil,
	})
}

// PreviewWidget renders the script for the builder. It works for inactive
// widgets and never records a view.
func (h *Widget) PreviewWidget(c *fiber.Ctx) error {
	script, err := h.EmbedService.Preview(c.UserContext(), c.Params("id"))
	utils.PanicIfNeeded(err)

	c.Set(fiber.HeaderContentType, "text/javascript; charset=utf-8")
	return c.SendString(script)
}

func (h *Widget) WidgetStats(c *fiber.Ctx) error {
	stats, err := h.EmbedService.Stats(c.UserContext(), c.Params("id"))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Widget stats fetched",
		Results: stats,
	})
}

func (h *Widget) WidgetSnippet(c *fiber.Ctx) error {
	snippet, err := h.EmbedService.Snippet(c.UserContext(), c.Params("id"))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Embed snippet generated",
		Results: map[string]string{"snippet": snippet},
	})
}
