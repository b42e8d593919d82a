package widget

import (
	"context"
	"time"

	"github.com/floatkit/floatkit/widgetengine"
)

// Widget is the stored unit of the builder: one embeddable contact widget
// with its template choice and full render configuration.
type Widget struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	TemplateID string `json:"template_id"`
	Active     bool   `json:"active"`

	Config widgetengine.WidgetConfig `json:"config"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EngineConfig returns the render-time config with the identifying fields
// mirrored in, so the engine never needs the surrounding Widget.
func (w Widget) EngineConfig() widgetengine.WidgetConfig {
	cfg := w.Config
	cfg.WidgetID = w.ID
	cfg.TemplateID = w.TemplateID
	return cfg
}

type CreateWidgetRequest struct {
	Name       string                    `json:"name"`
	TemplateID string                    `json:"template_id"`
	Active     *bool                     `json:"active"`
	Config     widgetengine.WidgetConfig `json:"config"`
}

type UpdateWidgetRequest struct {
	Name       string                    `json:"name"`
	TemplateID string                    `json:"template_id"`
	Active     *bool                     `json:"active"`
	Config     widgetengine.WidgetConfig `json:"config"`
}

type IWidgetUsecase interface {
	Create(ctx context.Context, req CreateWidgetRequest) (Widget, error)
	List(ctx context.Context) ([]Widget, error)
	GetByID(ctx context.Context, id string) (Widget, error)
	Update(ctx context.Context, id string, req UpdateWidgetRequest) (Widget, error)
	Delete(ctx context.Context, id string) error
}

type IWidgetRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, w Widget) error
	GetByID(ctx context.Context, id string) (Widget, error)
	List(ctx context.Context) ([]Widget, error)
	Update(ctx context.Context, w Widget) error
	Delete(ctx context.Context, id string) error
}
