package embed

import (
	"context"
	"time"
)

// ViewEvent is one recorded impression of the embed script.
type ViewEvent struct {
	WidgetID  string    `json:"widget_id"`
	IP        string    `json:"ip"`
	UserAgent string    `json:"user_agent"`
	CreatedAt time.Time `json:"created_at"`
}

// ViewStats is the aggregate the stats endpoint returns.
type ViewStats struct {
	WidgetID   string `json:"widget_id"`
	Total      int64  `json:"total"`
	TotalHuman string `json:"total_human"`
	Today      int64  `json:"today"`
}

type IEmbedUsecase interface {
	// BuildScript returns the deliverable script for a widget. It never
	// fails from the embedder's point of view: unknown or inactive widgets
	// yield a benign no-op script with served=false, so callers know not to
	// count a view.
	BuildScript(ctx context.Context, widgetID string) (script string, served bool)
	// Preview renders regardless of the active flag and never counts a view.
	Preview(ctx context.Context, widgetID string) (string, error)
	RecordView(ctx context.Context, view ViewEvent)
	Stats(ctx context.Context, widgetID string) (ViewStats, error)
	Snippet(ctx context.Context, widgetID string) (string, error)
}

type IViewRepository interface {
	Init(ctx context.Context) error
	Record(ctx context.Context, view ViewEvent) error
	CountTotal(ctx context.Context, widgetID string) (int64, error)
	CountSince(ctx context.Context, widgetID string, since time.Time) (int64, error)
}
