package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainEmbed "github.com/floatkit/floatkit/domains/embed"
	domainWidget "github.com/floatkit/floatkit/domains/widget"
	"github.com/floatkit/floatkit/widgetengine"
)

type fakeViewRepo struct {
	events []domainEmbed.ViewEvent
}

func (r *fakeViewRepo) Init(context.Context) error { return nil }

func (r *fakeViewRepo) Record(_ context.Context, view domainEmbed.ViewEvent) error {
	r.events = append(r.events, view)
	return nil
}

func (r *fakeViewRepo) CountTotal(_ context.Context, widgetID string) (int64, error) {
	var n int64
	for _, e := range r.events {
		if e.WidgetID == widgetID {
			n++
		}
	}
	return n, nil
}

func (r *fakeViewRepo) CountSince(_ context.Context, widgetID string, since time.Time) (int64, error) {
	var n int64
	for _, e := range r.events {
		if e.WidgetID == widgetID && !e.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func seedWidget(t *testing.T, repo *fakeWidgetRepo, active bool) domainWidget.Widget {
	t.Helper()
	w := domainWidget.Widget{
		ID:         "w-1",
		Name:       "Site widget",
		TemplateID: "default",
		Active:     active,
		Config: widgetengine.WidgetConfig{
			WidgetID:   "w-1",
			TemplateID: "default",
			Channels: []widgetengine.Channel{
				{ID: "c1", Type: "whatsapp", Value: "+994501234567"},
			},
		},
	}
	require.NoError(t, repo.Create(context.Background(), w))
	return w
}

func TestBuildScriptActiveWidget(t *testing.T) {
	widgets := newFakeWidgetRepo()
	seedWidget(t, widgets, true)
	svc := NewEmbedService(widgets, &fakeViewRepo{}, nil)

	script, served := svc.BuildScript(context.Background(), "w-1")
	assert.True(t, served)
	assert.Contains(t, script, "(function install() {")
	assert.Contains(t, script, "https://wa.me/994501234567")
}

func TestBuildScriptMissingWidget(t *testing.T) {
	svc := NewEmbedService(newFakeWidgetRepo(), &fakeViewRepo{}, nil)

	script, served := svc.BuildScript(context.Background(), "nope")
	assert.False(t, served)
	assert.Equal(t, "/* floatkit: widget not found */\n", script)

	script, served = svc.BuildScript(context.Background(), "")
	assert.False(t, served)
	assert.True(t, strings.HasPrefix(script, "/*"))
}

func TestBuildScriptInactiveWidget(t *testing.T) {
	widgets := newFakeWidgetRepo()
	seedWidget(t, widgets, false)
	svc := NewEmbedService(widgets, &fakeViewRepo{}, nil)

	script, served := svc.BuildScript(context.Background(), "w-1")
	assert.False(t, served)
	assert.Equal(t, "/* floatkit: widget inactive */\n", script)
}

func TestBuildScriptCached(t *testing.T) {
	widgets := newFakeWidgetRepo()
	seedWidget(t, widgets, true)
	svc := NewEmbedService(widgets, &fakeViewRepo{}, nil)

	first, _ := svc.BuildScript(context.Background(), "w-1")
	second, _ := svc.BuildScript(context.Background(), "w-1")
	assert.Equal(t, first, second)

	// A config change must miss the cache and show up in the output.
	w, err := widgets.GetByID(context.Background(), "w-1")
	require.NoError(t, err)
	w.Config.Channels = append(w.Config.Channels, widgetengine.Channel{ID: "c2", Type: "email", Value: "team@example.com"})
	require.NoError(t, widgets.Update(context.Background(), w))

	third, _ := svc.BuildScript(context.Background(), "w-1")
	assert.NotEqual(t, first, third)
	assert.Contains(t, third, "mailto:team@example.com")
}

func TestPreviewIgnoresActiveFlag(t *testing.T) {
	widgets := newFakeWidgetRepo()
	seedWidget(t, widgets, false)
	views := &fakeViewRepo{}
	svc := NewEmbedService(widgets, views, nil)

	script, err := svc.Preview(context.Background(), "w-1")
	require.NoError(t, err)
	assert.Contains(t, script, "(function install() {")
	assert.Empty(t, views.events, "preview never records a view")

	_, err = svc.Preview(context.Background(), "missing")
	assert.Error(t, err)
}

func TestRecordViewAndStats(t *testing.T) {
	widgets := newFakeWidgetRepo()
	seedWidget(t, widgets, true)
	views := &fakeViewRepo{}
	svc := NewEmbedService(widgets, views, nil)

	now := time.Now().UTC()
	svc.RecordView(context.Background(), domainEmbed.ViewEvent{WidgetID: "w-1", IP: "1.2.3.4", CreatedAt: now})
	svc.RecordView(context.Background(), domainEmbed.ViewEvent{WidgetID: "w-1", CreatedAt: now.Add(-48 * time.Hour)})

	stats, err := svc.Stats(context.Background(), "w-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Total)
	assert.Equal(t, int64(1), stats.Today)
	assert.Equal(t, "2", stats.TotalHuman)

	_, err = svc.Stats(context.Background(), "missing")
	assert.Error(t, err)
}

func TestSnippet(t *testing.T) {
	widgets := newFakeWidgetRepo()
	seedWidget(t, widgets, true)
	svc := NewEmbedService(widgets, &fakeViewRepo{}, nil)

	snippet, err := svc.Snippet(context.Background(), "w-1")
	require.NoError(t, err)
	assert.Contains(t, snippet, `<script src="`)
	assert.Contains(t, snippet, "/widget-js/w-1")
	assert.Contains(t, snippet, "async></script>")

	_, err = svc.Snippet(context.Background(), "missing")
	assert.Error(t, err)
}

func TestConfigHashStable(t *testing.T) {
	cfg := widgetengine.WidgetConfig{WidgetID: "w", TemplateID: "dark", ButtonSize: 70}
	assert.Equal(t, configHash(cfg), configHash(cfg))

	other := cfg
	other.ButtonSize = 60
	assert.NotEqual(t, configHash(cfg), configHash(other))
}
