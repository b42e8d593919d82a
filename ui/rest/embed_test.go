package rest

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	domainEmbed "github.com/floatkit/floatkit/domains/embed"
	pkgError "github.com/floatkit/floatkit/pkg/error"
)

// fakeEmbedService implements IEmbedUsecase for handler tests.
type fakeEmbedService struct {
	mu     sync.Mutex
	script string
	served bool
	views  []domainEmbed.ViewEvent
}

func (f *fakeEmbedService) BuildScript(_ context.Context, widgetID string) (string, bool) {
	return f.script, f.served
}

func (f *fakeEmbedService) Preview(_ context.Context, widgetID string) (string, error) {
	if widgetID == "missing" {
		return "", pkgError.NotFoundError("widget not found")
	}
	return f.script, nil
}

func (f *fakeEmbedService) RecordView(_ context.Context, view domainEmbed.ViewEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.views = append(f.views, view)
}

func (f *fakeEmbedService) Stats(context.Context, string) (domainEmbed.ViewStats, error) {
	return domainEmbed.ViewStats{}, nil
}

func (f *fakeEmbedService) Snippet(context.Context, string) (string, error) {
	return "", nil
}

func (f *fakeEmbedService) recorded() []domainEmbed.ViewEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domainEmbed.ViewEvent(nil), f.views...)
}

func TestServeScriptDelivers(t *testing.T) {
	app := fiber.New()
	service := &fakeEmbedService{script: "(function install() {})();", served: true}
	InitRestEmbed(app, service)

	req := httptest.NewRequest(http.MethodGet, "/widget-js/w-1", nil)
	req.Header.Set("User-Agent", "test-agent")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}
	if got := resp.Header.Get(fiber.HeaderContentType); got != "text/javascript; charset=utf-8" {
		t.Fatalf("unexpected content type %q", got)
	}
	if got := resp.Header.Get(fiber.HeaderAccessControlAllowOrigin); got != "*" {
		t.Fatalf("unexpected CORS header %q", got)
	}
	if got := resp.Header.Get(fiber.HeaderCacheControl); got != "no-store, max-age=0" {
		t.Fatalf("unexpected cache control %q", got)
	}

	body, _ := io.ReadAll(resp.Body)
	if string(body) != service.script {
		t.Fatalf("unexpected body %q", body)
	}

	// View recording runs on its own goroutine after the response is sent.
	deadline := time.Now().Add(2 * time.Second)
	for {
		views := service.recorded()
		if len(views) == 1 {
			if views[0].WidgetID != "w-1" {
				t.Fatalf("unexpected view widget id %q", views[0].WidgetID)
			}
			if views[0].UserAgent != "test-agent" {
				t.Fatalf("unexpected view user agent %q", views[0].UserAgent)
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("view was never recorded, got %d", len(views))
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestServeScriptNoopSkipsView(t *testing.T) {
	app := fiber.New()
	service := &fakeEmbedService{script: "/* floatkit: widget not found */\n", served: false}
	InitRestEmbed(app, service)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/widget-js/nope", nil))
	if err != nil {
		t.Fatalf("app.Test() error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("noop script must still be delivered with 200, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.HasPrefix(string(body), "/*") {
		t.Fatalf("unexpected body %q", body)
	}

	time.Sleep(50 * time.Millisecond)
	if views := service.recorded(); len(views) != 0 {
		t.Fatalf("noop delivery must not record a view, got %d", len(views))
	}
}
