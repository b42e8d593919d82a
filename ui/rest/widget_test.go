package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	domainWidget "github.com/floatkit/floatkit/domains/widget"
	pkgError "github.com/floatkit/floatkit/pkg/error"
	"github.com/floatkit/floatkit/ui/rest/middleware"
)

// fakeWidgetService implements IWidgetUsecase with canned behavior per id.
type fakeWidgetService struct{}

func (f *fakeWidgetService) Create(_ context.Context, req domainWidget.CreateWidgetRequest) (domainWidget.Widget, error) {
	if req.Name == "" {
		return domainWidget.Widget{}, pkgError.ValidationError("name: cannot be blank.")
	}
	return domainWidget.Widget{ID: "w-new", Name: req.Name, TemplateID: "default", Active: true}, nil
}

func (f *fakeWidgetService) List(context.Context) ([]domainWidget.Widget, error) {
	return []domainWidget.Widget{{ID: "w-1", Name: "First"}}, nil
}

func (f *fakeWidgetService) GetByID(_ context.Context, id string) (domainWidget.Widget, error) {
	if id == "missing" {
		return domainWidget.Widget{}, pkgError.NotFoundError("widget not found")
	}
	return domainWidget.Widget{ID: id, Name: "First"}, nil
}

func (f *fakeWidgetService) Update(_ context.Context, id string, req domainWidget.UpdateWidgetRequest) (domainWidget.Widget, error) {
	return domainWidget.Widget{ID: id, Name: req.Name}, nil
}

func (f *fakeWidgetService) Delete(context.Context, string) error { return nil }

func newWidgetTestApp() *fiber.App {
	app := fiber.New()
	app.Use(middleware.Recovery())
	InitRestWidget(app, &fakeWidgetService{}, &fakeEmbedService{script: "(function install() {})();"})
	return app
}

type testEnvelope struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Results json.RawMessage `json:"results"`
}

func decodeEnvelope(t *testing.T, resp *http.Response) testEnvelope {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	var env testEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("decoding envelope: %v, body=%s", err, body)
	}
	return env
}

func TestCreateWidgetHandler(t *testing.T) {
	app := newWidgetTestApp()

	body := []byte(`{"name":"Landing page","template_id":"default"}`)
	req := httptest.NewRequest(http.MethodPost, "/widgets", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}
	env := decodeEnvelope(t, resp)
	if env.Code != "SUCCESS" {
		t.Fatalf("unexpected code %q", env.Code)
	}

	var created domainWidget.Widget
	if err := json.Unmarshal(env.Results, &created); err != nil {
		t.Fatalf("decoding results: %v", err)
	}
	if created.Name != "Landing page" {
		t.Fatalf("unexpected widget name %q", created.Name)
	}
}

func TestCreateWidgetHandlerValidationError(t *testing.T) {
	app := newWidgetTestApp()

	req := httptest.NewRequest(http.MethodPost, "/widgets", bytes.NewReader([]byte(`{"name":""}`)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("validation failure must map to 400, got %d", resp.StatusCode)
	}
	env := decodeEnvelope(t, resp)
	if env.Code != "VALIDATION_ERROR" {
		t.Fatalf("unexpected code %q", env.Code)
	}
}

func TestGetWidgetHandlerNotFound(t *testing.T) {
	app := newWidgetTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/widgets/missing", nil))
	if err != nil {
		t.Fatalf("app.Test() error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}
	env := decodeEnvelope(t, resp)
	if env.Code != "NOT_FOUND_ERROR" {
		t.Fatalf("unexpected code %q", env.Code)
	}
}

func TestListTemplatesHandler(t *testing.T) {
	app := newWidgetTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/templates", nil))
	if err != nil {
		t.Fatalf("app.Test() error: %v", err)
	}
	defer resp.Body.Close()

	env := decodeEnvelope(t, resp)
	var infos []templateInfo
	if err := json.Unmarshal(env.Results, &infos); err != nil {
		t.Fatalf("decoding results: %v", err)
	}
	if len(infos) != 6 {
		t.Fatalf("expected 6 templates, got %d", len(infos))
	}
	if infos[0].ID != "default" {
		t.Fatalf("expected default template first, got %q", infos[0].ID)
	}
}

func TestPreviewWidgetHandler(t *testing.T) {
	app := newWidgetTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/widgets/w-1/preview", nil))
	if err != nil {
		t.Fatalf("app.Test() error: %v", err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get(fiber.HeaderContentType); got != "text/javascript; charset=utf-8" {
		t.Fatalf("unexpected content type %q", got)
	}
	body, _ := io.ReadAll(resp.Body)
	if len(body) == 0 {
		t.Fatal("preview body is empty")
	}
}
