package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/floatkit/floatkit/core/config"
	domainEmbed "github.com/floatkit/floatkit/domains/embed"
	domainWidget "github.com/floatkit/floatkit/domains/widget"
	"github.com/floatkit/floatkit/infrastructure/valkey"
	pkgError "github.com/floatkit/floatkit/pkg/error"
	"github.com/floatkit/floatkit/widgetengine"
)

type embedService struct {
	widgets domainWidget.IWidgetRepository
	views   domainEmbed.IViewRepository
	vk      *valkey.Client // nil when valkey is disabled

	cacheEnabled bool
	cacheTTL     time.Duration
	memo         *memoCache // in-process fallback when valkey is absent
}

// NewEmbedService builds the delivery service. vk may be nil; the service
// then falls back to an in-process render cache and DB-backed stats.
func NewEmbedService(widgets domainWidget.IWidgetRepository, views domainEmbed.IViewRepository, vk *valkey.Client) domainEmbed.IEmbedUsecase {
	ttl := 5 * time.Minute
	cacheEnabled := true
	if config.Global != nil {
		cacheEnabled = config.Global.Widget.RenderCacheEnabled
		if config.Global.Widget.RenderCacheTTLSec > 0 {
			ttl = time.Duration(config.Global.Widget.RenderCacheTTLSec) * time.Second
		}
	}

	s := &embedService{
		widgets:      widgets,
		views:        views,
		vk:           vk,
		cacheEnabled: cacheEnabled,
		cacheTTL:     ttl,
	}
	if cacheEnabled && vk == nil {
		s.memo = newMemoCache()
	}
	return s
}

// BuildScript resolves the widget and renders its script. Delivery never
// fails toward the embedding page: missing or inactive widgets get a benign
// comment-only script, and cache trouble falls through to a fresh render.
func (s *embedService) BuildScript(ctx context.Context, widgetID string) (string, bool) {
	if strings.TrimSpace(widgetID) == "" {
		return widgetengine.NoopScript("missing widget id"), false
	}

	w, err := s.widgets.GetByID(ctx, widgetID)
	if err != nil {
		if _, ok := err.(pkgError.NotFoundError); !ok {
			logrus.Errorf("[EMBED] Widget %s lookup failed: %v", widgetID, err)
		}
		return widgetengine.NoopScript("widget not found"), false
	}
	if !w.Active {
		return widgetengine.NoopScript("widget inactive"), false
	}

	cfg := w.EngineConfig()
	hash := configHash(cfg)

	if script, ok := s.cachedScript(ctx, w.ID, hash); ok {
		return script, true
	}

	script := widgetengine.RenderByID(w.TemplateID, cfg)
	s.storeScript(ctx, w.ID, hash, script)
	return script, true
}

func (s *embedService) Preview(ctx context.Context, widgetID string) (string, error) {
	w, err := s.widgets.GetByID(ctx, widgetID)
	if err != nil {
		return "", err
	}
	return widgetengine.RenderByID(w.TemplateID, w.EngineConfig()), nil
}

// RecordView is fire-and-forget from the handler's perspective: every
// failure is logged and swallowed so delivery is never affected.
func (s *embedService) RecordView(ctx context.Context, view domainEmbed.ViewEvent) {
	if view.CreatedAt.IsZero() {
		view.CreatedAt = time.Now().UTC()
	}

	if err := s.views.Record(ctx, view); err != nil {
		logrus.Warnf("[EMBED] Failed to record view for widget %s: %v", view.WidgetID, err)
	}

	if s.vk != nil {
		if err := s.vk.IncrView(ctx, view.WidgetID, view.CreatedAt); err != nil {
			logrus.Warnf("[EMBED] Failed to bump view counters for widget %s: %v", view.WidgetID, err)
		}
	}
}

func (s *embedService) Stats(ctx context.Context, widgetID string) (domainEmbed.ViewStats, error) {
	if _, err := s.widgets.GetByID(ctx, widgetID); err != nil {
		return domainEmbed.ViewStats{}, err
	}

	now := time.Now().UTC()

	if s.vk != nil {
		total, today, err := s.vk.ViewCounts(ctx, widgetID, now)
		if err == nil {
			return buildStats(widgetID, total, today), nil
		}
		logrus.Warnf("[EMBED] Valkey stats for widget %s failed, using DB: %v", widgetID, err)
	}

	total, err := s.views.CountTotal(ctx, widgetID)
	if err != nil {
		return domainEmbed.ViewStats{}, err
	}
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	today, err := s.views.CountSince(ctx, widgetID, midnight)
	if err != nil {
		return domainEmbed.ViewStats{}, err
	}
	return buildStats(widgetID, total, today), nil
}

func (s *embedService) Snippet(ctx context.Context, widgetID string) (string, error) {
	w, err := s.widgets.GetByID(ctx, widgetID)
	if err != nil {
		return "", err
	}

	base := "http://localhost:3000"
	path := ""
	if config.Global != nil {
		base = strings.TrimSuffix(config.Global.App.BaseUrl, "/")
		path = config.Global.App.BasePath
	}
	return fmt.Sprintf(`<script src="%s%s/widget-js/%s" async></script>`, base, path, w.ID), nil
}

func buildStats(widgetID string, total, today int64) domainEmbed.ViewStats {
	return domainEmbed.ViewStats{
		WidgetID:   widgetID,
		Total:      total,
		TotalHuman: humanize.Comma(total),
		Today:      today,
	}
}

// configHash fingerprints the template choice plus the full render config.
// Identical configs render byte-identical scripts, so the hash is a safe
// cache key.
func configHash(cfg widgetengine.WidgetConfig) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(cfg.TemplateID))
	_, _ = h.Write([]byte{0})
	if data, err := json.Marshal(cfg); err == nil {
		_, _ = h.Write(data)
	}
	return h.Sum64()
}

func (s *embedService) cachedScript(ctx context.Context, widgetID string, hash uint64) (string, bool) {
	if !s.cacheEnabled {
		return "", false
	}
	if s.vk != nil {
		return s.vk.CachedScript(ctx, widgetID, hash)
	}
	if s.memo != nil {
		return s.memo.get(memoKey(widgetID, hash))
	}
	return "", false
}

func (s *embedService) storeScript(ctx context.Context, widgetID string, hash uint64, script string) {
	if !s.cacheEnabled {
		return
	}
	if s.vk != nil {
		if err := s.vk.StoreScript(ctx, widgetID, hash, script, s.cacheTTL); err != nil {
			logrus.Warnf("[EMBED] Failed to cache script for widget %s: %v", widgetID, err)
		}
		return
	}
	if s.memo != nil {
		s.memo.set(memoKey(widgetID, hash), script, s.cacheTTL)
	}
}

func memoKey(widgetID string, hash uint64) string {
	return fmt.Sprintf("%s:%016x", widgetID, hash)
}

// memoCache is a minimal TTL map serving as the render cache when no Valkey
// is configured. Entries are few (one per widget config) and expire lazily.
type memoCache struct {
	mu      sync.Mutex
	entries map[string]memoEntry
}

type memoEntry struct {
	script  string
	expires time.Time
}

func newMemoCache() *memoCache {
	return &memoCache{entries: make(map[string]memoEntry)}
}

func (m *memoCache) get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[key]
	if !ok {
		return "", false
	}
	if time.Now().After(e.expires) {
		delete(m.entries, key)
		return "", false
	}
	return e.script, true
}

func (m *memoCache) set(key, script string, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = memoEntry{script: script, expires: time.Now().Add(ttl)}
}
