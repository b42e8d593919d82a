package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	domainWidget "github.com/floatkit/floatkit/domains/widget"
	pkgError "github.com/floatkit/floatkit/pkg/error"
	"github.com/floatkit/floatkit/validations"
	"github.com/floatkit/floatkit/widgetengine"
	"github.com/floatkit/floatkit/widgetengine/template"
)

type widgetService struct {
	repo    domainWidget.IWidgetRepository
	onSaved func(domainWidget.Widget)
}

// NewWidgetService builds the widget CRUD service. onSaved, when non-nil, is
// invoked after every successful create or update; the REST layer uses it to
// push fresh previews to connected builder sessions.
func NewWidgetService(repo domainWidget.IWidgetRepository, onSaved func(domainWidget.Widget)) domainWidget.IWidgetUsecase {
	return &widgetService{repo: repo, onSaved: onSaved}
}

func (s *widgetService) Create(ctx context.Context, req domainWidget.CreateWidgetRequest) (domainWidget.Widget, error) {
	if err := validations.ValidateCreateWidget(ctx, req); err != nil {
		return domainWidget.Widget{}, err
	}

	now := time.Now().UTC()
	w := domainWidget.Widget{
		ID:         uuid.NewString(),
		Name:       strings.TrimSpace(req.Name),
		TemplateID: normalizeTemplateID(req.TemplateID),
		Active:     true,
		Config:     req.Config,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if req.Active != nil {
		w.Active = *req.Active
	}
	w.Config.Channels = assignChannelIDs(w.Config.Channels)
	w.Config.WidgetID = w.ID
	w.Config.TemplateID = w.TemplateID

	if err := s.repo.Create(ctx, w); err != nil {
		return domainWidget.Widget{}, err
	}

	logrus.Infof("[WIDGET] Created widget %s (%s)", w.ID, w.Name)
	s.notifySaved(w)
	return w, nil
}

func (s *widgetService) List(ctx context.Context) ([]domainWidget.Widget, error) {
	return s.repo.List(ctx)
}

func (s *widgetService) GetByID(ctx context.Context, id string) (domainWidget.Widget, error) {
	if strings.TrimSpace(id) == "" {
		return domainWidget.Widget{}, pkgError.ValidationError("id: cannot be blank.")
	}
	return s.repo.GetByID(ctx, id)
}

func (s *widgetService) Update(ctx context.Context, id string, req domainWidget.UpdateWidgetRequest) (domainWidget.Widget, error) {
	if err := validations.ValidateUpdateWidget(ctx, req); err != nil {
		return domainWidget.Widget{}, err
	}

	w, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domainWidget.Widget{}, err
	}

	w.Name = strings.TrimSpace(req.Name)
	w.TemplateID = normalizeTemplateID(req.TemplateID)
	if req.Active != nil {
		w.Active = *req.Active
	}
	w.Config = req.Config
	w.Config.Channels = assignChannelIDs(w.Config.Channels)
	w.Config.WidgetID = w.ID
	w.Config.TemplateID = w.TemplateID
	w.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, w); err != nil {
		return domainWidget.Widget{}, err
	}

	logrus.Infof("[WIDGET] Updated widget %s (%s)", w.ID, w.Name)
	s.notifySaved(w)
	return w, nil
}

func (s *widgetService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logrus.Infof("[WIDGET] Deleted widget %s", id)
	return nil
}

func (s *widgetService) notifySaved(w domainWidget.Widget) {
	if s.onSaved != nil {
		s.onSaved(w)
	}
}

func normalizeTemplateID(id string) string {
	if id == "" {
		return template.DefaultID
	}
	return id
}

// assignChannelIDs gives every channel (and nested child) a stable id so the
// builder and the emitted DOM ids stay consistent across saves.
func assignChannelIDs(channels []widgetengine.Channel) []widgetengine.Channel {
	out := make([]widgetengine.Channel, len(channels))
	for i, ch := range channels {
		if ch.ID == "" {
			ch.ID = uuid.NewString()
		}
		ch.ChildChannels = assignChannelIDs(ch.ChildChannels)
		ch.GroupItems = assignChannelIDs(ch.GroupItems)
		out[i] = ch
	}
	return out
}
