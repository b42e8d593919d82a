package repository

import (
	"context"
	"encoding/json"
	"time"

	domainWidget "github.com/floatkit/floatkit/domains/widget"
	pkgError "github.com/floatkit/floatkit/pkg/error"
	"github.com/floatkit/floatkit/widgetengine"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// widgetModel is the GORM persistence model. The domain struct stays free of
// storage tags; channels and the nested config are flattened here with the
// channel list serialized into a JSON column.
type widgetModel struct {
	ID         string `gorm:"primaryKey"`
	Name       string `gorm:"not null"`
	TemplateID string `gorm:"column:template_id"`
	Active     bool   `gorm:"not null;default:true"`

	Channels string `gorm:"column:channels"` // JSON array

	ButtonColor     string `gorm:"column:button_color"`
	Position        string
	ButtonSize      int    `gorm:"column:button_size"`
	Tooltip         string
	TooltipDisplay  string `gorm:"column:tooltip_display"`
	TooltipPosition string `gorm:"column:tooltip_position"`
	GreetingMessage string `gorm:"column:greeting_message"`
	CustomIconURL   string `gorm:"column:custom_icon_url"`

	VideoEnabled       bool   `gorm:"column:video_enabled;not null;default:false"`
	VideoURL           string `gorm:"column:video_url"`
	VideoHeight        int    `gorm:"column:video_height"`
	VideoAlignment     string `gorm:"column:video_alignment"`
	VideoObjectFit     string `gorm:"column:video_object_fit"`
	UseVideoPreview    bool   `gorm:"column:use_video_preview;not null;default:false"`
	PreviewVideoHeight int    `gorm:"column:preview_video_height"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (widgetModel) TableName() string {
	return "widgets"
}

// WidgetGormRepository implements IWidgetRepository using GORM.
type WidgetGormRepository struct {
	db *gorm.DB
}

func NewWidgetGormRepository(db *gorm.DB) *WidgetGormRepository {
	return &WidgetGormRepository{db: db}
}

func (r *WidgetGormRepository) Init(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&widgetModel{})
}

func (r *WidgetGormRepository) Create(ctx context.Context, w domainWidget.Widget) error {
	model := toWidgetModel(w)
	return r.db.WithContext(ctx).Create(&model).Error
}

func (r *WidgetGormRepository) GetByID(ctx context.Context, id string) (domainWidget.Widget, error) {
	var model widgetModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return domainWidget.Widget{}, pkgError.NotFoundError("widget not found")
		}
		return domainWidget.Widget{}, err
	}
	return fromWidgetModel(model), nil
}

func (r *WidgetGormRepository) List(ctx context.Context) ([]domainWidget.Widget, error) {
	var models []widgetModel
	err := r.db.WithContext(ctx).Order("name ASC").Find(&models).Error
	if err != nil {
		return nil, err
	}

	result := make([]domainWidget.Widget, len(models))
	for i, m := range models {
		result[i] = fromWidgetModel(m)
	}
	return result, nil
}

func (r *WidgetGormRepository) Update(ctx context.Context, w domainWidget.Widget) error {
	model := toWidgetModel(w)
	return r.db.WithContext(ctx).Save(&model).Error
}

func (r *WidgetGormRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&widgetModel{}, "id = ?", id).Error
}

func toWidgetModel(w domainWidget.Widget) widgetModel {
	channels, err := json.Marshal(w.Config.Channels)
	if err != nil {
		logrus.Errorf("[REPO] Failed to marshal channels for widget %s: %v", w.ID, err)
		channels = []byte("[]")
	}

	return widgetModel{
		ID:                 w.ID,
		Name:               w.Name,
		TemplateID:         w.TemplateID,
		Active:             w.Active,
		Channels:           string(channels),
		ButtonColor:        w.Config.ButtonColor,
		Position:           w.Config.Position,
		ButtonSize:         w.Config.ButtonSize,
		Tooltip:            w.Config.Tooltip,
		TooltipDisplay:     w.Config.TooltipDisplay,
		TooltipPosition:    w.Config.TooltipPosition,
		GreetingMessage:    w.Config.GreetingMessage,
		CustomIconURL:      w.Config.CustomIconURL,
		VideoEnabled:       w.Config.VideoEnabled,
		VideoURL:           w.Config.VideoURL,
		VideoHeight:        w.Config.VideoHeight,
		VideoAlignment:     w.Config.VideoAlignment,
		VideoObjectFit:     w.Config.VideoObjectFit,
		UseVideoPreview:    w.Config.UseVideoPreview,
		PreviewVideoHeight: w.Config.PreviewVideoHeight,
		CreatedAt:          w.CreatedAt,
		UpdatedAt:          w.UpdatedAt,
	}
}

func fromWidgetModel(m widgetModel) domainWidget.Widget {
	var channels []widgetengine.Channel
	if m.Channels != "" {
		if err := json.Unmarshal([]byte(m.Channels), &channels); err != nil {
			logrus.Errorf("[REPO] Failed to unmarshal channels for widget %s: %v", m.ID, err)
		}
	}

	return domainWidget.Widget{
		ID:         m.ID,
		Name:       m.Name,
		TemplateID: m.TemplateID,
		Active:     m.Active,
		Config: widgetengine.WidgetConfig{
			WidgetID:           m.ID,
			TemplateID:         m.TemplateID,
			Channels:           channels,
			ButtonColor:        m.ButtonColor,
			Position:           m.Position,
			ButtonSize:         m.ButtonSize,
			Tooltip:            m.Tooltip,
			TooltipDisplay:     m.TooltipDisplay,
			TooltipPosition:    m.TooltipPosition,
			GreetingMessage:    m.GreetingMessage,
			CustomIconURL:      m.CustomIconURL,
			VideoEnabled:       m.VideoEnabled,
			VideoURL:           m.VideoURL,
			VideoHeight:        m.VideoHeight,
			VideoAlignment:     m.VideoAlignment,
			VideoObjectFit:     m.VideoObjectFit,
			UseVideoPreview:    m.UseVideoPreview,
			PreviewVideoHeight: m.PreviewVideoHeight,
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
