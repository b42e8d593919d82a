package repository

import (
	"context"
	"time"

	domainEmbed "github.com/floatkit/floatkit/domains/embed"
	"gorm.io/gorm"
)

// viewEventModel stores one embed impression. Rows are append-only; the
// stats endpoint aggregates with COUNT queries.
type viewEventModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	WidgetID  string    `gorm:"column:widget_id;index"`
	IP        string    `gorm:"column:ip"`
	UserAgent string    `gorm:"column:user_agent"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

func (viewEventModel) TableName() string {
	return "widget_views"
}

// ViewGormRepository implements IViewRepository using GORM.
type ViewGormRepository struct {
	db *gorm.DB
}

func NewViewGormRepository(db *gorm.DB) *ViewGormRepository {
	return &ViewGormRepository{db: db}
}

func (r *ViewGormRepository) Init(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&viewEventModel{})
}

func (r *ViewGormRepository) Record(ctx context.Context, view domainEmbed.ViewEvent) error {
	model := viewEventModel{
		WidgetID:  view.WidgetID,
		IP:        view.IP,
		UserAgent: view.UserAgent,
		CreatedAt: view.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(&model).Error
}

func (r *ViewGormRepository) CountTotal(ctx context.Context, widgetID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&viewEventModel{}).
		Where("widget_id = ?", widgetID).
		Count(&count).Error
	return count, err
}

func (r *ViewGormRepository) CountSince(ctx context.Context, widgetID string, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&viewEventModel{}).
		Where("widget_id = ? AND created_at >= ?", widgetID, since).
		Count(&count).Error
	return count, err
}
