package usecase

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/floatkit/floatkit/core/config"
	domainHealth "github.com/floatkit/floatkit/domains/health"
	"github.com/floatkit/floatkit/infrastructure/valkey"
)

type healthService struct {
	db *gorm.DB
	vk *valkey.Client
}

func NewHealthService(db *gorm.DB, vk *valkey.Client) domainHealth.IHealthUsecase {
	return &healthService{db: db, vk: vk}
}

func (s *healthService) Status(ctx context.Context) domainHealth.Status {
	status := domainHealth.Status{
		Healthy:  true,
		Database: "ok",
		Valkey:   "disabled",
	}
	if config.Global != nil {
		status.Version = config.Global.App.Version
	}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	sqlDB, err := s.db.DB()
	if err != nil {
		status.Healthy = false
		status.Database = err.Error()
	} else if err := sqlDB.PingContext(pingCtx); err != nil {
		status.Healthy = false
		status.Database = err.Error()
	}

	if s.vk != nil {
		if s.vk.IsConnected() {
			status.Valkey = "ok"
		} else {
			// Valkey is an accelerator, not a dependency; its absence does
			// not flip the overall flag.
			status.Valkey = "unreachable"
		}
	}

	return status
}
