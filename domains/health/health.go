package health

import "context"

// Status summarizes the serving dependencies.
type Status struct {
	Healthy  bool   `json:"healthy"`
	Database string `json:"database"`
	Valkey   string `json:"valkey"`
	Version  string `json:"version"`
}

type IHealthUsecase interface {
	Status(ctx context.Context) Status
}
