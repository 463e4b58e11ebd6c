package usecase

import (
	"context"

	"go-form-relay/config"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	storeDriver     string
	emailConfigured bool
}

func NewHealthUsecase(cfg *config.Config, emailConfigured bool) HealthUsecase {
	return &healthUsecase{
		storeDriver:     cfg.SheetStoreDriver,
		emailConfigured: emailConfigured,
	}
}

// Check reports liveness plus the wiring chosen at startup. It makes no external calls.
func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	email := "configured"
	if !u.emailConfigured {
		email = "not_configured"
	}
	return map[string]string{
		"status":       "ok",
		"store_driver": u.storeDriver,
		"email":        email,
	}
}
