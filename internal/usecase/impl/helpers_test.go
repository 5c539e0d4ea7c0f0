package impl

import (
	"io"
	"log/slog"
	"time"

	"mailpilot/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(storeTimeout time.Duration) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:   10,
			StoreTimeout: storeTimeout,
		},
	}
}
