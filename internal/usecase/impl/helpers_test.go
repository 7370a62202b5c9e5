package impl

import (
	"io"
	"log/slog"

	"recipebook/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(cascadeRecipes bool) *config.Config {
	return &config.Config{
		Profile: &config.ProfileConfig{CascadeRecipes: cascadeRecipes},
	}
}
