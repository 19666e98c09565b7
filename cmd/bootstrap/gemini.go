package bootstrap

import (
	"wishlink/internal/infra/gemini"
	"wishlink/internal/pkg/config"
	"wishlink/internal/usecase"

	"go.uber.org/fx"
)

var GeminiModule = fx.Module("gemini",
	fx.Provide(
		fx.Annotate(
			NewGeminiClient,
			fx.As(new(usecase.TextGenerator)),
		),
	),
)

func NewGeminiClient(cfg config.Config) *gemini.Client {
	return gemini.NewClient(cfg.Gemini)
}
