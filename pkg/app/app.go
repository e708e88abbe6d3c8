package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/rickmorty/pkg/app/screens"
	"github.com/kerbaras/rickmorty/pkg/i18n"
	"github.com/kerbaras/rickmorty/pkg/services"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

type App struct {
	controller *services.CharacterController
	dict       *i18n.Dictionary
	lang       language.Tag
	logger     *zap.Logger
}

func NewApp(controller *services.CharacterController, dict *i18n.Dictionary, lang language.Tag, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{controller: controller, dict: dict, lang: lang, logger: logger}
}

func (a *App) Run(ctx context.Context) error {
	model := screens.NewBrowserScreen(ctx, a.controller, a.dict, a.lang)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	a.logger.Info("starting browser", zap.String("language", i18n.Code(a.lang)))
	_, err := p.Run()
	if err != nil {
		a.logger.Error("browser exited", zap.Error(err))
	}
	return err
}
