package bootstrap

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	assistinadapter "zenpod/internal/modules/assist/adapter/in"
	assistoutadapter "zenpod/internal/modules/assist/adapter/out"
	assistusecase "zenpod/internal/modules/assist/usecase"
	cataloginadapter "zenpod/internal/modules/catalog/adapter/in"
	catalogoutadapter "zenpod/internal/modules/catalog/adapter/out"
	catalogservice "zenpod/internal/modules/catalog/service"
	catalogusecase "zenpod/internal/modules/catalog/usecase"
	identityinadapter "zenpod/internal/modules/identity/adapter/in"
	identityoutadapter "zenpod/internal/modules/identity/adapter/out"
	identityservice "zenpod/internal/modules/identity/service"
	identityusecase "zenpod/internal/modules/identity/usecase"
	progressinadapter "zenpod/internal/modules/progress/adapter/in"
	progressoutadapter "zenpod/internal/modules/progress/adapter/out"
	progressservice "zenpod/internal/modules/progress/service"
	progressusecase "zenpod/internal/modules/progress/usecase"
	sessioninadapter "zenpod/internal/modules/session/adapter/in"
	sessionoutadapter "zenpod/internal/modules/session/adapter/out"
	sessionservice "zenpod/internal/modules/session/service"
	sessionusecase "zenpod/internal/modules/session/usecase"
	speechinadapter "zenpod/internal/modules/speech/adapter/in"
	speechoutadapter "zenpod/internal/modules/speech/adapter/out"
	speechservice "zenpod/internal/modules/speech/service"
	speechusecase "zenpod/internal/modules/speech/usecase"

	assistport "zenpod/internal/modules/assist/port/in"
	catalogport "zenpod/internal/modules/catalog/port/in"
	identityport "zenpod/internal/modules/identity/port/in"
	progressport "zenpod/internal/modules/progress/port/in"
	sessionport "zenpod/internal/modules/session/port/in"
	speechport "zenpod/internal/modules/speech/port/in"
	speechout "zenpod/internal/modules/speech/port/out"

	"zenpod/internal/logging"
	"zenpod/internal/platform/clock"
	"zenpod/internal/platform/config"
	"zenpod/internal/platform/httpx"
	"zenpod/internal/platform/id"
	uiapp "zenpod/internal/ui/app"
)

// App holds the wired use-cases and their CLI handlers. Close releases the
// sqlite cache and the hosted speech engine.
type App struct {
	CatalogUC  catalogport.Usecase
	IdentityUC identityport.Usecase
	SessionUC  sessionport.Usecase
	ProgressUC progressport.Usecase
	AssistUC   assistport.Usecase
	SpeechUC   speechport.Usecase

	CatalogCLI  cataloginadapter.CLIHandler
	IdentityCLI identityinadapter.CLIHandler
	SessionCLI  sessioninadapter.CLIHandler
	ProgressCLI progressinadapter.CLIHandler
	AssistCLI   assistinadapter.CLIHandler
	SpeechCLI   speechinadapter.CLIHandler

	closers []io.Closer
}

func New(cfg config.Config) (*App, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure data dir: %w", err)
	}

	logger, err := logging.New(logging.Options{Level: cfg.Log.Level, File: cfg.Log.File})
	if err != nil {
		return nil, err
	}

	client := httpx.New(cfg.APIURL)
	ids := id.UUID{}
	clk := clock.SystemClock{}

	app := &App{}

	cache, err := catalogoutadapter.NewSQLiteCache(cfg.DBPath(), clk)
	if err != nil {
		return nil, fmt.Errorf("new catalog cache: %w", err)
	}
	if closer, ok := cache.(io.Closer); ok {
		app.closers = append(app.closers, closer)
	}
	catalogSvc := catalogservice.NewCatalogService(catalogoutadapter.NewHTTPStore(client), cache, logger)
	app.CatalogUC = catalogusecase.NewInteractor(catalogSvc)

	identitySvc := identityservice.NewIdentityService(
		identityoutadapter.NewHTTPUserStore(client),
		identityoutadapter.NewFileTokenStore(cfg.TokenPath(), clk),
		logger,
	)
	app.IdentityUC = identityusecase.NewInteractor(identitySvc)

	app.SessionUC = sessionusecase.NewInteractor(
		sessionservice.NewSessionService(sessionoutadapter.NewHTTPStore(client)))

	app.ProgressUC = progressusecase.NewInteractor(
		progressservice.NewProgressService(progressoutadapter.NewHTTPStore(client)))

	app.AssistUC = assistusecase.NewInteractor(assistoutadapter.NewHTTPClient(client))

	var engine speechout.Engine
	if cfg.Speech.EnginePath != "" {
		engine = speechoutadapter.NewPluginEngine(cfg.Speech.EnginePath)
	}
	controller := speechservice.NewController(
		engine, ids, cfg.Speech.Lang, cfg.Speech.Rate, cfg.Speech.Pitch, logger)
	app.closers = append(app.closers, controller)
	app.SpeechUC = speechusecase.NewInteractor(controller)

	app.CatalogCLI = cataloginadapter.NewCLIHandler(app.CatalogUC)
	app.IdentityCLI = identityinadapter.NewCLIHandler(app.IdentityUC)
	app.SessionCLI = sessioninadapter.NewCLIHandler(app.SessionUC)
	app.ProgressCLI = progressinadapter.NewCLIHandler(app.ProgressUC)
	app.AssistCLI = assistinadapter.NewCLIHandler(app.AssistUC)
	app.SpeechCLI = speechinadapter.NewCLIHandler(app.SpeechUC)

	return app, nil
}

// Close releases everything New opened, last to first.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		_ = a.closers[i].Close()
	}
}

func RunTUI(app *App) error {
	// Voices load asynchronously in the engine; warm them so the first
	// utterance does not wait.
	go app.SpeechUC.Preload(context.Background())

	model := uiapp.NewModel(
		app.CatalogUC,
		app.IdentityUC,
		app.SessionUC,
		app.ProgressUC,
		app.AssistUC,
		app.SpeechUC,
	)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
