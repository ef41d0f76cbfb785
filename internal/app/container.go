// Package app wires application services with infrastructure adapters.
package app

import (
	"context"

	"github.com/SargeyWargey/documentation-generator-sub000/internal/application/doctor"
	"github.com/SargeyWargey/documentation-generator-sub000/internal/application/executor"
	"github.com/SargeyWargey/documentation-generator-sub000/internal/domain"
	"github.com/SargeyWargey/documentation-generator-sub000/internal/infrastructure/commands"
	"github.com/SargeyWargey/documentation-generator-sub000/internal/infrastructure/config"
	"github.com/SargeyWargey/documentation-generator-sub000/internal/infrastructure/history"
	"github.com/SargeyWargey/documentation-generator-sub000/internal/infrastructure/templates"
	"github.com/SargeyWargey/documentation-generator-sub000/internal/pkg/logger"
	"github.com/SargeyWargey/documentation-generator-sub000/internal/ports"
)

// Container holds the assembled dependency graph.
type Container struct {
	Config          domain.Config
	ConfigLoader    *config.FileLoader
	ExecutorService *executor.Service
	DoctorService   *doctor.Service
	CommandManager  *commands.Manager
	TemplateManager *templates.Manager
	HistoryStore    ports.HistoryRepository
	Logger          ports.Logger
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.NewStd(verbose)

	templateManager := templates.NewManager(cfg.Templates, cfg.Commands.OutputDir)
	if err := templateManager.EnsureDefaults(); err != nil {
		log.Warn("default templates unavailable", map[string]interface{}{"error": err.Error()})
	}

	commandManager, err := commands.NewManager(cfg.Commands, log)
	if err != nil {
		return nil, err
	}

	historyStore := buildHistoryStore(cfg.History)

	executorService := &executor.Service{
		Generator:   templateManager,
		Manager:     commandManager,
		HistoryRepo: historyStore,
		Logger:      log,
		Config:      cfg.Commands,
	}

	doctorService := &doctor.Service{
		ConfigProvider: cfgLoader,
		Templates:      templateManager,
		ActiveCommands: func() int { return len(commandManager.ListActive()) },
	}

	return &Container{
		Config:          cfg,
		ConfigLoader:    cfgLoader,
		ExecutorService: executorService,
		DoctorService:   doctorService,
		CommandManager:  commandManager,
		TemplateManager: templateManager,
		HistoryStore:    historyStore,
		Logger:          log,
	}, nil
}

func buildHistoryStore(settings domain.HistorySettings) ports.HistoryRepository {
	if settings.Backend == "file" {
		return history.NewFileStore()
	}
	return history.NewSQLiteStore()
}
