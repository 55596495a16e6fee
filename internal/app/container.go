package app

import (
	"context"

	"github.com/t3lang/t3lang-shell/assets"
	"github.com/t3lang/t3lang-shell/internal/application/bridge"
	"github.com/t3lang/t3lang-shell/internal/application/doctor"
	"github.com/t3lang/t3lang-shell/internal/application/menu"
	"github.com/t3lang/t3lang-shell/internal/application/provision"
	"github.com/t3lang/t3lang-shell/internal/domain"
	"github.com/t3lang/t3lang-shell/internal/infrastructure/config"
	"github.com/t3lang/t3lang-shell/internal/infrastructure/desktop"
	"github.com/t3lang/t3lang-shell/internal/infrastructure/elevation"
	"github.com/t3lang/t3lang-shell/internal/infrastructure/journal"
	"github.com/t3lang/t3lang-shell/internal/infrastructure/process"
	"github.com/t3lang/t3lang-shell/internal/pkg/logger"
	"github.com/t3lang/t3lang-shell/internal/ports"
	"github.com/t3lang/t3lang-shell/internal/version"
)

// Container wires up application services with infrastructure adapters.
type Container struct {
	Config         domain.Config
	ConfigProvider ports.ConfigProvider
	ConfigLoader   *config.FileLoader
	Logger         ports.Logger
	Paths          domain.Paths
	Provisioner    *provision.Service
	Journal        ports.JournalRepository
	MenuBuilder    *menu.Builder
	DoctorService  *doctor.Service
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.NewStd(verbose)
	paths := domain.DefaultPaths()

	strategy, err := provision.NewStrategy(cfg.StrategyOrDefault(), version.Version)
	if err != nil {
		return nil, err
	}

	var journalStore ports.JournalRepository
	if cfg.Provisioning.Journal {
		journalStore = journal.NewSQLiteStore(journal.DefaultPath())
	}

	provisioner := &provision.Service{
		Paths:    paths,
		Strategy: strategy,
		Executor: elevation.NewExecutor(log),
		Journal:  journalStore,
		Logger:   log,
	}

	doctorService := &doctor.Service{
		ConfigProvider: cfgLoader,
		Provisioner:    provisioner,
		Journal:        journalStore,
		Processes:      process.NewInspector(),
		Paths:          paths,
		AppVersion:     version.Version,
	}

	return &Container{
		Config:         cfg,
		ConfigProvider: cfgLoader,
		ConfigLoader:   cfgLoader,
		Logger:         log,
		Paths:          paths,
		Provisioner:    provisioner,
		Journal:        journalStore,
		MenuBuilder:    menu.NewBuilder(domain.AppName),
		DoctorService:  doctorService,
	}, nil
}

// DesktopHost assembles the window host. launchPath is the path handed over
// on the command line, or empty.
func (c *Container) DesktopHost(launchPath string) (*desktop.Host, error) {
	tree, err := c.MenuBuilder.Build(c.Config.VariantOrDefault())
	if err != nil {
		return nil, err
	}
	frontend, err := assets.Frontend()
	if err != nil {
		return nil, err
	}

	emitter := desktop.NewEmitter()
	return &desktop.Host{
		Config:     c.Config,
		Tree:       tree,
		Bridge:     bridge.New(emitter, c.Logger, bridge.WithDelay(c.Config.OpenDelay())),
		Emitter:    emitter,
		Commands:   desktop.NewCommands(c.Provisioner),
		Files:      desktop.NewFiles(emitter, c.Logger),
		Assets:     frontend,
		Logger:     c.Logger,
		Version:    version.Version,
		LaunchPath: launchPath,
	}, nil
}
