package cmd

import (
	"errors"
	"time"

	adapterfollow "github.com/renato0307/trailhook/internal/adapters/follow"
	adaptergit "github.com/renato0307/trailhook/internal/adapters/git"
	"github.com/renato0307/trailhook/internal/adapters/jsonl"
	adapternats "github.com/renato0307/trailhook/internal/adapters/nats"
	adapterprocess "github.com/renato0307/trailhook/internal/adapters/process"
	adaptersound "github.com/renato0307/trailhook/internal/adapters/sound"
	adapterstorage "github.com/renato0307/trailhook/internal/adapters/storage"
	adaptertokens "github.com/renato0307/trailhook/internal/adapters/tokens"
	"github.com/renato0307/trailhook/internal/config"
	"github.com/renato0307/trailhook/internal/domain"
	"github.com/renato0307/trailhook/internal/logging"
	"github.com/renato0307/trailhook/internal/ports"
	"github.com/renato0307/trailhook/internal/services"
)

// Container holds all dependencies for the application.
// Building it performs no I/O: hook invocations use it on every agent and git
// event, so the session store and NATS are only opened by SessionService.
type Container struct {
	// Services
	Catalog       *services.Catalog
	Dispatcher    *services.Dispatcher
	GitHooks      *services.GitHooks
	HookInstaller *services.HookInstaller

	// Adapters
	Store *jsonl.FileStore

	// Internal - for cleanup only
	launcher    ports.ProcessLauncher
	publisher   *adapternats.Publisher
	sessionRepo ports.SessionRepository
	settings    *config.Settings
}

// SessionOptions tune the session service built for one command
type SessionOptions struct {
	DrainTimeout time.Duration
	NATSURL      string
	Sound        bool
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(settings *config.Settings) *Container {
	gitRepo := adaptergit.NewCLIRepository()
	estimator := adaptertokens.NewTiktokenEstimator()
	store := jsonl.NewFileStore()

	return &Container{
		Catalog:       services.NewCatalog(store, settings.RecordingsDir),
		Dispatcher:    services.NewDispatcher(jsonl.NewEmitter(domain.ChannelPrimary), estimator),
		GitHooks:      services.NewGitHooks(jsonl.NewEmitter(domain.ChannelSecondary), gitRepo, estimator),
		HookInstaller: services.NewHookInstaller(gitRepo, config.GetGlobalHooksPath()),
		Store:         store,
		launcher:      adapterprocess.NewExecLauncher(),
		settings:      settings,
	}
}

// SessionService opens the session store (and NATS when asked) and builds the
// service that runs and captures sessions
func (c *Container) SessionService(opts SessionOptions) (*services.SessionService, error) {
	if c.sessionRepo == nil {
		repo, err := adapterstorage.NewSQLiteRepository(config.GetDBPath())
		if err != nil {
			return nil, err
		}
		c.sessionRepo = repo
	}

	drainTimeout := opts.DrainTimeout
	if drainTimeout == 0 {
		drainTimeout = c.settings.DrainTimeout
	}
	base := services.MergerOptions{
		DrainTimeout: drainTimeout,
		Provider:     c.settings.Provider,
		StopGrace:    c.settings.StopGrace,
	}
	if listener, ok := c.sessionRepo.(ports.SessionListener); ok {
		base.Listener = listener
	}

	natsURL := opts.NATSURL
	if natsURL == "" {
		natsURL = c.settings.NATS.URL
	}
	if natsURL != "" && c.publisher == nil {
		publisher, err := adapternats.Connect(natsURL, c.settings.NATS.SubjectPrefix)
		if err != nil {
			return nil, err
		}
		c.publisher = publisher
	}
	if c.publisher != nil {
		base.Observers = append(base.Observers, c.publisher)
	}
	if opts.Sound || c.settings.Sound {
		base.Observers = append(base.Observers, adaptersound.NewNotifier())
	}

	return services.NewSessionService(
		c.Store,
		c.Catalog,
		jsonl.Codec{},
		c.launcher,
		adapterfollow.NewFollower(),
		c.sessionRepo,
		base,
	), nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	var errs []error
	if c.publisher != nil {
		errs = append(errs, c.publisher.Close())
	}
	if c.sessionRepo != nil {
		errs = append(errs, c.sessionRepo.Close())
	}
	if err := errors.Join(errs...); err != nil {
		logging.Logger.Warn("Failed to release resources", "error", err)
		return err
	}
	return nil
}
