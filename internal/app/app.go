// Package app implements the application layer for flowpack.
package app

import (
	"time"

	"go.trai.ch/flowpack/internal/adapters/watcher" //nolint:depguard // Debouncing is wired in app layer
	"go.trai.ch/flowpack/internal/core/domain"
	"go.trai.ch/flowpack/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	descriptors  ports.DescriptorLoader
	versions     ports.VersionLookupFactory
	outputs      ports.OutputEnumerator
	watchers     ports.WatcherFactory
	tracer       ports.Tracer
	logger       ports.Logger
	debounce     time.Duration
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	descriptors ports.DescriptorLoader,
	versions ports.VersionLookupFactory,
	outputs ports.OutputEnumerator,
	watchers ports.WatcherFactory,
	tracer ports.Tracer,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		descriptors:  descriptors,
		versions:     versions,
		outputs:      outputs,
		watchers:     watchers,
		tracer:       tracer,
		logger:       log,
		debounce:     watcher.DefaultDebounceWindow,
	}
}

// WithDebounce sets the quiet period before watch mode reloads the session.
func (a *App) WithDebounce(window time.Duration) *App {
	a.debounce = window
	return a
}

// LoadConfig resolves the project configuration for cwd.
func (a *App) LoadConfig(cwd string) (*domain.Config, error) {
	cfg, err := a.configLoader.Load(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

type configurableLogger interface {
	SetVerbose(enable bool)
	SetJSON(enable bool)
}

// ConfigureLogging applies the global output flags to the logger when it
// supports them.
func (a *App) ConfigureLogging(verbose, jsonOutput bool) {
	l, ok := a.logger.(configurableLogger)
	if !ok {
		return
	}
	l.SetVerbose(verbose)
	l.SetJSON(jsonOutput)
}
