package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"go.trai.ch/flowpack/internal/adapters/watcher" //nolint:depguard // Debouncing is wired in app layer
	"go.trai.ch/flowpack/internal/core/domain"
	"go.trai.ch/zerr"
)

// Watch rebuilds the session whenever the bundle descriptor or the metadata of
// a bundled package changes, handing every new session to onReload. It blocks
// until ctx is done.
func (a *App) Watch(ctx context.Context, initial *Session, onReload func(*Session)) error {
	session := initial
	for {
		next, err := a.watchOnce(ctx, session)
		if err != nil || next == nil {
			return err
		}
		onReload(next)
		session = next
	}
}

// watchOnce waits for the first debounced change to the session's inputs and
// returns the reloaded session, or nil once ctx is done. The package set can
// change between sessions, so every round starts a fresh watcher.
func (a *App) watchOnce(ctx context.Context, session *Session) (*Session, error) {
	w, err := a.watchers()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrWatchFailed.Error())
	}
	defer func() { _ = w.Stop() }()

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := w.Start(watchCtx, watchPaths(session)); err != nil {
		return nil, zerr.Wrap(err, domain.ErrWatchFailed.Error())
	}

	changed := make(chan []string, 1)
	debouncer := watcher.NewDebouncer(a.debounce, func(paths []string) {
		select {
		case changed <- paths:
		default:
		}
	})
	events := w.Events()
	go func() {
		for event := range events {
			debouncer.Add(event.Path)
		}
	}()

	select {
	case <-ctx.Done():
		return nil, nil
	case paths := <-changed:
		a.logger.Info(fmt.Sprintf("dependencies changed (%s), reloading session", strings.Join(paths, ", ")))
		return a.OpenSession(ctx, session.Config), nil
	}
}

// watchPaths lists the files a session depends on: the descriptor itself and
// the package.json of every package it declares.
func watchPaths(session *Session) []string {
	cfg := session.Config
	paths := []string{cfg.DescriptorPath}
	for _, name := range session.Descriptor.PackageNames() {
		paths = append(paths, filepath.Join(cfg.DependencyRoot, filepath.FromSlash(name), domain.PackageMetadataFile))
	}
	return paths
}
