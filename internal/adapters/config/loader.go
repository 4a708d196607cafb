// Package config loads the flowpack.yaml project configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/flowpack/internal/core/domain"
	"go.trai.ch/flowpack/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load finds flowpack.yaml in cwd or one of its parents. Without a file the
// defaults rooted at cwd are returned.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	configPath, found := findConfiguration(cwd)
	if !found {
		l.Logger.Debug(fmt.Sprintf("no %s found, using defaults", domain.ConfigFileName))
		return domain.DefaultConfig(filepath.Clean(cwd)), nil
	}

	var schema Schema
	if err := readAndUnmarshalYAML(configPath, &schema); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	if schema.Version != "" && schema.Version != SupportedVersion {
		l.Logger.Warn(fmt.Sprintf("%s declares version %q, expected %q",
			configPath, schema.Version, SupportedVersion))
	}

	l.Logger.Debug("loaded " + configPath)
	return schema.apply(resolveRoot(configPath, schema.Root)), nil
}

func findConfiguration(cwd string) (string, bool) {
	currentDir := filepath.Clean(cwd)
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

func (s *Schema) apply(root string) *domain.Config {
	cfg := domain.DefaultConfig(root)

	if s.DependencyRoot != "" {
		cfg.DependencyRoot = resolvePath(root, s.DependencyRoot)
	}
	if s.Descriptor != "" {
		cfg.DescriptorPath = resolvePath(root, s.Descriptor)
	}
	if s.BundleImport != "" {
		cfg.BundleImport = s.BundleImport
	}

	p := s.Precache
	if p == nil {
		return cfg
	}
	if p.OutputDir != "" {
		cfg.Precache.OutputDir = resolvePath(root, p.OutputDir)
	}
	if p.ServiceWorker != "" {
		cfg.Precache.ServiceWorker = filepath.ToSlash(p.ServiceWorker)
	}
	if p.EntryDocument != "" {
		cfg.Precache.EntryDocument = filepath.ToSlash(p.EntryDocument)
	}
	if p.ShellURL != "" {
		cfg.Precache.ShellURL = p.ShellURL
	}
	if p.MaxFileSize != nil {
		cfg.Precache.MaxFileSize = *p.MaxFileSize
	}
	if p.Exclude != nil {
		cfg.Precache.Exclude = p.Exclude
	}
	if p.DontCacheBust != nil {
		cfg.Precache.DontCacheBust = *p.DontCacheBust
	}
	if p.InjectionPoint != "" {
		cfg.Precache.InjectionPoint = p.InjectionPoint
	}
	return cfg
}

func resolveRoot(configPath, configuredRoot string) string {
	configDir := filepath.Dir(configPath)
	if configuredRoot == "" {
		return filepath.Clean(configDir)
	}
	return resolvePath(configDir, configuredRoot)
}

func resolvePath(base, p string) string {
	p = filepath.FromSlash(p)
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(base, p)
}

// readAndUnmarshalYAML reads a YAML file and decodes it strictly into target.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is found by walking up from the working directory
	data, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return zerr.Wrap(domain.ErrConfigParseFailed, err.Error())
	}
	return nil
}
