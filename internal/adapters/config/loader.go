// Package config provides the configuration loader for py2sec.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"

	"go.trai.ch/py2sec/internal/core/domain"
	"go.trai.ch/py2sec/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the configuration file at path. A missing file yields nil, nil.
func (l *Loader) Load(path string) (*domain.ProjectConfig, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Join(domain.ErrConfigReadFailed,
			zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path))
	}

	if len(bytes.TrimSpace(data)) == 0 {
		l.logger.Warn("config file is empty, using defaults: " + path)
		return &domain.ProjectConfig{}, nil
	}

	file, err := parse(data)
	if err != nil {
		return nil, errors.Join(domain.ErrConfigParseFailed,
			zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path))
	}
	return file.toDomain(), nil
}

// parse decodes a py2sec.yaml document. Unknown keys are rejected.
func parse(data []byte) (*Py2secfile, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var file Py2secfile
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &file, nil
}

func (f *Py2secfile) toDomain() *domain.ProjectConfig {
	return &domain.ProjectConfig{
		Interpreter: f.Interpreter,
		Python:      f.Python,
		Directory:   f.Directory,
		File:        f.File,
		Mode:        f.Mode,
		Exclude:     f.Exclude,
		Jobs:        f.Jobs,
		Quiet:       f.Quiet,
		Release:     f.Release,
		Extensions:  f.Extensions,
		Template:    f.Template,
	}
}
