package configstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	iopkg "github.com/devantler-tech/wilder/pkg/io"
	"github.com/devantler-tech/wilder/pkg/registry"
	"github.com/devantler-tech/wilder/pkg/utils/logging"
	"github.com/devantler-tech/wilder/pkg/utils/notify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	// FileName is the name of the registry record in the working directory.
	FileName = ".wilderrc"

	configType   = "json"
	filePermUser = 0o644
	ownerWrite   = 0o200
)

// RegistryConfig is the persisted registry record.
type RegistryConfig struct {
	// Registry is the normalized registry URL.
	Registry string `json:"registry" jsonschema:"format=uri,description=Package registry URL passed to the package manager as --registry" mapstructure:"registry"`
}

// Store reads and writes the registry record in a directory.
type Store struct {
	dir    string
	writer io.Writer
	logger logrus.FieldLogger
}

// Option configures a Store.
type Option func(*Store)

// WithWriter sets the writer that receives warnings about malformed records.
func WithWriter(writer io.Writer) Option {
	return func(s *Store) {
		if writer != nil {
			s.writer = writer
		}
	}
}

// WithLogger sets the logger for store diagnostics.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a Store for the record in dir.
func New(dir string, opts ...Option) *Store {
	store := &Store{
		dir:    dir,
		writer: os.Stderr,
		logger: logging.Discard(),
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

// Path returns the location of the record.
func (s *Store) Path() string {
	return filepath.Join(s.dir, FileName)
}

// Read loads the record. It returns false when the record is missing or malformed.
func (s *Store) Read() (*RegistryConfig, bool) {
	viperInstance := viper.New()
	viperInstance.SetConfigFile(s.Path())
	viperInstance.SetConfigType(configType)

	err := viperInstance.ReadInConfig()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debugf("no %s found in %s", FileName, s.dir)

			return nil, false
		}

		s.warnMalformed(err)

		return nil, false
	}

	var config RegistryConfig

	err = viperInstance.Unmarshal(&config)
	if err != nil {
		s.warnMalformed(err)

		return nil, false
	}

	return &config, true
}

// Write persists registry, replacing any existing record. A record the operator made
// read-only is left untouched and reported as [ErrPermissionDenied].
func (s *Store) Write(url registry.URL) error {
	if url.IsZero() {
		return fmt.Errorf("%w: empty value", registry.ErrInvalidURL)
	}

	data, err := json.MarshalIndent(RegistryConfig{Registry: url.String()}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", FileName, err)
	}

	data = append(data, '\n')

	err = s.writeAtomic(data)
	if err != nil {
		return classify(err, "write")
	}

	s.logger.Debugf("wrote registry %s to %s", url, s.Path())

	return nil
}

// Delete removes the record. A missing record is not an error.
func (s *Store) Delete() error {
	err := os.Remove(s.Path())
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return classify(err, "remove")
}

// Current returns the persisted registry, or [registry.DefaultURL] when none is set.
func (s *Store) Current() string {
	config, ok := s.Read()
	if !ok {
		return registry.DefaultURL.String()
	}

	if value, set := iopkg.TrimNonEmpty(config.Registry); set {
		return value
	}

	return registry.DefaultURL.String()
}

func (s *Store) writeAtomic(data []byte) error {
	// The rename below would replace a read-only record, so refuse it up front.
	info, err := os.Stat(s.Path())
	if err == nil && info.Mode().Perm()&ownerWrite == 0 {
		return &fs.PathError{Op: "open", Path: s.Path(), Err: fs.ErrPermission}
	}

	tmp, err := os.CreateTemp(s.dir, "."+FileName+"-*.tmp")
	if err != nil {
		return err //nolint:wrapcheck // classified by caller
	}

	tmpPath := tmp.Name()

	defer func() {
		// No-op after a successful rename.
		_ = os.Remove(tmpPath)
	}()

	_, err = tmp.Write(data)
	if err != nil {
		_ = tmp.Close()

		return err //nolint:wrapcheck // classified by caller
	}

	err = tmp.Sync()
	if err != nil {
		_ = tmp.Close()

		return err //nolint:wrapcheck // classified by caller
	}

	err = tmp.Close()
	if err != nil {
		return err //nolint:wrapcheck // classified by caller
	}

	err = os.Chmod(tmpPath, filePermUser)
	if err != nil {
		return err //nolint:wrapcheck // classified by caller
	}

	return os.Rename(tmpPath, s.Path()) //nolint:wrapcheck // classified by caller
}

func (s *Store) warnMalformed(err error) {
	s.logger.WithError(err).Debugf("failed to parse %s", s.Path())
	notify.Warningf(s.writer, "%s is malformed, using the default registry", FileName)
}

func classify(err error, op string) error {
	if errors.Is(err, fs.ErrPermission) {
		return fmt.Errorf("%w: %s %s: %w", ErrPermissionDenied, op, FileName, err)
	}

	return fmt.Errorf("failed to %s %s: %w", op, FileName, err)
}
