package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jiralink/jiralink/internal/config"
	"github.com/jiralink/jiralink/internal/platform"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"
)

// FilePerm is used when the settings file is created.
const FilePerm os.FileMode = 0600

// ErrUnknownKey is returned by Get and Set for keys that are not scalar
// settings.
var ErrUnknownKey = errors.New("unknown settings key")

// scalarKeys are the keys readable and writable through Get/Set and
// overridable from the environment.
var scalarKeys = []string{
	KeyLocalIssuePath,
	KeyMainFileName,
	KeyUseProjectFolder,
	KeyNewlineOnInsert,
}

// Store reads and writes the settings file at a fixed path.
type Store struct {
	path string
	v    *viper.Viper
}

// Open opens the settings file at path. The file does not need to exist.
func Open(path string) (*Store, error) {
	v, err := config.Open(path)
	if err != nil {
		return nil, err
	}
	for _, key := range scalarKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("binding env for %s: %w", key, err)
		}
	}
	v.SetDefault(KeyMainFileName, DefaultMainFileName)
	v.SetDefault(KeyUseProjectFolder, true)

	return &Store{path: path, v: v}, nil
}

// OpenDefault opens the settings file in the user config directory.
func OpenDefault() (*Store, error) {
	return Open(config.FilePath())
}

// Path returns the settings file path.
func (s *Store) Path() string { return s.path }

// Exists reports whether the settings file is present on disk.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load returns the effective settings: file values, then defaults, with
// JIRALINK_* environment variables taking precedence for scalar keys.
func (s *Store) Load() (*Settings, error) {
	var st Settings
	if err := s.v.Unmarshal(&st); err != nil {
		return nil, fmt.Errorf("decoding settings %s: %w", s.path, err)
	}
	return &st, nil
}

// Document returns the settings exactly as stored in the file, without
// environment overrides. Mutations start from the document so that
// overrides are never written back.
func (s *Store) Document() (*Settings, error) {
	st := &Settings{
		MainFileName:     DefaultMainFileName,
		UseProjectFolder: true,
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return st, nil
		}
		return nil, fmt.Errorf("reading settings: %w", err)
	}
	if err := yaml.Unmarshal(data, st); err != nil {
		return nil, fmt.Errorf("parsing settings: %w", err)
	}
	return st, nil
}

// Save writes st to the settings file and reloads it.
func (s *Store) Save(st *Settings) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}
	if st.Version == "" {
		st.Version = CurrentVersion
	}

	data, err := yaml.Marshal(st)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := platform.WriteFileAtomic(s.path, data, platform.ExistingPerm(s.path, FilePerm)); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	if err := s.v.ReadInConfig(); err != nil {
		return fmt.Errorf("reloading settings: %w", err)
	}
	return nil
}

// Update loads the stored document, applies fn and saves the result. Nothing
// is written when fn returns an error.
func (s *Store) Update(fn func(*Settings) error) error {
	st, err := s.Document()
	if err != nil {
		return err
	}
	if err := fn(st); err != nil {
		return err
	}
	return s.Save(st)
}

// Get returns the effective value of a scalar key as a string.
func (s *Store) Get(key string) (string, error) {
	if !isScalarKey(key) {
		return "", fmt.Errorf("%w %q", ErrUnknownKey, key)
	}
	return s.v.GetString(key), nil
}

// Set writes a scalar key. Paths lose one trailing slash and booleans are
// parsed with strconv.ParseBool.
func (s *Store) Set(key, value string) error {
	if !isScalarKey(key) {
		return fmt.Errorf("%w %q", ErrUnknownKey, key)
	}

	return s.Update(func(st *Settings) error {
		switch key {
		case KeyLocalIssuePath:
			st.LocalIssuePath = strings.TrimSuffix(value, "/")
		case KeyMainFileName:
			st.MainFileName = value
		case KeyUseProjectFolder, KeyNewlineOnInsert:
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("%s must be true or false: %w", key, err)
			}
			if key == KeyUseProjectFolder {
				st.UseProjectFolder = b
			} else {
				st.NewlineOnInsert = b
			}
		}
		return nil
	})
}

// Keys returns the scalar keys accepted by Get and Set.
func Keys() []string {
	return append([]string(nil), scalarKeys...)
}

func isScalarKey(key string) bool {
	for _, k := range scalarKeys {
		if k == key {
			return true
		}
	}
	return false
}
