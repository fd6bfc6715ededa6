package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/muurk/predator-rgb/internal/lighting"
	"github.com/muurk/predator-rgb/internal/logging"
)

// Format is a profile file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// DefaultFormat is used for new profiles.
const DefaultFormat = FormatYAML

// profileExtensions lists the extensions Load searches, in order.
var profileExtensions = []struct {
	ext    string
	format Format
}{
	{".yaml", FormatYAML},
	{".yml", FormatYAML},
	{".json", FormatJSON},
	{".toml", FormatTOML},
}

// ParseFormat parses a --profile-format value.
func ParseFormat(input string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(input))); f {
	case FormatYAML, FormatJSON, FormatTOML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", lighting.NewFormatError("profile-format", fmt.Sprintf("%q is not a profile format (yaml, json, toml)", input))
	}
}

// Extension returns the file extension written for the format.
func (f Format) Extension() string {
	return "." + string(f)
}

func (f Format) marshal(s *Settings) ([]byte, error) {
	switch f {
	case FormatJSON:
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatTOML:
		return toml.Marshal(s)
	default:
		return yaml.Marshal(s)
	}
}

func (f Format) unmarshal(data []byte, s *Settings) error {
	switch f {
	case FormatJSON:
		return json.Unmarshal(data, s)
	case FormatTOML:
		return toml.NewDecoder(bytes.NewReader(data)).Decode(s)
	default:
		return yaml.Unmarshal(data, s)
	}
}

// ProfileStore saves and loads named settings profiles in one directory.
type ProfileStore struct {
	dir string
	mu  sync.Mutex
}

// NewProfileStore creates a store rooted at dir. The directory is created
// on the first Save.
func NewProfileStore(dir string) *ProfileStore {
	return &ProfileStore{dir: dir}
}

// Dir returns the profile directory.
func (p *ProfileStore) Dir() string {
	return p.dir
}

func validateProfileName(name string) error {
	if strings.TrimSpace(name) == "" {
		return lighting.NewValidationError("profile", "profile name must not be empty")
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return lighting.NewValidationError("profile", fmt.Sprintf("invalid profile name %q", name))
	}
	return nil
}

// Save writes s as profile name, replacing any existing profile of that
// name in any format. Returns the written path.
func (p *ProfileStore) Save(name string, s *Settings, format Format) (string, error) {
	if err := validateProfileName(name); err != nil {
		return "", err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	// Create directory with user-only permissions (0700)
	if err := os.MkdirAll(p.dir, 0700); err != nil {
		return "", lighting.NewIOError(p.dir, "failed to create profile directory", err)
	}

	data, err := format.marshal(s)
	if err != nil {
		return "", fmt.Errorf("failed to encode profile %q: %w", name, err)
	}

	path := filepath.Join(p.dir, name+format.Extension())

	// Write to temporary file first (atomic write)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return "", lighting.NewIOError(tmpPath, fmt.Sprintf("failed to create profile file '%s'", name), err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return "", lighting.NewIOError(path, fmt.Sprintf("failed to save profile '%s'", name), err)
	}

	// Drop same-named profiles in other formats so Load finds this one
	for _, candidate := range profileExtensions {
		other := filepath.Join(p.dir, name+candidate.ext)
		if other != path {
			if err := os.Remove(other); err != nil && !errors.Is(err, os.ErrNotExist) {
				logging.Warn("Failed to remove stale profile", zap.String("path", other), zap.Error(err))
			}
		}
	}

	logging.LogProfile("saved", name, path)
	return path, nil
}

// Load reads profile name. Keys missing from the file keep their defaults.
func (p *ProfileStore) Load(name string) (*Settings, error) {
	if err := validateProfileName(name); err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	for _, candidate := range profileExtensions {
		path := filepath.Join(p.dir, name+candidate.ext)
		data, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, lighting.NewIOError(path, fmt.Sprintf("failed to load profile '%s'", name), err)
		}

		s := DefaultSettings()
		if err := candidate.format.unmarshal(data, s); err != nil {
			return nil, lighting.NewDecodeError(path, fmt.Sprintf("failed to parse profile '%s'", name), err)
		}
		logging.LogProfile("loaded", name, path)
		return s, nil
	}

	return nil, lighting.NewIOError(
		filepath.Join(p.dir, name),
		fmt.Sprintf("failed to load profile '%s'", name),
		os.ErrNotExist,
	)
}

// List returns the sorted names of all saved profiles.
// A missing directory yields an empty list.
func (p *ProfileStore) List() ([]string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	entries, err := os.ReadDir(p.dir)
	if errors.Is(err, os.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, lighting.NewIOError(p.dir, "failed to read profile directory", err)
	}

	seen := make(map[string]bool)
	names := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name, ok := profileName(entry.Name())
		if !ok {
			logging.Debug("Skipping non-profile file", zap.String("file", entry.Name()))
			continue
		}
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

func profileName(file string) (string, bool) {
	ext := filepath.Ext(file)
	for _, candidate := range profileExtensions {
		if ext == candidate.ext {
			name := strings.TrimSuffix(file, ext)
			return name, name != ""
		}
	}
	return "", false
}
