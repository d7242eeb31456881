package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// LoaderBackendType identifies the snapshot file format backend to use.
type LoaderBackendType int

const (
	// BackendTypeJSON selects the indented JSON backend.
	BackendTypeJSON LoaderBackendType = iota
	// BackendTypeTOML selects the TOML backend.
	BackendTypeTOML
)

// String returns the format name.
func (t LoaderBackendType) String() string {
	switch t {
	case BackendTypeJSON:
		return "json"
	case BackendTypeTOML:
		return "toml"
	default:
		return fmt.Sprintf("LoaderBackendType(%d)", int(t))
	}
}

// ParseBackendType resolves a format name ("json" or "toml", case-insensitive).
//
// Parameters:
//   - s: the format name
//
// Returns:
//   - LoaderBackendType: the backend type
//   - error: ErrUnknownFormat if the name is not recognised
func ParseBackendType(s string) (LoaderBackendType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return BackendTypeJSON, nil
	case "toml":
		return BackendTypeTOML, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownFormat)
	}
}

var (
	// ErrSceneNotFound is returned by Load when no snapshot file exists for the name.
	ErrSceneNotFound = errors.New("loader: scene not found")
	// ErrInvalidName is returned for snapshot names that are empty or contain a path separator.
	ErrInvalidName = errors.New("loader: invalid scene name")
	// ErrUnknownFormat is returned for an unrecognised backend name.
	ErrUnknownFormat = errors.New("loader: unknown format")
)

// DefaultDir is the directory snapshots are stored in when none is configured.
const DefaultDir = "SavedScenes"

// loader is the implementation of the Loader interface.
type loader struct {
	mu sync.RWMutex

	dir string

	sceneCache map[string]SceneData

	backend loaderBackend
}

// Loader defines the public-facing interface for saving and loading scene snapshots.
// It abstracts the file format (JSON, TOML) behind a generic backend, stores one file
// per snapshot in a directory, and caches snapshots it has read or written.
type Loader interface {
	// Save validates and writes a snapshot, creating the directory if needed.
	// An existing snapshot with the same name is overwritten.
	//
	// Parameters:
	//   - name: the snapshot name, without extension
	//   - data: the snapshot to write
	//
	// Returns:
	//   - string: the path written
	//   - error: error if the name or data is invalid or the write fails
	Save(name string, data SceneData) (string, error)

	// Load reads a snapshot by name. The backend extension is optional.
	//
	// Parameters:
	//   - name: the snapshot name
	//
	// Returns:
	//   - SceneData: the decoded snapshot
	//   - error: ErrSceneNotFound if no such file exists, or a decode/validation error
	Load(name string) (SceneData, error)

	// List returns the names of every snapshot in the directory for the active backend,
	// sorted and without extension. A missing directory yields an empty list.
	//
	// Returns:
	//   - []string: the snapshot names
	//   - error: error if the directory cannot be read
	List() ([]string, error)

	// Dir returns the snapshot directory.
	//
	// Returns:
	//   - string: the directory path
	Dir() string

	// Format returns the active backend type.
	//
	// Returns:
	//   - LoaderBackendType: the backend type
	Format() LoaderBackendType
}

var _ Loader = &loader{}

// NewLoader creates a new Loader instance with the specified backend type and options applied.
//
// Parameters:
//   - backendType: the type of loader backend to use (e.g., BackendTypeJSON)
//   - options: a variadic list of LoaderBuilderOption functions to configure the Loader
//
// Returns:
//   - Loader: a new instance of Loader configured with the provided backend and options
func NewLoader(backendType LoaderBackendType, options ...LoaderBuilderOption) Loader {
	l := &loader{
		dir:        DefaultDir,
		sceneCache: make(map[string]SceneData),
	}

	switch backendType {
	case BackendTypeTOML:
		l.backend = newTOMLLoaderBackend()
	default:
		l.backend = newJSONLoaderBackend()
	}

	for _, option := range options {
		option(l)
	}
	return l
}

func (l *loader) Save(name string, data SceneData) (string, error) {
	name, err := l.normalizeName(name)
	if err != nil {
		return "", err
	}
	if err := data.Validate(); err != nil {
		return "", err
	}

	raw, err := l.backend.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to encode %s: %w", name, err)
	}
	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", l.dir, err)
	}
	path := l.path(name)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	l.mu.Lock()
	l.sceneCache[name] = data.clone()
	l.mu.Unlock()

	return path, nil
}

func (l *loader) Load(name string) (SceneData, error) {
	name, err := l.normalizeName(name)
	if err != nil {
		return SceneData{}, err
	}

	l.mu.RLock()
	if cached, ok := l.sceneCache[name]; ok {
		l.mu.RUnlock()
		return cached.clone(), nil
	}
	l.mu.RUnlock()

	path := l.path(name)
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return SceneData{}, fmt.Errorf("%s: %w", path, ErrSceneNotFound)
	}
	if err != nil {
		return SceneData{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	data, err := l.backend.Unmarshal(raw)
	if err != nil {
		return SceneData{}, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	if err := data.Validate(); err != nil {
		return SceneData{}, fmt.Errorf("%s: %w", path, err)
	}

	l.mu.Lock()
	l.sceneCache[name] = data.clone()
	l.mu.Unlock()

	return data, nil
}

func (l *loader) List() ([]string, error) {
	entries, err := os.ReadDir(l.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", l.dir, err)
	}

	ext := l.backend.Extension()
	names := []string{}
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ext) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())))
	}
	slices.Sort(names)
	return names, nil
}

func (l *loader) Dir() string {
	return l.dir
}

func (l *loader) Format() LoaderBackendType {
	if _, ok := l.backend.(*tomlLoaderBackendImpl); ok {
		return BackendTypeTOML
	}
	return BackendTypeJSON
}

// normalizeName strips the backend extension and rejects names that would escape the directory.
func (l *loader) normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if ext := filepath.Ext(name); strings.EqualFold(ext, l.backend.Extension()) {
		name = strings.TrimSuffix(name, ext)
	}
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%q: %w", name, ErrInvalidName)
	}
	return name, nil
}

func (l *loader) path(name string) string {
	return filepath.Join(l.dir, name+l.backend.Extension())
}
