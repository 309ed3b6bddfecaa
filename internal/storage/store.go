package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/raphi011/hookman/internal/config"
	"github.com/raphi011/hookman/internal/hook"
)

// Layout names, relative to the working directory.
const (
	DirName        = ".hookman"
	HooksDirName   = "hooks"
	ConfigFileName = "config.toml"
	HookFileExt    = ".toml"
)

// Storage is the persistence capability used by commands and the apply
// orchestrator.
type Storage interface {
	// Init creates the storage root, the hooks area and a fresh config.
	Init() error
	// IsInitialized reports whether the storage root exists.
	IsInitialized() bool
	// LoadHook returns the stored hook, or an empty hook if none is stored.
	LoadHook(t hook.Type) (*hook.Hook, error)
	// SaveHook replaces the stored command list of h.Type.
	SaveHook(h *hook.Hook) error
	// DeleteHook removes the stored hook. Deleting an absent hook is a no-op.
	DeleteHook(t hook.Type) error
	// ListHooks returns the stored hook types sorted by name.
	ListHooks() ([]hook.Type, error)
	// LoadConfig returns the stored config, or the default if none is stored.
	LoadConfig() (config.Config, error)
	// SaveConfig replaces the stored config.
	SaveConfig(cfg config.Config) error
}

// Paths holds the storage locations for one working directory.
type Paths struct {
	Root   string // .hookman
	Hooks  string // .hookman/hooks
	Config string // .hookman/config.toml
}

// PathsFor returns the storage paths below workDir.
func PathsFor(workDir string) Paths {
	root := filepath.Join(workDir, DirName)
	return Paths{
		Root:   root,
		Hooks:  filepath.Join(root, HooksDirName),
		Config: filepath.Join(root, ConfigFileName),
	}
}

// HookFile returns the file holding hook type t.
func (p Paths) HookFile(t hook.Type) string {
	return filepath.Join(p.Hooks, t.String()+HookFileExt)
}

// TOMLStore stores records as TOML files below a working directory.
type TOMLStore struct {
	paths   Paths
	version string
}

var _ Storage = (*TOMLStore)(nil)

// NewTOMLStore returns a store rooted at workDir. version is written into
// the config record by Init and used as the default config version.
func NewTOMLStore(workDir, version string) *TOMLStore {
	return &TOMLStore{paths: PathsFor(workDir), version: version}
}

// Paths returns the store's file locations.
func (s *TOMLStore) Paths() Paths {
	return s.paths
}

// hookRecord is the on-disk shape of a hook. The hook type is not stored:
// it comes from the file name.
type hookRecord struct {
	Commands []hook.Command `toml:"commands"`
}

func (s *TOMLStore) Init() error {
	if err := os.MkdirAll(s.paths.Root, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", s.paths.Root, err)
	}
	if err := os.MkdirAll(s.paths.Hooks, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", s.paths.Hooks, err)
	}
	return s.SaveConfig(config.Default(s.version))
}

func (s *TOMLStore) IsInitialized() bool {
	info, err := os.Stat(s.paths.Root)
	return err == nil && info.IsDir()
}

func (s *TOMLStore) LoadHook(t hook.Type) (*hook.Hook, error) {
	path := s.paths.HookFile(t)

	var rec hookRecord
	if err := LoadTOML(path, &rec); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return hook.New(t), nil
		}
		var ferr *FormatError
		if errors.As(err, &ferr) {
			return nil, err
		}
		return nil, fmt.Errorf("read hook file %s: %w", path, err)
	}

	// The type always comes from the file name, whatever the body says.
	h := &hook.Hook{Type: t, Commands: rec.Commands}
	if h.Commands == nil {
		h.Commands = []hook.Command{}
	}
	if err := h.Validate(); err != nil {
		return nil, &FormatError{Path: path, Err: err}
	}
	return h, nil
}

func (s *TOMLStore) SaveHook(h *hook.Hook) error {
	if !h.Type.Valid() {
		return fmt.Errorf("save hook: %w", &hook.ParseError{Input: h.Type.String()})
	}
	path := s.paths.HookFile(h.Type)

	rec := hookRecord{Commands: h.Commands}
	if rec.Commands == nil {
		rec.Commands = []hook.Command{}
	}
	if err := SaveTOML(path, hookHeader(h.Type), rec); err != nil {
		return fmt.Errorf("write hook file %s: %w", path, err)
	}
	return nil
}

func (s *TOMLStore) DeleteHook(t hook.Type) error {
	path := s.paths.HookFile(t)
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete hook file %s: %w", path, err)
	}
	return nil
}

func (s *TOMLStore) ListHooks() ([]hook.Type, error) {
	entries, err := os.ReadDir(s.paths.Hooks)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []hook.Type{}, nil
		}
		return nil, fmt.Errorf("read hooks directory %s: %w", s.paths.Hooks, err)
	}

	types := []hook.Type{}
	for _, entry := range entries {
		stem, ok := strings.CutSuffix(entry.Name(), HookFileExt)
		if !ok {
			continue
		}
		// Stat follows symlinks so a linked hook file counts like a plain one.
		info, err := os.Stat(filepath.Join(s.paths.Hooks, entry.Name()))
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		// Unknown hook files are skipped, not reported.
		t, err := hook.ParseType(stem)
		if err != nil {
			continue
		}
		types = append(types, t)
	}

	sort.Slice(types, func(i, j int) bool {
		return types[i].String() < types[j].String()
	})
	return types, nil
}

func (s *TOMLStore) LoadConfig() (config.Config, error) {
	var cfg config.Config
	if err := LoadTOML(s.paths.Config, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config.Default(s.version), nil
		}
		var ferr *FormatError
		if errors.As(err, &ferr) {
			return config.Config{}, err
		}
		return config.Config{}, fmt.Errorf("read config %s: %w", s.paths.Config, err)
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, &FormatError{Path: s.paths.Config, Err: err}
	}
	return cfg, nil
}

func (s *TOMLStore) SaveConfig(cfg config.Config) error {
	if err := SaveTOML(s.paths.Config, configHeader, cfg); err != nil {
		return fmt.Errorf("write config %s: %w", s.paths.Config, err)
	}
	return nil
}

const configHeader = `# hookman configuration
# Written by 'hookman init'. Commit this directory to share hooks.

`

func hookHeader(t hook.Type) string {
	return fmt.Sprintf(`# hookman %s hook
# Commands run in order. Edit with 'hookman add' and 'hookman remove',
# then run 'hookman apply' to install.

`, t)
}
