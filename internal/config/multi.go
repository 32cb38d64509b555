package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	appName      = "novelfetch"
	DefaultLabel = "Default"
)

var (
	ErrNoConfig   = errors.New("no config selected")
	ErrEmptyLabel = errors.New("label cannot be empty")
)

// Store keeps named YAML profiles under Root/configs and the active label in
// Root/current_config.
type Store struct {
	Root string
}

func NewStore(root string) *Store {
	return &Store{Root: root}
}

// DefaultStore is rooted at the per-user config directory.
func DefaultStore() *Store {
	return NewStore(ConfigRoot())
}

func ConfigRoot() string {
	// Windows
	if appdata := os.Getenv("APPDATA"); appdata != "" {
		return filepath.Join(appdata, appName)
	}

	// Linux/macOS XDG
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}

	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", appName)
}

func (s *Store) ConfigsDir() string {
	return filepath.Join(s.Root, "configs")
}

func (s *Store) CurrentLabelFile() string {
	return filepath.Join(s.Root, "current_config")
}

// PathByLabel is the file a profile label is stored in, whether or not it
// exists yet.
func (s *Store) PathByLabel(label string) string {
	return filepath.Join(s.ConfigsDir(), label+".yaml")
}

func (s *Store) ensureDirs() error {
	return os.MkdirAll(s.ConfigsDir(), 0o755)
}

func (s *Store) writeCurrent(label string) error {
	return os.WriteFile(s.CurrentLabelFile(), []byte(label), 0o644)
}

func validLabel(label string) error {
	if strings.TrimSpace(label) == "" {
		return ErrEmptyLabel
	}
	if strings.ContainsAny(label, `/\`) || label == "." || label == ".." {
		return fmt.Errorf("invalid label %q", label)
	}
	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (s *Store) CurrentLabel() (string, error) {
	if err := s.ensureDirs(); err != nil {
		return "", err
	}

	b, err := os.ReadFile(s.CurrentLabelFile())
	if os.IsNotExist(err) {
		return "", ErrNoConfig
	}
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(b)), nil
}

func (s *Store) ActiveConfigPath() (string, error) {
	label, err := s.CurrentLabel()
	if err != nil && err != ErrNoConfig {
		return "", err
	}
	if label == "" {
		return "", ErrNoConfig
	}

	return s.PathByLabel(label), nil
}

type ConfigInfo struct {
	Label  string
	Path   string
	Active bool
}

func (s *Store) ListConfigs() ([]ConfigInfo, error) {
	if err := s.ensureDirs(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.ConfigsDir())
	if err != nil {
		return nil, err
	}

	activeLabel, _ := s.CurrentLabel()
	var out []ConfigInfo

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".yaml") {
			continue
		}

		label := strings.TrimSuffix(name, ".yaml")
		out = append(out, ConfigInfo{
			Label:  label,
			Path:   filepath.Join(s.ConfigsDir(), name),
			Active: label == activeLabel,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out, nil
}

func (s *Store) SwitchConfig(label string) error {
	if err := validLabel(label); err != nil {
		return err
	}
	if err := s.ensureDirs(); err != nil {
		return err
	}

	if !exists(s.PathByLabel(label)) {
		return fmt.Errorf("config %q does not exist", label)
	}

	return s.writeCurrent(label)
}

// AddConfig copies srcPath into the store as label after checking it parses.
func (s *Store) AddConfig(label, srcPath string) error {
	if err := validLabel(label); err != nil {
		return err
	}
	if err := s.ensureDirs(); err != nil {
		return err
	}

	dst := s.PathByLabel(label)
	if exists(dst) {
		return fmt.Errorf("config %q already exists", label)
	}

	if _, err := loadYAML(srcPath); err != nil {
		return fmt.Errorf("read %s: %w", srcPath, err)
	}

	raw, err := os.ReadFile(srcPath)
	if err != nil {
		return err
	}

	return os.WriteFile(dst, raw, 0o644)
}

func (s *Store) CreateEmptyConfig(label string) (string, error) {
	if err := validLabel(label); err != nil {
		return "", err
	}
	if err := s.ensureDirs(); err != nil {
		return "", err
	}

	path := s.PathByLabel(label)
	if exists(path) {
		return "", fmt.Errorf("config %q already exists", label)
	}

	if err := SaveYAML(DefaultConfig(), path); err != nil {
		return "", err
	}

	return path, nil
}

func (s *Store) RenameConfig(oldLabel, newLabel string) error {
	if err := validLabel(newLabel); err != nil {
		return err
	}
	if err := s.ensureDirs(); err != nil {
		return err
	}

	oldPath := s.PathByLabel(oldLabel)
	newPath := s.PathByLabel(newLabel)

	if !exists(oldPath) {
		return fmt.Errorf("config %q does not exist", oldLabel)
	}
	if exists(newPath) {
		return fmt.Errorf("config %q already exists", newLabel)
	}

	if err := os.Rename(oldPath, newPath); err != nil {
		return err
	}

	if active, _ := s.CurrentLabel(); active == oldLabel {
		return s.writeCurrent(newLabel)
	}

	return nil
}

// RemoveConfig deletes a profile. Removing the active profile switches back
// to Default, which itself can never be removed.
func (s *Store) RemoveConfig(label string, w io.Writer) error {
	if err := validLabel(label); err != nil {
		return err
	}
	if label == DefaultLabel {
		return errors.New("cannot remove the Default config")
	}
	if err := s.ensureDirs(); err != nil {
		return err
	}

	path := s.PathByLabel(label)
	if !exists(path) {
		return fmt.Errorf("config %q does not exist", label)
	}

	if active, _ := s.CurrentLabel(); active == label {
		if err := s.SwitchConfig(DefaultLabel); err != nil {
			return fmt.Errorf("failed switching to Default: %w", err)
		}
		fmt.Fprintln(w, "Fallback switched to: Default")
	}

	return os.Remove(path)
}

// InitDefaultConfig creates Default.yaml and selects it. It returns
// os.ErrExist, together with the path, when the file is already there.
func (s *Store) InitDefaultConfig() (string, error) {
	if err := s.ensureDirs(); err != nil {
		return "", err
	}

	defPath := s.PathByLabel(DefaultLabel)
	if exists(defPath) {
		if err := s.writeCurrent(DefaultLabel); err != nil {
			return "", err
		}
		return defPath, os.ErrExist
	}

	if err := SaveYAML(DefaultConfig(), defPath); err != nil {
		return "", err
	}

	return defPath, s.writeCurrent(DefaultLabel)
}

// ResetConfig overwrites a profile with the defaults.
func (s *Store) ResetConfig(label string) (string, error) {
	if err := validLabel(label); err != nil {
		return "", err
	}

	path := s.PathByLabel(label)
	if !exists(path) {
		return "", fmt.Errorf("config %q does not exist", label)
	}

	return path, SaveYAML(DefaultConfig(), path)
}
