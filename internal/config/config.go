package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Output         string `yaml:"output"`
	ChapterWorkers int    `yaml:"chapter_workers"`
	KeepFolders    bool   `yaml:"keep_folders"`
	Debug          bool   `yaml:"debug"`

	BaseURL  string `yaml:"base_url"`
	Encoding string `yaml:"encoding"`

	DefaultSort  string `yaml:"default_sort"`
	DefaultGenre string `yaml:"default_genre"`
	DefaultRange string `yaml:"default_range"`
	DefaultList  string `yaml:"default_list"`

	Cookie           string        `yaml:"cookie"`
	CookieFile       string        `yaml:"cookie_file"`
	UserAgent        string        `yaml:"user_agent"`
	Timeout          time.Duration `yaml:"timeout"`
	CloudflareBypass bool          `yaml:"cloudflare_bypass"`
	RateLimit        float64       `yaml:"rate_limit"`

	SkipBroken bool `yaml:"skip_broken"`
}

// Options are CLI overrides. Zero values leave the loaded config untouched.
type Options struct {
	IgnoreConfig     bool
	Debug            bool
	Output           string
	ChapterWorkers   int
	KeepFolders      bool
	BaseURL          string
	Encoding         string
	DefaultSort      string
	DefaultGenre     string
	DefaultRange     string
	DefaultList      string
	Cookie           string
	CookieFile       string
	UserAgent        string
	Timeout          time.Duration
	CloudflareBypass bool
	RateLimit        float64
	SkipBroken       bool
}

const (
	defaultChapterWorkers = 4
	defaultTimeout        = 30 * time.Second
)

func DefaultConfig() *Config {
	return &Config{
		Output:         ".",
		ChapterWorkers: defaultChapterWorkers,
		Timeout:        defaultTimeout,
	}
}

func SaveYAML(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

func loadYAML(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	c := DefaultConfig()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}

	return c, nil
}

// LoadMerged loads the active profile of s, applies opts on top and fills in
// defaults. The returned string describes where the config came from.
func (s *Store) LoadMerged(opts Options) (*Config, string, error) {
	if opts.IgnoreConfig {
		cfg := DefaultConfig()
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "(ignored config)", nil
	}

	activePath, err := s.ActiveConfigPath()
	if err == ErrNoConfig || activePath == "" {
		cfg := DefaultConfig()
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "(default config in memory)\nRun `novelfetch config init` to create an actual config", nil
	}
	if err != nil {
		return nil, "", err
	}

	cfg, err := loadYAML(activePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config %s: %w", activePath, err)
	}

	mergeConfig(cfg, opts)
	normalizeDefaults(cfg)

	return cfg, activePath, nil
}

func mergeConfig(c *Config, o Options) {
	setString(&c.Output, o.Output)
	setString(&c.BaseURL, o.BaseURL)
	setString(&c.Encoding, o.Encoding)
	setString(&c.DefaultSort, o.DefaultSort)
	setString(&c.DefaultGenre, o.DefaultGenre)
	setString(&c.DefaultRange, o.DefaultRange)
	setString(&c.DefaultList, o.DefaultList)
	setString(&c.Cookie, o.Cookie)
	setString(&c.CookieFile, o.CookieFile)
	setString(&c.UserAgent, o.UserAgent)

	if o.ChapterWorkers != 0 {
		c.ChapterWorkers = o.ChapterWorkers
	}
	if o.Timeout != 0 {
		c.Timeout = o.Timeout
	}
	if o.RateLimit != 0 {
		c.RateLimit = o.RateLimit
	}

	c.KeepFolders = c.KeepFolders || o.KeepFolders
	c.Debug = c.Debug || o.Debug
	c.CloudflareBypass = c.CloudflareBypass || o.CloudflareBypass
	c.SkipBroken = c.SkipBroken || o.SkipBroken
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func normalizeDefaults(c *Config) {
	if c.Output == "" {
		c.Output = "."
	}
	if c.ChapterWorkers <= 0 {
		c.ChapterWorkers = defaultChapterWorkers
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
}

func (c *Config) Print(w io.Writer) {
	fmt.Fprintf(w, " -output: %s\n", c.Output)
	fmt.Fprintf(w, " -chapter_workers: %d\n", c.ChapterWorkers)
	fmt.Fprintf(w, " -timeout: %s\n", c.Timeout)
	if c.KeepFolders {
		fmt.Fprintf(w, " -keep_folders: %t\n", c.KeepFolders)
	}
	if c.Debug {
		fmt.Fprintf(w, " -debug: %t\n", c.Debug)
	}
	if c.BaseURL != "" {
		fmt.Fprintf(w, " -base_url: %s\n", c.BaseURL)
	}
	if c.Encoding != "" {
		fmt.Fprintf(w, " -encoding: %s\n", c.Encoding)
	}
	if c.DefaultSort != "" {
		fmt.Fprintf(w, " -sort: %s\n", c.DefaultSort)
	}
	if c.DefaultGenre != "" {
		fmt.Fprintf(w, " -genre: %s\n", c.DefaultGenre)
	}
	if c.DefaultRange != "" {
		fmt.Fprintf(w, " -range: %s\n", c.DefaultRange)
	}
	if c.DefaultList != "" {
		fmt.Fprintf(w, " -list: %s\n", c.DefaultList)
	}
	if c.CookieFile != "" {
		fmt.Fprintf(w, " -cookie_file: %s\n", c.CookieFile)
	}
	if c.UserAgent != "" {
		fmt.Fprintf(w, " -user_agent: %s\n", c.UserAgent)
	}
	if c.CloudflareBypass {
		fmt.Fprintf(w, " -cloudflare_bypass: %t\n", c.CloudflareBypass)
	}
	if c.RateLimit > 0 {
		fmt.Fprintf(w, " -rate_limit: %.2f/s\n", c.RateLimit)
	}
	if c.SkipBroken {
		fmt.Fprintf(w, " -skip_broken: %t\n", c.SkipBroken)
	}
}
