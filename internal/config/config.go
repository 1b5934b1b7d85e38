package config

import (
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/vango-dev/animate/internal/errors"
	"github.com/vango-dev/animate/pkg/animate"
	"github.com/vango-dev/animate/pkg/settings"
)

const (
	// ConfigFileName is the name of the project file.
	ConfigFileName = "animate.json"

	// DefaultPort is the default server port.
	DefaultPort = 8080

	// DefaultHost is the default bind host.
	DefaultHost = "localhost"

	// DefaultSettingsFile is the settings file used when neither a file nor
	// an S3 object is configured and the file exists.
	DefaultSettingsFile = "settings.json"

	// DefaultPollInterval is how often the settings source is checked for
	// changes in dev mode.
	DefaultPollInterval = "1s"

	// DefaultMetricsNamespace prefixes every exported metric.
	DefaultMetricsNamespace = "animate"
)

// Config represents animate.json.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Server contains HTTP server configuration.
	Server ServerConfig `json:"server,omitempty"`

	// Settings locates the global animation settings.
	Settings SettingsConfig `json:"settings,omitempty"`

	// Dev contains live reload configuration.
	Dev DevConfig `json:"dev,omitempty"`

	// Metrics contains Prometheus configuration.
	Metrics MetricsConfig `json:"metrics,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty"`

	// Title is the demo page title.
	Title string `json:"title,omitempty"`

	// Pretty enables indented HTML.
	Pretty bool `json:"pretty,omitempty"`

	// TrustedProxies lists proxies whose forwarding headers are trusted.
	TrustedProxies []string `json:"trustedProxies,omitempty"`
}

// SettingsConfig selects the settings source. At most one of File and S3
// may be set; with neither, Values are used.
type SettingsConfig struct {
	// File is a JSON settings file, relative to the project directory.
	File string `json:"file,omitempty"`

	// S3 reads the settings from an S3 object.
	S3 *S3Config `json:"s3,omitempty"`

	// Values are inline settings.
	Values settings.Values `json:"values,omitempty"`
}

// S3Config locates a settings object in S3.
type S3Config struct {
	Bucket    string `json:"bucket"`
	Key       string `json:"key"`
	Region    string `json:"region,omitempty"`
	Endpoint  string `json:"endpoint,omitempty"`
	PathStyle bool   `json:"pathStyle,omitempty"`
}

// DevConfig contains live reload settings.
type DevConfig struct {
	// Reload enables the settings watcher and reload websocket.
	Reload bool `json:"reload,omitempty"`

	// PollInterval is how often the settings source is checked (e.g. "1s").
	PollInterval string `json:"pollInterval,omitempty"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	// Disabled turns off /metrics and request instrumentation.
	Disabled bool `json:"disabled,omitempty"`

	// Namespace prefixes metric names.
	Namespace string `json:"namespace,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Host: DefaultHost,
			Port: DefaultPort,
		},
		Dev: DevConfig{
			PollInterval: DefaultPollInterval,
		},
		Metrics: MetricsConfig{
			Namespace: DefaultMetricsNamespace,
		},
	}
}

// Load reads animate.json from dir.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E141").
				WithDetail("No animate.json found in " + filepath.Dir(path)).
				WithSuggestion("Run 'animate init' to create one")
		}
		return nil, errors.New("E120").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E120").
			WithDetail("Failed to parse animate.json: " + err.Error()).
			WithSuggestion("Check that animate.json is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E120").Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E120").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Dev.PollInterval == "" {
		c.Dev.PollInterval = DefaultPollInterval
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultMetricsNamespace
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.New("E122").
			WithField("server.port", c.Server.Port).
			WithDetail("Port must be between 0 and 65535")
	}
	if s3 := c.Settings.S3; s3 != nil {
		if s3.Bucket == "" || s3.Key == "" {
			return errors.New("E122").
				WithField("settings.s3", s3.Bucket+"/"+s3.Key).
				WithDetail("An S3 settings source needs both bucket and key")
		}
		if c.Settings.File != "" {
			return errors.New("E122").
				WithField("settings", c.Settings.File).
				WithDetail("Set either settings.file or settings.s3, not both")
		}
	}
	if _, err := c.PollInterval(); err != nil {
		return err
	}
	store, err := settings.New(c.Settings.Values)
	if err != nil {
		return err
	}
	return animate.ValidateSettings(store)
}

// Address returns the listen address.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// URL returns the base URL of the server.
func (c *Config) URL() string {
	return "http://" + c.Address()
}

// PollInterval parses Dev.PollInterval.
func (c *Config) PollInterval() (time.Duration, error) {
	raw := c.Dev.PollInterval
	if raw == "" {
		raw = DefaultPollInterval
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, errors.New("E122").
			WithField("dev.pollInterval", raw).
			WithDetail("Poll interval must be a positive duration such as \"500ms\" or \"2s\"")
	}
	return d, nil
}

// SettingsPath returns the absolute path of the settings file, or "" when
// no file is in use. Without explicit configuration the default file is
// used if it exists next to animate.json.
func (c *Config) SettingsPath() string {
	path := c.Settings.File
	if path == "" {
		if c.Settings.S3 != nil || c.Settings.Values != nil {
			return ""
		}
		candidate := filepath.Join(c.Dir(), DefaultSettingsFile)
		if _, err := os.Stat(candidate); err != nil {
			return ""
		}
		return candidate
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Dir(), path)
}

// Source returns the configured settings source.
func (c *Config) Source() settings.Source {
	if s3 := c.Settings.S3; s3 != nil {
		return settings.S3Source{
			Client: settings.NewS3Client(settings.S3ClientOptions{
				Region:    s3.Region,
				Endpoint:  s3.Endpoint,
				PathStyle: s3.PathStyle,
			}),
			Bucket: s3.Bucket,
			Key:    s3.Key,
		}
	}
	if path := c.SettingsPath(); path != "" {
		return settings.FileSource{Path: path}
	}
	return settings.StaticSource{Values: c.Settings.Values}
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing animate.json, or an error if not found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E141").
				WithDetail("No animate.json found in " + startDir + " or any parent directory").
				WithSuggestion("Run 'animate init' to create one")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the nearest animate.json at or
// above the working directory.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return nil, err
	}

	return Load(root)
}
