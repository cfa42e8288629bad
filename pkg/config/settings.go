package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/vendorlink/pkg/errors"
)

const (
	// EnvPrefix marks environment variables read as settings.
	// VENDORLINK_PROJECT_VENDOR_DIR maps to project.vendor_dir.
	EnvPrefix = "VENDORLINK_"

	// UserConfigFile is searched for under the XDG config directories
	UserConfigFile = "vendorlink/config.toml"
)

// ProjectConfigNames are tried, in order, in the project root
var ProjectConfigNames = []string{"vendorlink.toml", ".vendorlink.toml"}

// Settings is the tool configuration after all layers are merged
type Settings struct {
	Project ProjectSettings `koanf:"project"`
	Metrics MetricsSettings `koanf:"metrics"`
	Watch   WatchSettings   `koanf:"watch"`
}

// ProjectSettings locates the project's files. Relative paths are resolved
// against Root, which is always absolute after loading.
type ProjectSettings struct {
	Root      string `koanf:"root"`
	Manifest  string `koanf:"manifest"`
	VendorDir string `koanf:"vendor_dir"`
	Installed string `koanf:"installed"`
	ExtraKey  string `koanf:"extra_key"`
	RulesFile string `koanf:"rules_file"`
}

type MetricsSettings struct {
	Textfile string `koanf:"textfile"`
}

type WatchSettings struct {
	Debounce time.Duration `koanf:"debounce"`
}

// LoadOptions carries the command-line side of configuration
type LoadOptions struct {
	// Root overrides project.root when set
	Root string
	// ConfigFile replaces the project config search; it must exist
	ConfigFile string
	// Overrides are dotted keys applied last
	Overrides map[string]interface{}
}

// LoadSettings merges, lowest priority first: embedded defaults, the user
// config file, the project config file, environment variables and overrides.
func LoadSettings(opts LoadOptions) (*Settings, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config if it exists
	if path := userConfigPath(); path != "" {
		if err := loadTOMLFile(k, path); err != nil {
			return nil, err
		}
	}

	// 3. Project config
	root := opts.Root
	if root == "" {
		root = os.Getenv(EnvPrefix + "PROJECT_ROOT")
	}
	if root == "" {
		root = k.String("project.root")
	}
	projectConfig := opts.ConfigFile
	if projectConfig != "" {
		if _, err := os.Stat(projectConfig); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file not found: %s", projectConfig)
		}
	} else {
		projectConfig = findProjectConfig(root)
	}
	if projectConfig != "" {
		if err := loadTOMLFile(k, projectConfig); err != nil {
			return nil, err
		}
	}

	// 4. Env vars
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 5. Flag overrides
	overrides := make(map[string]interface{}, len(opts.Overrides)+1)
	for key, value := range opts.Overrides {
		overrides[key] = value
	}
	if opts.Root != "" {
		overrides["project.root"] = opts.Root
	}
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	// 6. Unmarshal
	var s Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &s,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &s, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := s.validate(); err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(s.Project.Root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigInvalid, "invalid project root: %s", s.Project.Root)
	}
	s.Project.Root = abs
	return &s, nil
}

func (s *Settings) validate() error {
	required := map[string]string{
		"project.root":       s.Project.Root,
		"project.manifest":   s.Project.Manifest,
		"project.vendor_dir": s.Project.VendorDir,
		"project.extra_key":  s.Project.ExtraKey,
	}
	for key, value := range required {
		if strings.TrimSpace(value) == "" {
			return errors.Newf(errors.ErrConfigInvalid, "setting %s must not be empty", key).
				WithDetail("key", key)
		}
	}
	if s.Watch.Debounce <= 0 {
		return errors.Newf(errors.ErrConfigInvalid, "watch.debounce must be positive, got %s", s.Watch.Debounce).
			WithDetail("key", "watch.debounce")
	}
	return nil
}

// Resolve makes p absolute relative to the project root
func (s *Settings) Resolve(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(s.Project.Root, p)
}

// ManifestPath returns the absolute manifest location
func (s *Settings) ManifestPath() string {
	return s.Resolve(s.Project.Manifest)
}

func loadTOMLFile(k *koanf.Koanf, path string) error {
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
			WithDetail("path", path)
	}
	return nil
}

func findProjectConfig(root string) string {
	for _, name := range ProjectConfigNames {
		path := filepath.Join(root, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// userConfigPath returns the first user config file found, or ""
func userConfigPath() string {
	xdg.Reload()
	path, err := xdg.SearchConfigFile(UserConfigFile)
	if err != nil {
		return ""
	}
	return path
}
