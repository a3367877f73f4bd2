package config

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/kintelligence/strawberry-cookie-tools/internal/domain"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	envPrefix  = "SCT"

	rootKey         = "root"
	commandFileKey  = "command_file"
	sessionDirKey   = "session_dir"
	pollIntervalKey = "poll_interval"
	tickIntervalKey = "tick_interval"
	handoffKey      = "handoff"
	logLevelKey     = "log_level"

	// LogLevelFlag is the command line flag that overrides log_level.
	LogLevelFlag = "log-level"

	defaultRootDir      = "Kintelligence/Plugin"
	defaultCommandFile  = "StrawberryCookieTools.txt"
	defaultSessionDir   = "StrawberryCookieTools"
	defaultPollInterval = 200 * time.Millisecond
	defaultTickInterval = 50 * time.Millisecond
	defaultLogLevel     = "info"
	configFileName      = configName + "." + configType
)

type Config struct {
	Root         string
	CommandFile  string
	SessionDir   string
	PollInterval time.Duration
	TickInterval time.Duration
	Handoff      domain.HandoffMode
	LogLevel     slog.Level
	// ConfigFile is the file the values were read from, empty when only
	// defaults and environment were used.
	ConfigFile string
}

// ConfigPath returns where `config init` writes and Load looks for config.toml.
func (c Config) ConfigPath() string {
	return filepath.Join(c.Root, configFileName)
}

// Load resolves configuration from defaults, an optional config.toml under the
// root directory and SCT_* environment variables, in increasing precedence.
func Load(v *viper.Viper, fs afero.Fs, homeDir string) (Config, error) {
	if v == nil {
		v = viper.New()
	}
	if fs != nil {
		v.SetFs(fs)
	}
	if strings.TrimSpace(homeDir) == "" {
		return Config{}, errors.New("home directory is empty")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(rootKey, filepath.Join(homeDir, defaultRootDir))
	v.SetDefault(commandFileKey, "")
	v.SetDefault(sessionDirKey, "")
	v.SetDefault(pollIntervalKey, defaultPollInterval)
	v.SetDefault(tickIntervalKey, defaultTickInterval)
	v.SetDefault(handoffKey, string(domain.HandoffTruncate))
	v.SetDefault(logLevelKey, defaultLogLevel)

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(v.GetString(rootKey))

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (Config, error) {
	root := strings.TrimSpace(v.GetString(rootKey))
	if root == "" {
		return Config{}, errors.New("root directory is empty")
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return Config{}, fmt.Errorf("resolve root directory: %w", err)
	}

	cfg := Config{
		Root:         filepath.Clean(root),
		CommandFile:  resolvePath(root, v.GetString(commandFileKey), defaultCommandFile),
		SessionDir:   resolvePath(root, v.GetString(sessionDirKey), defaultSessionDir),
		PollInterval: v.GetDuration(pollIntervalKey),
		TickInterval: v.GetDuration(tickIntervalKey),
		Handoff:      domain.HandoffMode(strings.ToLower(strings.TrimSpace(v.GetString(handoffKey)))),
		ConfigFile:   v.ConfigFileUsed(),
	}

	if cfg.PollInterval <= 0 {
		return Config{}, fmt.Errorf("invalid %s %q", pollIntervalKey, v.GetString(pollIntervalKey))
	}
	if cfg.TickInterval <= 0 {
		return Config{}, fmt.Errorf("invalid %s %q", tickIntervalKey, v.GetString(tickIntervalKey))
	}
	if !cfg.Handoff.Valid() {
		return Config{}, fmt.Errorf("unsupported %s %q", handoffKey, cfg.Handoff)
	}
	level, err := LogLevel(v)
	if err != nil {
		return Config{}, err
	}
	cfg.LogLevel = level

	return cfg, nil
}

// BindLogLevelFlag lets a --log-level flag take precedence over the config
// file and SCT_LOG_LEVEL once the flag has been set.
func BindLogLevelFlag(v *viper.Viper, flags *pflag.FlagSet) error {
	flag := flags.Lookup(LogLevelFlag)
	if flag == nil {
		return fmt.Errorf("flag --%s is not defined", LogLevelFlag)
	}

	return v.BindPFlag(logLevelKey, flag)
}

// LogLevel resolves log_level from every source viper knows about, flags
// included.
func LogLevel(v *viper.Viper) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString(logLevelKey))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid %s: %w", logLevelKey, err)
	}

	return level, nil
}

func resolvePath(root, value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		value = fallback
	}
	if !filepath.IsAbs(value) {
		value = filepath.Join(root, value)
	}

	return filepath.Clean(value)
}

// Watch re-reads the config file whenever it changes and hands the new values
// to onChange. It is a no-op when no config file was loaded.
func Watch(v *viper.Viper, logger *slog.Logger, onChange func(Config)) {
	if v.ConfigFileUsed() == "" {
		return
	}

	v.OnConfigChange(func(event fsnotify.Event) {
		if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
			return
		}

		cfg, err := fromViper(v)
		if err != nil {
			logger.Error("error reloading config", "file", event.Name, "error", err)
			return
		}
		logger.Info("config reloaded", "file", event.Name)
		onChange(cfg)
	})
	v.WatchConfig()
}
