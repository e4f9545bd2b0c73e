package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config contains runtime configuration values. It is built once at start-up
// and treated as read-only afterwards.
type Config struct {
	SecretName     string
	DLQURL         string
	MessageFields  []string
	MessageTitle   string
	StatusColors   map[string]string
	StatusField    string
	StatusMapping  map[string]string
	RequestTimeout time.Duration
	LogLevel       string
	ListenAddr     string
	LambdaRuntime  bool
}

const (
	defaultMessageFields  = "AlarmName,NewStateValue,NewStateReason,StateChangeTime,Region,AccountId"
	defaultMessageTitle   = "CloudWatch Alarm Triggered"
	defaultStatusField    = "NewStateValue"
	defaultTimeout        = 10 * time.Second
	defaultLogLevel       = "info"
	defaultListenAddr     = ":8080"
	lambdaRuntimeAPIEnv   = "AWS_LAMBDA_RUNTIME_API"
	configFileEnv         = "CONFIG_FILE"
	statusColorsEnv       = "STATUS_COLORS"
	statusMappingEnv      = "STATUS_MAPPING"
	messageFieldsEnv      = "MESSAGE_FIELDS"
	requestTimeoutEnv     = "REQUEST_TIMEOUT"
	messageFieldSeparator = ","
	pairSeparator         = ":"
)

// fileConfig mirrors the environment surface for YAML configuration files.
type fileConfig struct {
	SecretName     string            `yaml:"secret_name"`
	DLQURL         string            `yaml:"dlq_url"`
	MessageFields  *[]string         `yaml:"message_fields"`
	MessageTitle   string            `yaml:"message_title"`
	StatusColors   map[string]string `yaml:"status_colors"`
	StatusField    string            `yaml:"status_field"`
	StatusMapping  map[string]string `yaml:"status_mapping"`
	RequestTimeout time.Duration     `yaml:"request_timeout"`
	LogLevel       string            `yaml:"log_level"`
	ListenAddr     string            `yaml:"listen_addr"`
}

// Load builds a Config from an optional YAML file (CONFIG_FILE) overlaid with
// environment variables. Environment values win over file values.
func Load() (*Config, error) {
	cfg := &Config{
		MessageFields:  splitFields(defaultMessageFields),
		MessageTitle:   defaultMessageTitle,
		StatusColors:   map[string]string{},
		StatusField:    defaultStatusField,
		StatusMapping:  map[string]string{},
		RequestTimeout: defaultTimeout,
		LogLevel:       defaultLogLevel,
		ListenAddr:     defaultListenAddr,
	}

	var errs []string

	if path := os.Getenv(configFileEnv); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, err
		}
	}

	cfg.SecretName = getenvDefault("SECRET_NAME", cfg.SecretName)
	cfg.DLQURL = getenvDefault("DLQ_URL", cfg.DLQURL)
	cfg.MessageTitle = getenvDefault("MESSAGE_TITLE", cfg.MessageTitle)
	cfg.StatusField = getenvDefault("STATUS_FIELD", cfg.StatusField)
	cfg.LogLevel = strings.ToLower(getenvDefault("LOG_LEVEL", cfg.LogLevel))
	cfg.ListenAddr = getenvDefault("LISTEN_ADDR", cfg.ListenAddr)
	cfg.RequestTimeout = parseDurationDefault(requestTimeoutEnv, cfg.RequestTimeout)
	_, cfg.LambdaRuntime = os.LookupEnv(lambdaRuntimeAPIEnv)

	// An explicitly empty MESSAGE_FIELDS disables field rendering.
	if val, ok := os.LookupEnv(messageFieldsEnv); ok {
		cfg.MessageFields = splitFields(val)
	}

	if val := os.Getenv(statusColorsEnv); val != "" {
		colors, err := ParsePairs(val)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", statusColorsEnv, err))
		} else {
			cfg.StatusColors = colors
		}
	}

	if val := os.Getenv(statusMappingEnv); val != "" {
		mapping, err := ParsePairs(val)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", statusMappingEnv, err))
		} else {
			cfg.StatusMapping = mapping
		}
	}

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultTimeout
	}

	errs = append(errs, cfg.validate()...)
	if len(errs) > 0 {
		return nil, errors.New("config validation failed:\n  " + strings.Join(errs, "\n  "))
	}

	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if fc.SecretName != "" {
		c.SecretName = fc.SecretName
	}
	if fc.DLQURL != "" {
		c.DLQURL = fc.DLQURL
	}
	if fc.MessageFields != nil {
		c.MessageFields = cleanFields(*fc.MessageFields)
	}
	if fc.MessageTitle != "" {
		c.MessageTitle = fc.MessageTitle
	}
	if fc.StatusField != "" {
		c.StatusField = fc.StatusField
	}
	if fc.RequestTimeout > 0 {
		c.RequestTimeout = fc.RequestTimeout
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	if fc.ListenAddr != "" {
		c.ListenAddr = fc.ListenAddr
	}

	colors, err := normalizeTable(fc.StatusColors)
	if err != nil {
		return fmt.Errorf("parse config file %s: status_colors: %w", path, err)
	}
	if len(colors) > 0 {
		c.StatusColors = colors
	}

	mapping, err := normalizeTable(fc.StatusMapping)
	if err != nil {
		return fmt.Errorf("parse config file %s: status_mapping: %w", path, err)
	}
	if len(mapping) > 0 {
		c.StatusMapping = mapping
	}

	return nil
}

func (c *Config) validate() []string {
	var errs []string

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.LogLevel] {
		errs = append(errs, fmt.Sprintf("LOG_LEVEL must be one of: debug, info, warn, error (got %q)", c.LogLevel))
	}
	if strings.TrimSpace(c.StatusField) == "" {
		errs = append(errs, "STATUS_FIELD must not be blank")
	}

	return errs
}

// ParsePairs parses a comma-separated list of KEY:VALUE pairs. Keys are
// normalized to upper case with surrounding whitespace removed; values are
// trimmed. Blank entries are ignored, malformed ones are rejected.
func ParsePairs(raw string) (map[string]string, error) {
	table := make(map[string]string)
	for _, pair := range strings.Split(raw, messageFieldSeparator) {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, value, ok := strings.Cut(pair, pairSeparator)
		if !ok {
			return nil, fmt.Errorf("malformed pair %q: expected KEY:VALUE", pair)
		}
		key = normalizeKey(key)
		value = strings.TrimSpace(value)
		if key == "" || value == "" {
			return nil, fmt.Errorf("malformed pair %q: key and value must not be empty", pair)
		}
		table[key] = value
	}
	return table, nil
}

func normalizeTable(in map[string]string) (map[string]string, error) {
	out := make(map[string]string, len(in))
	for k, v := range in {
		key := normalizeKey(k)
		value := strings.TrimSpace(v)
		if key == "" || value == "" {
			return nil, fmt.Errorf("malformed entry %q: key and value must not be empty", k)
		}
		out[key] = value
	}
	return out, nil
}

func normalizeKey(key string) string {
	return strings.ToUpper(strings.TrimSpace(key))
}

func splitFields(raw string) []string {
	return cleanFields(strings.Split(raw, messageFieldSeparator))
}

func cleanFields(fields []string) []string {
	out := make([]string, 0, len(fields))
	for _, field := range fields {
		if field = strings.TrimSpace(field); field != "" {
			out = append(out, field)
		}
	}
	return out
}

// LogAttrs returns a loggable summary of the configuration. The webhook URL
// never appears here; only the secret identifier does.
func (c *Config) LogAttrs() []any {
	return []any{
		"secret_name", c.SecretName,
		"dead_letter_enabled", c.DLQURL != "",
		"message_fields", c.MessageFields,
		"status_field", c.StatusField,
		"status_colors", formatTable(c.StatusColors),
		"status_mapping", formatTable(c.StatusMapping),
	}
}

func formatTable(table map[string]string) string {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+pairSeparator+table[k])
	}
	return strings.Join(pairs, messageFieldSeparator)
}

func getenvDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDurationDefault(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
