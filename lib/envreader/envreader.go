package envreader

import (
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// EnvReader reads settings from the environment and an optional config file.
// Required keys that are missing are collected in MissingKeys instead of
// failing one at a time.
type EnvReader struct {
	MissingKeys []string
	Errors      bool
	v           *viper.Viper
}

// Option configures an EnvReader.
type Option func(*EnvReader)

// WithPrefix reads KEY from PREFIX_KEY.
func WithPrefix(prefix string) Option {
	return func(r *EnvReader) {
		r.v.SetEnvPrefix(prefix)
	}
}

// WithConfigFile reads defaults from a config file (yaml, json, toml...).
// Environment variables override it.
func WithConfigFile(path string) Option {
	return func(r *EnvReader) {
		if path == "" {
			return
		}
		r.v.SetConfigFile(path)
		if err := r.v.ReadInConfig(); err != nil {
			r.Errors = true
			r.MissingKeys = append(r.MissingKeys, "file at: "+path)
		}
	}
}

func New(opts ...Option) *EnvReader {
	r := &EnvReader{v: viper.New()}
	r.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	r.v.AutomaticEnv()
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *EnvReader) lookup(key string) (string, bool) {
	if r.v == nil {
		r.v = viper.New()
		r.v.AutomaticEnv()
	}
	if !r.v.IsSet(key) {
		return "", false
	}
	return r.v.GetString(key), true
}

func (r *EnvReader) GetEnv(key string) string {
	if value, ok := r.lookup(key); ok {
		return value
	}
	r.Errors = true
	r.MissingKeys = append(r.MissingKeys, key)
	return ""
}
func (r *EnvReader) GetEnvOpt(key string) string {
	value, _ := r.lookup(key)
	return value
}
func (r *EnvReader) GetEnvBool(key string) bool {
	text := r.GetEnv(key)
	if value, err := strconv.ParseBool(text); err == nil {
		return value
	}
	return false
}
func (r *EnvReader) GetEnvBoolOpt(key string) bool {
	text := r.GetEnvOpt(key)
	if value, err := strconv.ParseBool(text); err == nil {
		return value
	}
	return false
}
func (r *EnvReader) GetEnvFloat(key string) float64 {
	text := r.GetEnv(key)
	if value, err := strconv.ParseFloat(text, 64); err == nil {
		return value
	}
	return 0
}
func (r *EnvReader) GetEnvInt(key string) int {
	text := r.GetEnv(key)
	if value, err := strconv.Atoi(text); err == nil {
		return value
	}
	return 0
}

// GetEnvIntOpt returns def when key is unset or not an integer.
func (r *EnvReader) GetEnvIntOpt(key string, def int) int {
	text, ok := r.lookup(key)
	if !ok {
		return def
	}
	if value, err := strconv.Atoi(strings.TrimSpace(text)); err == nil {
		return value
	}
	return def
}

// GetEnvStringSliceOpt returns a list from a config file, or splits a comma
// separated value. Empty items are dropped.
func (r *EnvReader) GetEnvStringSliceOpt(key string) []string {
	if _, ok := r.lookup(key); !ok {
		return nil
	}
	if _, isList := r.v.Get(key).([]interface{}); isList {
		return r.v.GetStringSlice(key)
	}
	text := r.v.GetString(key)
	var items []string
	for _, item := range strings.Split(text, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
