package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig    `mapstructure:"server"`
	Environment string          `mapstructure:"environment"`
	DB          DBConfig        `mapstructure:"database"`
	JWT         JWTConfig       `mapstructure:"jwt"`
	Admin       AdminConfig     `mapstructure:"admin"`
	Supabase    SupabaseConfig  `mapstructure:"supabase"`
	Cookie      CookieConfig    `mapstructure:"cookie"`
	RateLimit   RateLimitConfig `mapstructure:"ratelimit"`
	Log         LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type DBConfig struct {
	URL string `mapstructure:"url"`
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
}

// AdminConfig holds the single admin credential pair. Password may be a
// bcrypt hash or a plain value.
type AdminConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// SupabaseConfig points at the REST database service used for leads.
type SupabaseConfig struct {
	URL            string `mapstructure:"url"`
	ServiceRoleKey string `mapstructure:"service_role_key"`
}

type CookieConfig struct {
	Secure bool `mapstructure:"secure"`
}

type RateLimitConfig struct {
	Backend  string        `mapstructure:"backend"`
	Attempts int           `mapstructure:"attempts"`
	Window   time.Duration `mapstructure:"window"`
}

type LogConfig struct {
	Level   string `mapstructure:"level"`
	Console bool   `mapstructure:"console"`
}

var defaults = map[string]any{
	"server.addr":               ":8080",
	"environment":               "unknown",
	"database.url":              "",
	"jwt.secret":                "",
	"admin.username":            "",
	"admin.password":            "",
	"supabase.url":              "",
	"supabase.service_role_key": "",
	"cookie.secure":             false,
	"ratelimit.backend":         "memory",
	"ratelimit.attempts":        5,
	"ratelimit.window":          time.Minute,
	"log.level":                 "info",
	"log.console":               false,
}

// Load reads configs/settings.yml (optional) and overlays the environment.
// Every key has a default so AutomaticEnv can resolve it, e.g. database.url
// from DATABASE_URL.
func Load() (*Config, error) {
	return LoadFrom("./configs", "/configs")
}

func LoadFrom(paths ...string) (*Config, error) {
	v := viper.New()
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName("settings")
	v.SetConfigType("yml")

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
