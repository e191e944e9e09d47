package config

import (
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	BaseURL   string
}

type Config struct {
	Port         string
	Debug        bool
	PostgresURL  string
	JWTSecret    string
	JWTTTL       time.Duration
	ZoneCacheTTL time.Duration
	Minio        MinioConfig

	mu         sync.RWMutex
	policeKeys []string
}

// Load reads .env (if present), then binds environment variables and an
// optional config.yaml through viper. The police registration key list is
// kept hot-reloadable: a change to config.yaml is picked up without a
// restart.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env file loaded: %v", err)
	}

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("APP_DEBUG", false)
	v.SetDefault("JWT_TTL_MINUTES", 60)
	v.SetDefault("ZONE_CACHE_TTL_SECONDS", 30)
	v.SetDefault("MINIO_BUCKET", "tourist-guard")
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		log.Debugf("no config file loaded: %v", err)
	}

	cfg := &Config{
		Port:         v.GetString("PORT"),
		Debug:        v.GetBool("APP_DEBUG"),
		PostgresURL:  v.GetString("POSTGRES_URL"),
		JWTSecret:    v.GetString("JWT_SECRET"),
		JWTTTL:       time.Duration(v.GetInt("JWT_TTL_MINUTES")) * time.Minute,
		ZoneCacheTTL: time.Duration(v.GetInt("ZONE_CACHE_TTL_SECONDS")) * time.Second,
		Minio: MinioConfig{
			Endpoint:  v.GetString("MINIO_ENDPOINT"),
			AccessKey: v.GetString("MINIO_ACCESS_KEY"),
			SecretKey: v.GetString("MINIO_SECRET_KEY"),
			Bucket:    v.GetString("MINIO_BUCKET"),
			UseSSL:    v.GetBool("MINIO_USE_SSL"),
			BaseURL:   v.GetString("MINIO_PUBLIC_BASE"),
		},
	}
	cfg.setPoliceKeys(v.GetString("POLICE_REGISTRATION_KEYS"))

	v.OnConfigChange(func(in fsnotify.Event) {
		cfg.setPoliceKeys(v.GetString("POLICE_REGISTRATION_KEYS"))
		log.Info("reloaded police registration keys")
	})
	v.WatchConfig()

	return cfg
}

func (c *Config) setPoliceKeys(raw string) {
	keys := make([]string, 0)
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	c.mu.Lock()
	c.policeKeys = keys
	c.mu.Unlock()
}

// PoliceKeys returns the current registration key allow-list.
func (c *Config) PoliceKeys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, len(c.policeKeys))
	copy(out, c.policeKeys)
	return out
}

// SetPoliceKeys is exposed for tests and admin tooling.
func (c *Config) SetPoliceKeys(keys ...string) {
	c.mu.Lock()
	c.policeKeys = append([]string(nil), keys...)
	c.mu.Unlock()
}
