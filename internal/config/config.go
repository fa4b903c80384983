package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Log       LogConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Cache     CacheConfig
	Geocoding GeocodingConfig
	Places    PlacesConfig
	Map       MapConfig
	Clock     ClockConfig
	Worker    WorkerConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type LogConfig struct {
	Level string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	GeocodeCacheTTL time.Duration
}

type GeocodingConfig struct {
	BaseURL        string
	APIKey         string
	RequestTimeout int
}

// PlacesConfig selects and configures the raw-record source.
// Source is either "file" (JSON exports, one file per category) or "postgres".
type PlacesConfig struct {
	Source  string
	DataDir string
}

// MapConfig carries the initial camera state handed to the map collaborator.
type MapConfig struct {
	CenterLng float64
	CenterLat float64
	Zoom      float64
	Pitch     float64
}

// ClockConfig fixes the reference timezone all open/closed evaluation uses.
type ClockConfig struct {
	Timezone        string
	RefreshInterval time.Duration
}

type WorkerConfig struct {
	Enabled bool
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			GeocodeCacheTTL: time.Duration(viper.GetInt("GEOCODE_CACHE_TTL")) * time.Second,
		},
		Geocoding: GeocodingConfig{
			BaseURL:        viper.GetString("GEOCODING_BASE_URL"),
			APIKey:         viper.GetString("GEOCODING_API_KEY"),
			RequestTimeout: viper.GetInt("GEOCODING_REQUEST_TIMEOUT"),
		},
		Places: PlacesConfig{
			Source:  viper.GetString("PLACES_SOURCE"),
			DataDir: viper.GetString("PLACES_DATA_DIR"),
		},
		Map: MapConfig{
			CenterLng: viper.GetFloat64("MAP_CENTER_LNG"),
			CenterLat: viper.GetFloat64("MAP_CENTER_LAT"),
			Zoom:      viper.GetFloat64("MAP_ZOOM"),
			Pitch:     viper.GetFloat64("MAP_PITCH"),
		},
		Clock: ClockConfig{
			Timezone:        viper.GetString("CLOCK_TIMEZONE"),
			RefreshInterval: time.Duration(viper.GetInt("CLOCK_REFRESH_INTERVAL")) * time.Second,
		},
		Worker: WorkerConfig{
			Enabled: viper.GetBool("WORKER_ENABLED"),
		},
	}

	// Set default values if not provided
	if cfg.Geocoding.BaseURL == "" {
		cfg.Geocoding.BaseURL = "https://maps.googleapis.com/maps/api/geocode/json"
	}
	if cfg.Geocoding.RequestTimeout == 0 {
		cfg.Geocoding.RequestTimeout = 10
	}
	if cfg.Cache.GeocodeCacheTTL == 0 {
		cfg.Cache.GeocodeCacheTTL = 24 * time.Hour
	}
	if cfg.Places.Source == "" {
		cfg.Places.Source = "file"
	}
	if cfg.Places.DataDir == "" {
		cfg.Places.DataDir = "./places"
	}
	if cfg.Map.CenterLng == 0 && cfg.Map.CenterLat == 0 {
		// Kyiv city centre
		cfg.Map.CenterLng = 30.52151862352623
		cfg.Map.CenterLat = 50.44238028491744
	}
	if cfg.Map.Zoom == 0 {
		cfg.Map.Zoom = 12
	}
	if cfg.Clock.Timezone == "" {
		cfg.Clock.Timezone = "Europe/Kyiv"
	}
	if cfg.Clock.RefreshInterval == 0 {
		cfg.Clock.RefreshInterval = time.Minute
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
