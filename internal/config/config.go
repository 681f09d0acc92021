package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Geocoder  GeocoderConfig
	Discovery DiscoveryConfig
	Storage   StorageConfig
	SMTP      SMTPConfig
	Log       LogConfig
	Worker    WorkerConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
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

// GeocoderConfig - настройки клиента обратного геокодирования
type GeocoderConfig struct {
	BaseURL        string
	UserAgent      string
	RequestTimeout time.Duration
	MaxRetries     int
	BackoffBase    time.Duration
	BatchSize      int
	BatchPause     time.Duration
}

// DiscoveryConfig - настройки поисковой выдачи спотов
type DiscoveryConfig struct {
	PageSize             int
	MinSpotSeparation    float64 // метры
	ChangeDebounceWindow time.Duration
}

type StorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	PublicURL string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Enabled  bool
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled            bool
	ConsumerGroup      string
	MaxRetries         int
	SweepInterval      time.Duration
	TournamentInterval time.Duration
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
		Geocoder: GeocoderConfig{
			BaseURL:        viper.GetString("GEOCODER_BASE_URL"),
			UserAgent:      viper.GetString("GEOCODER_USER_AGENT"),
			RequestTimeout: time.Duration(viper.GetInt("GEOCODER_REQUEST_TIMEOUT")) * time.Second,
			MaxRetries:     viper.GetInt("GEOCODER_MAX_RETRIES"),
			BackoffBase:    time.Duration(viper.GetInt("GEOCODER_BACKOFF_BASE_MS")) * time.Millisecond,
			BatchSize:      viper.GetInt("GEOCODER_BATCH_SIZE"),
			BatchPause:     time.Duration(viper.GetInt("GEOCODER_BATCH_PAUSE_MS")) * time.Millisecond,
		},
		Discovery: DiscoveryConfig{
			PageSize:             viper.GetInt("DISCOVERY_PAGE_SIZE"),
			MinSpotSeparation:    viper.GetFloat64("DISCOVERY_MIN_SPOT_SEPARATION"),
			ChangeDebounceWindow: time.Duration(viper.GetInt("DISCOVERY_DEBOUNCE_MS")) * time.Millisecond,
		},
		Storage: StorageConfig{
			Endpoint:  viper.GetString("STORAGE_ENDPOINT"),
			AccessKey: viper.GetString("STORAGE_ACCESS_KEY"),
			SecretKey: viper.GetString("STORAGE_SECRET_KEY"),
			Bucket:    viper.GetString("STORAGE_BUCKET"),
			UseSSL:    viper.GetBool("STORAGE_USE_SSL"),
			PublicURL: viper.GetString("STORAGE_PUBLIC_URL"),
		},
		SMTP: SMTPConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			Username: viper.GetString("SMTP_USERNAME"),
			Password: viper.GetString("SMTP_PASSWORD"),
			From:     viper.GetString("SMTP_FROM"),
			Enabled:  viper.GetBool("SMTP_ENABLED"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:            viper.GetBool("WORKER_ENABLED"),
			ConsumerGroup:      viper.GetString("WORKER_CONSUMER_GROUP"),
			MaxRetries:         viper.GetInt("WORKER_MAX_RETRIES"),
			SweepInterval:      time.Duration(viper.GetInt("WORKER_SWEEP_INTERVAL")) * time.Second,
			TournamentInterval: time.Duration(viper.GetInt("WORKER_TOURNAMENT_INTERVAL")) * time.Second,
		},
	}

	// Set default values if not provided
	if cfg.Geocoder.BaseURL == "" {
		cfg.Geocoder.BaseURL = "https://nominatim.openstreetmap.org"
	}
	if cfg.Geocoder.UserAgent == "" {
		cfg.Geocoder.UserAgent = "skatespot-service/1.0"
	}
	if cfg.Geocoder.RequestTimeout == 0 {
		cfg.Geocoder.RequestTimeout = 5 * time.Second
	}
	if cfg.Geocoder.MaxRetries == 0 {
		cfg.Geocoder.MaxRetries = 3
	}
	if cfg.Geocoder.BackoffBase == 0 {
		cfg.Geocoder.BackoffBase = time.Second
	}
	if cfg.Geocoder.BatchSize == 0 {
		cfg.Geocoder.BatchSize = 5
	}
	if cfg.Geocoder.BatchPause == 0 {
		cfg.Geocoder.BatchPause = time.Second
	}
	if cfg.Discovery.PageSize == 0 {
		cfg.Discovery.PageSize = 10
	}
	if cfg.Discovery.MinSpotSeparation == 0 {
		cfg.Discovery.MinSpotSeparation = 50
	}
	if cfg.Discovery.ChangeDebounceWindow == 0 {
		cfg.Discovery.ChangeDebounceWindow = 250 * time.Millisecond
	}
	if cfg.Worker.ConsumerGroup == "" {
		cfg.Worker.ConsumerGroup = "skatespot-workers"
	}
	if cfg.Worker.MaxRetries == 0 {
		cfg.Worker.MaxRetries = 3
	}
	if cfg.Worker.SweepInterval == 0 {
		cfg.Worker.SweepInterval = 60 * time.Second
	}
	if cfg.Worker.TournamentInterval == 0 {
		cfg.Worker.TournamentInterval = time.Hour
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
