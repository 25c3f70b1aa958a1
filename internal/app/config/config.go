package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceHost string
	ServicePort int
	// Название сайта для шорткода [blog-title]
	SiteName string
	// Таблица лицензий: локальный TOML файл и/или объект в MinIO
	CatalogPath   string
	CatalogObject string
	JWT           JWTConfig
	Redis         RedisConfig
	MinIO         MinIOConfig
}

type JWTConfig struct {
	Token         string
	ExpiresIn     time.Duration
	SigningMethod jwt.SigningMethod
}

type RedisConfig struct {
	Host        string
	Password    string
	Port        int
	User        string
	DialTimeout time.Duration
	ReadTimeout time.Duration
}

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Enabled сообщает, настроено ли объектное хранилище
func (m MinIOConfig) Enabled() bool {
	return m.Endpoint != "" && m.Bucket != ""
}

const (
	envRedisHost = "REDIS_HOST"
	envRedisPort = "REDIS_PORT"
	envRedisUser = "REDIS_USER"
	envRedisPass = "REDIS_PASSWORD"

	envMinIOEndpoint  = "MINIO_ENDPOINT"
	envMinIOAccessKey = "MINIO_ACCESS_KEY"
	envMinIOSecretKey = "MINIO_SECRET_KEY"
	envMinIOBucket    = "MINIO_BUCKET"
	envMinIOUseSSL    = "MINIO_USE_SSL"

	envJWTSecret = "JWT_SECRET"

	defaultSiteName = "My Blog"
)

func NewConfig() (*Config, error) {
	var err error

	configName := "config"
	_ = godotenv.Load()
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	viper.SetConfigName(configName)
	viper.SetConfigType("toml")
	viper.AddConfigPath("config")
	viper.AddConfigPath(".")
	viper.WatchConfig()

	err = viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = viper.Unmarshal(cfg)
	if err != nil {
		return nil, err
	}

	if err = cfg.applyEnv(); err != nil {
		return nil, err
	}

	log.Info("config parsed")

	return cfg, nil
}

// applyEnv дополняет конфиг значениями из окружения
func (cfg *Config) applyEnv() error {
	var err error

	if cfg.SiteName == "" {
		cfg.SiteName = defaultSiteName
	}

	// JWT: секрет из env, остальное фиксировано
	secret := os.Getenv(envJWTSecret)
	if secret == "" {
		secret = cfg.JWT.Token
	}
	if secret == "" {
		return fmt.Errorf("jwt secret is empty: set %s", envJWTSecret)
	}
	cfg.JWT = JWTConfig{
		Token:         secret,
		ExpiresIn:     time.Hour,
		SigningMethod: jwt.SigningMethodHS256,
	}

	// инициализация Redis конфигурации из env
	if host := os.Getenv(envRedisHost); host != "" {
		cfg.Redis.Host = host
	}
	if port := os.Getenv(envRedisPort); port != "" {
		cfg.Redis.Port, err = strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("redis port must be int value: %w", err)
		}
	}
	if pass := os.Getenv(envRedisPass); pass != "" {
		cfg.Redis.Password = pass
	}
	if user := os.Getenv(envRedisUser); user != "" {
		cfg.Redis.User = user
	}
	cfg.Redis.DialTimeout = 10 * time.Second
	cfg.Redis.ReadTimeout = 10 * time.Second

	// MinIO опционален
	if endpoint := os.Getenv(envMinIOEndpoint); endpoint != "" {
		cfg.MinIO.Endpoint = endpoint
	}
	if key := os.Getenv(envMinIOAccessKey); key != "" {
		cfg.MinIO.AccessKey = key
	}
	if secretKey := os.Getenv(envMinIOSecretKey); secretKey != "" {
		cfg.MinIO.SecretKey = secretKey
	}
	if bucket := os.Getenv(envMinIOBucket); bucket != "" {
		cfg.MinIO.Bucket = bucket
	}
	if useSSL := os.Getenv(envMinIOUseSSL); useSSL != "" {
		cfg.MinIO.UseSSL, err = strconv.ParseBool(useSSL)
		if err != nil {
			return fmt.Errorf("minio use_ssl must be bool value: %w", err)
		}
	}

	return nil
}
