package config

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env            string `yaml:"env" env-default:"local"`
	HTTPServer     `yaml:"http_server"`
	PostgresServer `yaml:"postgres_server"`
	Minio          Minio  `yaml:"minio"`
	Upload         Upload `yaml:"upload"`
}

type HTTPServer struct {
	Address                 string        `yaml:"address" env-default:"localhost:8085"`
	ReadTimeout             time.Duration `yaml:"read_timeout" env-default:"5s"`
	WriteTimeout            time.Duration `yaml:"write_timeout" env-default:"30s"`
	IdleTimeout             time.Duration `yaml:"idle_timeout" env-default:"60s"`
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout" env-default:"10s"`
}

type PostgresServer struct {
	Host         string        `yaml:"host" env-default:"localhost"`
	Port         int           `yaml:"port" env-default:"5432"`
	Username     string        `yaml:"username" env-default:"postgres"`
	DBname       string        `yaml:"db_name" env-default:"exam"`
	SSLmode      string        `yaml:"ssl_mode" env-default:"disable"`
	MaxOpenConns int           `yaml:"max_open_conns" env-default:"100"`
	MaxIdleConns int           `yaml:"max_idle_conns" env-default:"2"`
	MaxLifetime  time.Duration `yaml:"max_lifetime" env-default:"1h"`
	DriverName   string        `yaml:"driver_name" env-default:"postgres"`
	Migrate      bool          `yaml:"migrate" env-default:"true"`
}

type Minio struct {
	Endpoint  string `yaml:"endpoint" env-default:"localhost:9000"`
	Bucket    string `yaml:"bucket" env-default:"exam"`
	Region    string `yaml:"region" env-default:"us-east-1"`
	UseSSL    bool   `yaml:"use_ssl" env-default:"false"`
	PublicURL string `yaml:"public_url"`
}

// Upload limits what the banner image upload accepts.
type Upload struct {
	MaxSize        int64    `yaml:"max_size" env-default:"5242880"`
	AllowedTypes   []string `yaml:"allowed_types" env-default:"image/jpeg,image/png,image/gif,image/webp"`
	DangerousTypes []string `yaml:"dangerous_types" env-default:"image/svg+xml,image/x-icon"`
}

type Secret struct {
	PostgresPassword string `env:"DB_PASSWORD" env-required:"true"`
	MinioAccessKey   string `env:"MINIO_ACCESS_KEY" env-required:"true"`
	MinioSecretKey   string `env:"MINIO_SECRET_KEY" env-required:"true"`
}

var ErrConfigPathEmpty = errors.New("config path is empty")

func MustLoad() (*Config, *Secret) {
	configPath := fetchConfigPath()
	if configPath == "" {
		log.Fatal(ErrConfigPathEmpty)
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatal(err)
	}

	scr, err := LoadSecret()
	if err != nil {
		log.Fatal(err)
	}

	return cfg, scr
}

func Load(configPath string) (*Config, error) {
	const op = "config.Load"

	if configPath == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrConfigPathEmpty)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: config file %s does not exist", op, configPath)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("%s: cannot read config: %w", op, err)
	}

	return &cfg, nil
}

func LoadSecret() (*Secret, error) {
	const op = "config.LoadSecret"

	scr := &Secret{}
	if err := cleanenv.ReadEnv(scr); err != nil {
		return nil, fmt.Errorf("%s: failed to get secret env: %w", op, err)
	}

	return scr, nil
}

func fetchConfigPath() string {
	var configPath, envPath string

	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.StringVar(&envPath, "env", "", "path to env file")
	flag.Parse()

	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil {
			log.Fatalf("env file %s does not exist", envPath)
		}
	} else {
		_ = godotenv.Load()
	}

	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}

	return configPath
}
