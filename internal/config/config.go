package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type MerchantConfig struct {
	Env          string `yaml:"env" env:"MERCHANT_ENV" env-default:"local"`
	HTTPServer   `yaml:"http_server"`
	GRPCServer   `yaml:"grpc_server"`
	MerchantDB   `yaml:"merchant_db"`
	LogConfig    `yaml:"log_config"`
	OrderService `yaml:"order_service"`
	KafkaService `yaml:"kafka_service"`
	Discovery    `yaml:"discovery"`
}

type HTTPServer struct {
	Host         string        `yaml:"host" env-default:"0.0.0.0"`
	Port         string        `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env-default:"10s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env-default:"15s"`
}

type GRPCServer struct {
	Host string `yaml:"host" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"GRPC_PORT" env-default:"50061"`
}

type MerchantDB struct {
	Dsn            string `yaml:"dsn" env:"MERCHANT_DB_DSN" env-required:"true"`
	MigrationsPath string `yaml:"migrations_path" env-default:"migrations"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	LogFormat string `yaml:"log_format" env-default:"json"`
	LogOutput string `yaml:"log_output" env-default:"stdout"`
}

type OrderService struct {
	Address string        `yaml:"address" env:"ORDER_SERVICE_ADDRESS"`
	Timeout time.Duration `yaml:"timeout" env-default:"3s"`
}

type KafkaService struct {
	Host             string `yaml:"host" env:"KAFKA_HOST"`
	Port             string `yaml:"port" env:"KAFKA_PORT"`
	Username         string `yaml:"username" env:"KAFKA_USERNAME"`
	Password         string `yaml:"password" env:"KAFKA_PASSWORD"`
	Mechanism        string `yaml:"mechanism" env-default:"plain"`
	TLSEnabled       bool   `yaml:"tls_enabled"`
	StoreEventsTopic string `yaml:"store_events_topic" env-default:"store-events"`
	IndexEventsTopic string `yaml:"index_events_topic" env-default:"store-index-events"`
	GroupID          string `yaml:"group_id" env-default:"merchant-service"`
}

type Discovery struct {
	TimezoneOffsetHours int    `yaml:"timezone_offset_hours" env-default:"7"`
	WeekStartDay        int    `yaml:"week_start_day" env-default:"0"`
	RadiusSettingName   string `yaml:"radius_setting_name" env-default:"search_radius"`
	DefaultPageSize     int    `yaml:"default_page_size" env-default:"20"`
	MaxPageSize         int    `yaml:"max_page_size" env-default:"100"`
}

func MustLoad() *MerchantConfig {
	configPath := os.Getenv("MERCHANT_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("MERCHANT_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return cfg
}

// Load reads the YAML file at path; environment variables override it.
func Load(path string) (*MerchantConfig, error) {
	var cfg MerchantConfig
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
