package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type EscrowConfig struct {
	Env string 	   `yaml:"env"`
	HTTPServer 	   `yaml:"http_server"`
	EscrowDB 	   `yaml:"escrow_db"`
	LogConfig 	   `yaml:"log_config"`
	KafkaService   `yaml:"kafka-service"`
	PaymentGateway `yaml:"payment-gateway"`
	KYCService     `yaml:"kyc-service"`
	ChatService    `yaml:"chat-service"`
	Settlement     `yaml:"settlement"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type EscrowDB struct {
	Dsn 		   string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel 	string 	`yaml:"log_level"`
	LogFormat 	string 	`yaml:"log_format"`
	LogOutput 	string 	`yaml:"log_output"`
}

type KafkaService struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type PaymentGateway struct {
	Address 	   string `yaml:"address"`
	TimeoutSeconds int    `yaml:"timeout_seconds" env-default:"10"`
}

type KYCService struct {
	Address string `yaml:"address"`
}

type ChatService struct {
	Address string `yaml:"address"`
}

type Settlement struct {
	SweepIntervalSeconds      int `yaml:"sweep_interval_seconds" env-default:"30"`
	TrustRetryIntervalSeconds int `yaml:"trust_retry_interval_seconds" env-default:"60"`
	SignalTimeoutSeconds      int `yaml:"signal_timeout_seconds" env-default:"3"`
}

func MustLoad() *EscrowConfig {

	// Processing env config variable and file
	configPath := os.Getenv("ESCROW_CONFIG_PATH")

	if configPath == ""{
		log.Fatalf("ESCROW_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil{
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg EscrowConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil{
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
