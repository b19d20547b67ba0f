package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Settings struct {
	PostgresDSN     string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ServerPort      int

	RedisAddr     string
	RedisPassword string

	MinioEndpoint   string
	MinioAccessKey  string
	MinioSecretKey  string
	MinioUseSSL     bool
	KeyframesBucket string
}

func Load() (*Settings, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found; proceeding with OS environment variables")
	}

	viper.AutomaticEnv()

	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	if !viper.IsSet("POSTGRES_DSN") {
		return nil, fmt.Errorf("POSTGRES_DSN is required")
	}
	if !viper.IsSet("POSTGRES_MAX_OPEN_CONN") {
		return nil, fmt.Errorf("POSTGRES_MAX_OPEN_CONN is required")
	}
	if !viper.IsSet("POSTGRES_MAX_IDLE_CONNS") {
		return nil, fmt.Errorf("POSTGRES_MAX_IDLE_CONNS is required")
	}
	if !viper.IsSet("POSTGRES_CONN_MAX_LIFETIME") {
		return nil, fmt.Errorf("POSTGRES_CONN_MAX_LIFETIME is required")
	}
	if !viper.IsSet("SERVER_PORT") {
		return nil, fmt.Errorf("SERVER_PORT is required")
	}

	viper.SetDefault("KEYFRAMES_BUCKET", "keyframes")

	return &Settings{
		PostgresDSN:     viper.GetString("POSTGRES_DSN"),
		MaxOpenConns:    viper.GetInt("POSTGRES_MAX_OPEN_CONN"),
		MaxIdleConns:    viper.GetInt("POSTGRES_MAX_IDLE_CONNS"),
		ConnMaxLifetime: time.Duration(viper.GetInt("POSTGRES_CONN_MAX_LIFETIME")) * time.Second,
		ServerPort:      viper.GetInt("SERVER_PORT"),
		RedisAddr:       viper.GetString("REDIS_ADDR"),
		RedisPassword:   viper.GetString("REDIS_PASSWORD"),
		MinioEndpoint:   viper.GetString("MINIO_ENDPOINT"),
		MinioAccessKey:  viper.GetString("MINIO_ACCESS_KEY"),
		MinioSecretKey:  viper.GetString("MINIO_SECRET_KEY"),
		MinioUseSSL:     viper.GetBool("MINIO_USE_SSL"),
		KeyframesBucket: viper.GetString("KEYFRAMES_BUCKET"),
	}, nil
}
