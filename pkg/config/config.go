package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Server    ServerConfig
	Artifacts ArtifactsConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port        string
	CORSOrigins []string
}

type ArtifactsConfig struct {
	ModelPath  string
	ScalerPath string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "ExamScore Predictor API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			CORSOrigins: strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:8080"), ","),
		},
		Artifacts: ArtifactsConfig{
			ModelPath:  getEnv("MODEL_PATH", "artifacts/exam_model.json"),
			ScalerPath: getEnv("SCALER_PATH", "artifacts/scaler.json"),
		},
	}

	if cfg.Server.Port == "" {
		return nil, errors.New("missing server port")
	}

	if cfg.Artifacts.ModelPath == "" || cfg.Artifacts.ScalerPath == "" {
		return nil, errors.New("missing artifact paths")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}
