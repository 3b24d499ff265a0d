package config

import (
	"os"
)

const (
	appNameVar   = "APP_NAME"
	apiURLVar    = "SPOTILIKE_API_URL"
	folderEnvVar = "FOLDER"
	redisAddrVar = "REDIS_ADDR"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "Spotilike")
}

// GetAPIBaseURL returns the base URL of the Spotilike REST backend
// (e.g., "https://api.spotilike.example.com/api"). All request paths are
// resolved relative to it.
func (EnvVars) GetAPIBaseURL() string {
	return GetEnv(apiURLVar, "http://localhost:5678/api")
}

func (EnvVars) GetDataFolder() string {
	return GetEnv(folderEnvVar, "./data")
}

// GetRedisAddr returns the address of an optional redis server used for
// credential storage. When empty, the file-backed store is used instead.
func (EnvVars) GetRedisAddr() string {
	return GetEnv(redisAddrVar, "")
}

func (EnvVars) GetEnv() string {
	env := os.Getenv("ENV")
	if env == "" {
		return "DEV"
	}
	return env
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
