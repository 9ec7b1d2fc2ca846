// Package config exposes the panel configuration, read from environment
// variables (optionally loaded from a .env file) with sane defaults.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

// LoadEnvFile loads a .env file from the working directory if present.
// A missing file is not an error.
func LoadEnvFile() {
	_ = godotenv.Load()
}

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("UP_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("UP_DEBUG") == "true"
}

// GetSecretKey returns the key used to authenticate session cookies.
// The default is only suitable for development.
func GetSecretKey() string {
	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		secret = "dev-secret-key"
	}
	return secret
}

func GetListen() string {
	return os.Getenv("UP_LISTEN")
}

func GetPort() int {
	port := os.Getenv("UP_PORT")
	if port == "" {
		return 5000
	}
	n, err := strconv.Atoi(port)
	if err != nil {
		return 5000
	}
	return n
}

// GetBasePath returns the URL prefix all routes are mounted under,
// normalized to start and end with "/".
func GetBasePath() string {
	basePath := os.Getenv("UP_BASE_PATH")
	if basePath == "" {
		return "/"
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	if !strings.HasSuffix(basePath, "/") {
		basePath += "/"
	}
	return basePath
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("UP_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "."
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

// GetLogFolder returns the folder for the log file, or "" to disable
// file logging.
func GetLogFolder() string {
	return os.Getenv("UP_LOG_FOLDER")
}
