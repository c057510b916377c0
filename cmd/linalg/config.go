package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/katalvlaran/linalg/field"
	"github.com/katalvlaran/linalg/matrix"
	"go.uber.org/zap"
)

const (
	envLogLevel  = "LINALG_LOG_LEVEL"
	envEpsilon   = "LINALG_EPSILON"
	envPrecision = "LINALG_PRECISION"

	envLookupDepth = 5
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

func (l LogLevel) String() string {
	return string(l)
}

func (l LogLevel) Zap() zap.AtomicLevel {
	switch l {
	case LogLevelDebug, "trace":
		return zap.NewAtomicLevelAt(zap.DebugLevel)
	case LogLevelInfo, "information", "notice":
		return zap.NewAtomicLevelAt(zap.InfoLevel)
	case LogLevelWarn, "warning":
		return zap.NewAtomicLevelAt(zap.WarnLevel)
	default:
		return zap.NewAtomicLevelAt(zap.ErrorLevel)
	}
}

// Config holds the CLI settings resolved from the environment.
type Config struct {
	LogLevel  LogLevel
	Epsilon   float64
	Precision int
}

// LoadConfig reads the settings from environment variables.
// A .env file in the current or a parent directory is loaded first when present;
// variables already set in the environment win over it.
func LoadConfig() (*Config, error) {
	_ = loadEnvFile()

	cfg := &Config{
		LogLevel:  LogLevelError,
		Epsilon:   matrix.DefaultEpsilon,
		Precision: matrix.DefaultPrecision,
	}
	if v := os.Getenv(envLogLevel); v != "" {
		cfg.LogLevel = LogLevel(v)
	}
	if v := os.Getenv(envEpsilon); v != "" {
		eps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("config: %s=%q: %w", envEpsilon, v, err)
		}
		if err = field.ValidateEpsilon(eps); err != nil {
			return nil, fmt.Errorf("config: %s=%q: %w", envEpsilon, v, err)
		}
		cfg.Epsilon = eps
	}
	if v := os.Getenv(envPrecision); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil || p < 0 {
			return nil, fmt.Errorf("config: %s=%q: want a non-negative integer", envPrecision, v)
		}
		cfg.Precision = p
	}

	return cfg, nil
}

// loadEnvFile walks up from the working directory until it finds a .env file.
func loadEnvFile() error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}

	for i := 0; i < envLookupDepth; i++ {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			return godotenv.Load(envPath)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return nil
}

// newLogger builds a console logger on stderr at the configured level.
func newLogger(level LogLevel) (*zap.Logger, error) {
	zc := zap.NewDevelopmentConfig()
	zc.Level = level.Zap()
	zc.DisableStacktrace = true
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	return zc.Build()
}
