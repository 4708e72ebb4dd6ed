package server

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/DjordjeVuckovic/calc-hunter/pkg/config/env"
	"github.com/DjordjeVuckovic/calc-hunter/pkg/utils"
)

const (
	DefaultPort                = "8080"
	DefaultBodyLimit           = "64K"
	DefaultMaxExpressionLength = 4096
)

type Config struct {
	Port        string
	UseHttp2    bool
	CorsOrigins []string
	BodyLimit   string
	// MaxExpressionLength bounds the input handed to the calculator.
	MaxExpressionLength int
}

func LoadConfig() (*Config, error) {
	err := env.LoadDotEnv(os.Getenv("APP_ENV"), "cmd/calc_api/.env")
	if err != nil {
		slog.Info("Skipping .env ...", "error", err)
	}

	useHttp2Str := os.Getenv("USE_HTTP2")
	useHttp2 := useHttp2Str == "true"

	port := os.Getenv("PORT")
	if port == "" {
		port = DefaultPort
	}

	if err := validatePort(port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}

	origins := utils.SplitList(os.Getenv("CORS_ORIGINS"), ",")
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	bodyLimit := os.Getenv("BODY_LIMIT")
	if bodyLimit == "" {
		bodyLimit = DefaultBodyLimit
	}

	maxLen := DefaultMaxExpressionLength
	if raw := os.Getenv("MAX_EXPRESSION_LENGTH"); raw != "" {
		maxLen, err = strconv.Atoi(raw)
		if err != nil || maxLen <= 0 {
			return nil, fmt.Errorf("invalid MAX_EXPRESSION_LENGTH %q: must be a positive number", raw)
		}
	}

	return &Config{
		Port:                port,
		UseHttp2:            useHttp2,
		CorsOrigins:         origins,
		BodyLimit:           bodyLimit,
		MaxExpressionLength: maxLen,
	}, nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)

	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}
