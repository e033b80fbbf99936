package types

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"notekeeper/internal/app/client"
	"notekeeper/internal/app/client/config"
	"notekeeper/internal/app/client/edit"
	"notekeeper/internal/app/client/view"
)

type contextKey string

const (
	ConfigKey contextKey = "config"
	LoggerKey contextKey = "logger"
	OutputKey contextKey = "json_output"
)

var ErrNotInitialized = errors.New("приложение не инициализировано")

// WithRuntime сохраняет конфигурацию и логгер в контексте команды
func WithRuntime(ctx context.Context, cfg *config.Config, log *slog.Logger, jsonOutput bool) context.Context {
	ctx = context.WithValue(ctx, ConfigKey, cfg)
	ctx = context.WithValue(ctx, LoggerKey, log)
	return context.WithValue(ctx, OutputKey, jsonOutput)
}

// Runtime достает конфигурацию и логгер из контекста команды
func Runtime(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfg, ok := cmd.Context().Value(ConfigKey).(*config.Config)
	if !ok || cfg == nil {
		return nil, nil, ErrNotInitialized
	}
	log, ok := cmd.Context().Value(LoggerKey).(*slog.Logger)
	if !ok || log == nil {
		return nil, nil, ErrNotInitialized
	}
	return cfg, log, nil
}

// JSONOutput сообщает, запрошен ли вывод в JSON
func JSONOutput(cmd *cobra.Command) bool {
	v, _ := cmd.Context().Value(OutputKey).(bool)
	return v
}

// NewApp собирает приложение для текущей сессии
func NewApp(cmd *cobra.Command, container view.Container, form edit.Form) (*client.App, error) {
	cfg, log, err := Runtime(cmd)
	if err != nil {
		return nil, err
	}
	return client.New(cmd.Context(), cfg, log, container, form)
}
