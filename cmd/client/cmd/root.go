package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slog"

	"notekeeper/cmd/client/cmd/types"
	"notekeeper/internal/app/client/config"
	"notekeeper/internal/app/client/identity"
	"notekeeper/internal/utils/logger"
)

var (
	cfgFile    string
	debug      bool
	jsonOutput bool
	serverURL  string
)

var rootCmd = &cobra.Command{
	Use:   "notekeeper",
	Short: "NoteKeeper - клиент для личных заметок",
	Long: `NoteKeeper - терминальный клиент сервиса заметок.

Заметки хранятся на сервере и привязаны к пользователю текущей сессии.
Список на экране всегда перестраивается по ответу сервера.`,
	PersistentPreRunE: setupRuntime,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		if errors.Is(err, identity.ErrNoSession) {
			fmt.Fprintln(os.Stderr, "Войдите в систему: notekeeper auth login <user-id>")
		}
		os.Exit(1)
	}
}

func setupRuntime(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	// Переопределяем настройки из флагов командной строки
	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}

	cmd.SetContext(types.WithRuntime(cmd.Context(), cfg, newLogger(cfg), jsonOutput))
	return nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	switch {
	case debug:
		return logger.NewWithLevel(cfg.Env, "debug")
	case cfg.LogLevel != "":
		return logger.NewWithLevel(cfg.Env, cfg.LogLevel)
	default:
		return logger.New(cfg.Env)
	}
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Ищем конфиг в стандартных местах
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}

		viper.AddConfigPath(filepath.Join(home, ".notekeeper"))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		// Конфиг не найден, используем значения по умолчанию
	}

	return config.Load()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "конфигурационный файл")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "включить отладочный режим")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "вывод в формате JSON")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "адрес сервера заметок (host:port)")
}
