package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"notekeeper/cmd/client/cmd/types"
	"notekeeper/internal/app/client"
	"notekeeper/internal/app/client/identity"
)

var check bool

type whoamiOutput struct {
	UserID    string `json:"user_id"`
	Server    string `json:"server"`
	Reachable *bool  `json:"reachable,omitempty"`
	Error     string `json:"error,omitempty"`
}

var WhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Показать текущего пользователя",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := types.Runtime(cmd)
		if err != nil {
			return err
		}

		store := identity.Open(cmd.Context(), cfg.SessionPath, log)
		defer store.Close()

		session, err := identity.NewProvider(store, log).Current()
		if err != nil {
			return err
		}

		out := whoamiOutput{UserID: string(session.UserID), Server: cfg.ServerAddress}

		if check {
			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			reachable := true
			if err := client.NewHTTPClient(cfg, log).HealthCheck(ctx, session.UserID); err != nil {
				reachable = false
				out.Error = err.Error()
			}
			out.Reachable = &reachable
		}

		if types.JSONOutput(cmd) {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Пользователь: %s\n", out.UserID)
		fmt.Fprintf(w, "Сервер: %s\n", out.Server)
		if out.Reachable != nil {
			if *out.Reachable {
				fmt.Fprintln(w, "✓ Соединение с сервером установлено")
			} else {
				fmt.Fprintf(w, "⚠️  Сервер недоступен: %s\n", out.Error)
			}
		}
		return nil
	},
}

func init() {
	WhoamiCmd.Flags().BoolVar(&check, "check", false, "проверить доступность сервера")
}
