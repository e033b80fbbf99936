package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"notekeeper/cmd/client/cmd/types"
	"notekeeper/internal/app/client/identity"
	"notekeeper/internal/domain/note"
)

var ttl time.Duration

var LoginCmd = &cobra.Command{
	Use:   "login <user-id>",
	Short: "Войти в систему NoteKeeper",
	Long: `Сохраняет идентификатор пользователя в локальной сессии.

Пока сессия действует, все команды работают с заметками этого пользователя.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := types.Runtime(cmd)
		if err != nil {
			return err
		}

		store := identity.Open(cmd.Context(), cfg.SessionPath, log)
		defer store.Close()

		if ttl <= 0 {
			ttl = cfg.SessionTTL
		}

		session, err := identity.NewProvider(store, log).Login(note.UserID(strings.TrimSpace(args[0])), ttl)
		if err != nil {
			return fmt.Errorf("ошибка входа: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✅ Вход выполнен: пользователь %s\n", session.UserID)
		return nil
	},
}

func init() {
	LoginCmd.Flags().DurationVar(&ttl, "ttl", 0, "срок действия сессии (по умолчанию session_ttl_hours)")
}
