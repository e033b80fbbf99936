package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"notekeeper/cmd/client/cmd/types"
	"notekeeper/internal/app/client/identity"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Выйти из системы",
	Long:  `Помечает все сохраненные значения сессии истекшими.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := types.Runtime(cmd)
		if err != nil {
			return err
		}

		store := identity.Open(cmd.Context(), cfg.SessionPath, log)
		defer store.Close()

		if err := identity.NewProvider(store, log).Logout(); err != nil {
			return fmt.Errorf("ошибка выхода: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "✅ Выход выполнен")
		return nil
	},
}
