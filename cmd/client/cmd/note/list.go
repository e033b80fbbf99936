package note

import (
	"fmt"

	"github.com/spf13/cobra"

	"notekeeper/cmd/client/cmd/types"
	"notekeeper/internal/app/client/edit"
)

var ListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Список заметок",
	Long:    `Получает с сервера все заметки текущего пользователя в порядке сервера.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, flush := container(cmd.OutOrStdout(), types.JSONOutput(cmd))

		app, err := types.NewApp(cmd, c, edit.NewMemoryForm())
		if err != nil {
			return err
		}
		defer app.Shutdown()

		if err := app.Start(cmd.Context()); err != nil {
			return fmt.Errorf("ошибка получения списка заметок: %w", err)
		}
		return flush()
	},
}
