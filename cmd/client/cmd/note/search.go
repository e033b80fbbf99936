package note

import (
	"strings"

	"github.com/spf13/cobra"

	"notekeeper/cmd/client/cmd/types"
	"notekeeper/internal/app/client/edit"
)

var SearchCmd = &cobra.Command{
	Use:   "search [term]",
	Short: "Найти заметки",
	Long: `Выводит заметки, текст которых содержит term (с учетом регистра).

Пустой term выводит все заметки.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, flush := container(cmd.OutOrStdout(), types.JSONOutput(cmd))

		app, err := types.NewApp(cmd, c, edit.NewMemoryForm())
		if err != nil {
			return err
		}
		defer app.Shutdown()

		if err := app.SearchChanged(cmd.Context(), strings.Join(args, " ")); err != nil {
			return err
		}
		return flush()
	},
}
