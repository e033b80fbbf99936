package note

import (
	"strings"

	"github.com/spf13/cobra"

	"notekeeper/cmd/client/cmd/types"
	"notekeeper/internal/app/client/edit"
)

var CreateCmd = &cobra.Command{
	Use:     "create <text>",
	Aliases: []string{"add"},
	Short:   "Создать заметку",
	Long:    `Создает заметку с указанным текстом и выводит обновленный список.`,
	Example: `  notekeeper note create "buy milk"`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, flush := container(cmd.OutOrStdout(), types.JSONOutput(cmd))

		app, err := types.NewApp(cmd, c, edit.NewMemoryForm())
		if err != nil {
			return err
		}
		defer app.Shutdown()

		input := edit.NewMemoryForm()
		input.SetBody(strings.Join(args, " "))

		if _, err := app.Submit(cmd.Context(), input); err != nil {
			return err
		}
		return flush()
	},
}
