package note

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"notekeeper/cmd/client/cmd/types"
	"notekeeper/internal/app/client/edit"
	"notekeeper/internal/domain/note"
)

var EditCmd = &cobra.Command{
	Use:   "edit <id> [text]",
	Short: "Изменить заметку",
	Long: `Загружает заметку в форму редактирования и сохраняет новый текст.

Без аргумента text новый текст запрашивается в терминале.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		var form edit.Form
		if len(args) > 1 {
			form = edit.NewMemoryForm()
		} else {
			console, err := types.OpenConsole(os.Stdin, out)
			if err != nil {
				return err
			}
			defer console.Close()
			form = edit.NewPromptForm(console.Read, console.Out)
			out = console.Out
		}

		c, flush := container(out, types.JSONOutput(cmd))

		app, err := types.NewApp(cmd, c, form)
		if err != nil {
			return err
		}
		defer app.Shutdown()

		if err := app.EditClicked(cmd.Context(), note.ID(args[0])); err != nil {
			return err
		}
		if len(args) > 1 {
			form.SetBody(strings.Join(args[1:], " "))
		}

		if err := app.UpdateClicked(cmd.Context()); err != nil {
			return err
		}
		return flush()
	},
}
