package note

import (
	"github.com/spf13/cobra"

	"notekeeper/cmd/client/cmd/types"
	"notekeeper/internal/app/client/edit"
	"notekeeper/internal/domain/note"
)

var DeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Удалить заметку",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, flush := container(cmd.OutOrStdout(), types.JSONOutput(cmd))

		app, err := types.NewApp(cmd, c, edit.NewMemoryForm())
		if err != nil {
			return err
		}
		defer app.Shutdown()

		if err := app.DeleteClicked(cmd.Context(), note.ID(args[0])); err != nil {
			return err
		}
		return flush()
	},
}
