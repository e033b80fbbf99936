package note

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"notekeeper/cmd/client/cmd/types"
	"notekeeper/internal/app/client/edit"
	"notekeeper/internal/app/client/view"
	"notekeeper/internal/domain/note"
)

var GetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Показать заметку",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.NewApp(cmd, view.NewMemoryContainer(), edit.NewMemoryForm())
		if err != nil {
			return err
		}
		defer app.Shutdown()

		n, err := app.Notes().Get(cmd.Context(), note.ID(args[0]))
		if err != nil {
			if errors.Is(err, note.ErrNotFound) {
				return fmt.Errorf("заметка %s не найдена", args[0])
			}
			return fmt.Errorf("ошибка получения заметки: %w", err)
		}

		return printNote(cmd.OutOrStdout(), n, types.JSONOutput(cmd))
	},
}
