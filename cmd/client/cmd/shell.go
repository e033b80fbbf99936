package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"notekeeper/cmd/client/cmd/types"
	"notekeeper/internal/app/client"
	"notekeeper/internal/app/client/edit"
	"notekeeper/internal/app/client/view"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Интерактивный режим",
	Long: `Открывает страницу заметок в терминале.

Список перестраивается после каждого изменения; команда help выводит
доступные действия.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		console, err := types.OpenConsole(os.Stdin, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		defer console.Close()

		container := view.NewTerminalContainer(console.Out)
		form := edit.NewMemoryForm()

		app, err := types.NewApp(cmd, container, form)
		if err != nil {
			return err
		}
		defer app.Shutdown()

		sh := client.NewShell(app, container, form, console.Read, console.Out)
		return app.Run(cmd.Context(), sh.Loop)
	},
}
