package note

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"notekeeper/internal/app/client/view"
	"notekeeper/internal/domain/note"
)

// NoteCmd - родительская команда для всех операций с заметками
var NoteCmd = &cobra.Command{
	Use:     "note",
	Aliases: []string{"notes"},
	Short:   "Управление заметками",
	Long:    `Просмотр, создание, редактирование, удаление и поиск заметок.`,
}

// container выбирает отрисовку: JSON собирается в памяти, иначе карточки печатаются сразу
func container(w io.Writer, jsonOutput bool) (view.Container, func() error) {
	if !jsonOutput {
		return view.NewTerminalContainer(w), func() error { return nil }
	}

	mem := view.NewMemoryContainer()
	return mem, func() error {
		cards := mem.Cards()
		notes := make([]note.Note, 0, len(cards))
		for _, c := range cards {
			notes = append(notes, note.Note{ID: c.ID, Body: c.Body, OwnerID: c.OwnerID})
		}

		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(notes)
	}
}

func printNote(w io.Writer, n note.Note, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(n)
	}

	c := view.NewTerminalContainer(w)
	c.Append(view.Card{ID: n.ID, Body: n.Body})
	return c.Flush()
}
