package note

import (
	"fmt"
	"strings"
)

// Filter возвращает заметки, тело которых содержит term как подстроку.
// Сравнение чувствительно к регистру, порядок сохраняется.
func Filter(notes []Note, term string) []Note {
	if term == "" {
		return notes
	}

	filtered := make([]Note, 0, len(notes))
	for _, n := range notes {
		if strings.Contains(n.Body, term) {
			filtered = append(filtered, n)
		}
	}
	return filtered
}

// Owned проверяет принадлежность заметок пользователю.
// Пустой владелец заполняется, чужой считается ошибкой сервера.
func Owned(notes []Note, owner UserID) ([]Note, error) {
	for i := range notes {
		switch notes[i].OwnerID {
		case "":
			notes[i].OwnerID = owner
		case owner:
		default:
			return nil, fmt.Errorf("%w: заметка %s принадлежит %s", ErrInvalidPayload, notes[i].ID, notes[i].OwnerID)
		}
	}
	return notes, nil
}
