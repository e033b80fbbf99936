package view

import (
	"context"
	"errors"

	"notekeeper/internal/domain/note"
)

var ErrNoActions = errors.New("card actions are not bound")

// Actions - обработчики двух элементов управления каждой карточки
type Actions interface {
	DeleteClicked(ctx context.Context, id note.ID) error
	EditClicked(ctx context.Context, id note.ID) error
}

// Card - отображение одной заметки
type Card struct {
	ID      note.ID
	Body    string
	OwnerID note.UserID

	actions Actions
}

// Delete запускает удаление заметки карточки
func (c Card) Delete(ctx context.Context) error {
	if c.actions == nil {
		return ErrNoActions
	}
	return c.actions.DeleteClicked(ctx, c.ID)
}

// Edit загружает заметку карточки в форму редактирования
func (c Card) Edit(ctx context.Context) error {
	if c.actions == nil {
		return ErrNoActions
	}
	return c.actions.EditClicked(ctx, c.ID)
}

// Container - контейнер карточек на экране.
// Clear удаляет все карточки, Flush выводит накопленное состояние.
type Container interface {
	Clear()
	Append(card Card)
	Flush() error
}
