package view

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"

	"notekeeper/internal/domain/note"
)

// TerminalContainer выводит карточки в терминал
type TerminalContainer struct {
	mu    sync.Mutex
	out   io.Writer
	cards []Card

	title  *color.Color
	id     *color.Color
	body   *color.Color
	hint   *color.Color
	muted  *color.Color
	header string
}

func NewTerminalContainer(out io.Writer) *TerminalContainer {
	return &TerminalContainer{
		out:    out,
		title:  color.New(color.Bold),
		id:     color.New(color.FgCyan),
		body:   color.New(color.FgWhite),
		hint:   color.New(color.FgYellow),
		muted:  color.New(color.Faint),
		header: "Заметки",
	}
}

func (t *TerminalContainer) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cards = nil
}

func (t *TerminalContainer) Append(card Card) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cards = append(t.cards, card)
}

// Find ищет выведенную карточку по идентификатору заметки
func (t *TerminalContainer) Find(id note.ID) (Card, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, c := range t.cards {
		if c.ID == id {
			return c, true
		}
	}
	return Card{}, false
}

func (t *TerminalContainer) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	var b strings.Builder

	t.title.Fprintf(&b, "=== %s (%d) ===\n", t.header, len(t.cards))
	if len(t.cards) == 0 {
		t.muted.Fprintln(&b, "Заметки не найдены")
	}

	for _, c := range t.cards {
		t.id.Fprintf(&b, "#%s ", c.ID)
		t.body.Fprintln(&b, c.Body)
		t.hint.Fprintf(&b, "   [e]dit %s  [d]elete %s\n", c.ID, c.ID)
	}

	if _, err := fmt.Fprint(t.out, b.String()); err != nil {
		return fmt.Errorf("ошибка вывода карточек: %w", err)
	}
	return nil
}
