package edit

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// ErrInterrupted возвращается LineReader, когда пользователь прерывает ввод (Ctrl-C)
var ErrInterrupted = errors.New("input interrupted")

// LineReader читает одну строку ввода после приглашения prompt
type LineReader func(prompt string) (string, error)

// PromptForm - форма редактирования в терминале.
// Пустой ввод оставляет текущий текст без изменений.
type PromptForm struct {
	read LineReader
	out  io.Writer

	mu   sync.Mutex
	body string
}

func NewPromptForm(read LineReader, out io.Writer) *PromptForm {
	return &PromptForm{read: read, out: out}
}

func (f *PromptForm) SetBody(body string) {
	f.mu.Lock()
	f.body = body
	f.mu.Unlock()

	fmt.Fprintf(f.out, "Текущий текст: %s\n", body)
}

func (f *PromptForm) Body() (string, error) {
	line, err := f.read("Новый текст (Enter - без изменений): ")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFormClosed, err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	line = strings.TrimRight(line, "\r\n")
	if line != "" {
		f.body = line
	}
	return f.body, nil
}
