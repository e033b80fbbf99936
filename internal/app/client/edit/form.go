package edit

import (
	"errors"
	"sync"
)

var ErrFormClosed = errors.New("edit form is closed")

// Form - поле ввода текста редактируемой заметки
type Form interface {
	SetBody(body string)
	Body() (string, error)
}

// MemoryForm хранит текст формы в памяти
type MemoryForm struct {
	mu   sync.RWMutex
	body string
}

func NewMemoryForm() *MemoryForm {
	return &MemoryForm{}
}

func (f *MemoryForm) SetBody(body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.body = body
}

func (f *MemoryForm) Body() (string, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.body, nil
}
