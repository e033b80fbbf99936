package view

import (
	"sync"

	"notekeeper/internal/domain/note"
)

// MemoryContainer хранит карточки в памяти
type MemoryContainer struct {
	mu      sync.RWMutex
	cards   []Card
	flushes int
}

func NewMemoryContainer() *MemoryContainer {
	return &MemoryContainer{}
}

func (m *MemoryContainer) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cards = nil
}

func (m *MemoryContainer) Append(card Card) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cards = append(m.cards, card)
}

func (m *MemoryContainer) Flush() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flushes++
	return nil
}

// Cards возвращает копию текущих карточек
func (m *MemoryContainer) Cards() []Card {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]Card(nil), m.cards...)
}

// Find ищет карточку по идентификатору заметки
func (m *MemoryContainer) Find(id note.ID) (Card, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.cards {
		if c.ID == id {
			return c, true
		}
	}
	return Card{}, false
}

// Flushes возвращает число выполненных отрисовок
func (m *MemoryContainer) Flushes() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.flushes
}
