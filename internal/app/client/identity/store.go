package identity

import (
	"errors"
	"time"
)

var (
	ErrNoSession     = errors.New("session not found")
	ErrEntryNotFound = errors.New("entry not found")
)

// Entry - одна пара ключ/значение клиентского хранилища со сроком действия
type Entry struct {
	Name      string
	Value     string
	ExpiresAt time.Time
}

// Expired проверяет, истек ли срок действия записи к моменту now
func (e Entry) Expired(now time.Time) bool {
	return !e.ExpiresAt.After(now)
}

// Store - персистентное хранилище сессионных пар на стороне клиента.
// Get не возвращает записи с истекшим сроком.
type Store interface {
	Get(name string) (Entry, error)
	Set(entry Entry) error
	Names() ([]string, error)
	Close() error
}
