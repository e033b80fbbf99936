package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/exp/slog"

	"notekeeper/internal/domain/note"
)

// SessionKey - имя пары, в которой внешний вход сохраняет идентификатор пользователя
const SessionKey = "userId"

// expiredAt - момент, которым помечаются удаленные записи
var expiredAt = time.Unix(0, 0)

// Session - идентичность текущего пользователя, передается в каждый вызов клиента заметок
type Session struct {
	UserID note.UserID
}

// Provider извлекает идентичность из клиентского хранилища
type Provider struct {
	store Store
	log   *slog.Logger
	now   func() time.Time
}

func NewProvider(store Store, log *slog.Logger) *Provider {
	return &Provider{
		store: store,
		log:   log.With("component", "identity"),
		now:   time.Now,
	}
}

// Open открывает SQLite-хранилище по path, при ошибке использует память
func Open(ctx context.Context, path string, log *slog.Logger) Store {
	store, err := NewSQLiteStore(ctx, path, log)
	if err != nil {
		log.Warn("Не удалось инициализировать SQLite, используем память", "error", err)
		return NewMemoryStore()
	}
	return store
}

// CurrentUserID возвращает идентификатор пользователя текущей сессии
func (p *Provider) CurrentUserID() (note.UserID, error) {
	entry, err := p.store.Get(SessionKey)
	if err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			return "", ErrNoSession
		}
		return "", fmt.Errorf("%w: %v", ErrNoSession, err)
	}

	value := entry.Value
	if !validUserID(value) {
		p.log.Warn("Сессия повреждена", "value", value)
		return "", fmt.Errorf("%w: некорректное значение %q", ErrNoSession, value)
	}

	return note.UserID(value), nil
}

// Current возвращает сессию для привязки клиента заметок
func (p *Provider) Current() (Session, error) {
	userID, err := p.CurrentUserID()
	if err != nil {
		return Session{}, err
	}
	return Session{UserID: userID}, nil
}

// Login сохраняет идентификатор пользователя на срок ttl.
// В браузере это делает внешний поток входа.
func (p *Provider) Login(userID note.UserID, ttl time.Duration) (Session, error) {
	if !validUserID(string(userID)) {
		return Session{}, fmt.Errorf("некорректный идентификатор пользователя %q", userID)
	}
	if ttl <= 0 {
		return Session{}, fmt.Errorf("срок действия сессии должен быть положительным")
	}

	if err := p.store.Set(Entry{
		Name:      SessionKey,
		Value:     string(userID),
		ExpiresAt: p.now().Add(ttl),
	}); err != nil {
		return Session{}, fmt.Errorf("ошибка сохранения сессии: %w", err)
	}

	p.log.Info("Сессия сохранена", "user_id", userID)
	return Session{UserID: userID}, nil
}

// Logout перезаписывает каждую сохраненную пару уже истекшей записью.
// Ошибка одной пары не прерывает обработку остальных.
func (p *Provider) Logout() error {
	names, err := p.store.Names()
	if err != nil {
		return fmt.Errorf("ошибка перечисления сессии: %w", err)
	}

	var errs []error
	for _, name := range names {
		if err := p.store.Set(Entry{Name: name, ExpiresAt: expiredAt}); err != nil {
			p.log.Error("Не удалось сбросить запись сессии", "name", name, "error", err)
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("выход выполнен частично: %w", errors.Join(errs...))
	}

	p.log.Info("Выход выполнен", "cleared", len(names))
	return nil
}

func validUserID(value string) bool {
	if value == "" {
		return false
	}
	return !strings.ContainsAny(value, " \t\r\n;=")
}
