package view

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/exp/slog"

	"notekeeper/internal/domain/note"
)

// Lister - источник полного списка заметок пользователя
type Lister interface {
	ListByUser(ctx context.Context, userID note.UserID) ([]note.Note, error)
}

// Synchronizer перерисовывает контейнер карточек по состоянию сервера.
// Каждая отрисовка получает номер; ответ, запрошенный раньше уже
// отрисованного, отбрасывается.
type Synchronizer struct {
	repo      Lister
	container Container
	log       *slog.Logger

	mu       sync.Mutex
	actions  Actions
	issued   atomic.Uint64
	rendered uint64
}

func NewSynchronizer(repo Lister, container Container, log *slog.Logger) *Synchronizer {
	return &Synchronizer{
		repo:      repo,
		container: container,
		log:       log.With("component", "view_sync"),
	}
}

// SetActions задает обработчики, которые получат новые карточки
func (s *Synchronizer) SetActions(actions Actions) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.actions = actions
}

// Refresh заново получает список пользователя и полностью перерисовывает контейнер.
// При ошибке предыдущая отрисовка остается на экране.
func (s *Synchronizer) Refresh(ctx context.Context, userID note.UserID) error {
	ticket := s.issued.Add(1)

	notes, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		s.log.Error("Не удалось обновить список заметок", "user_id", userID, "error", err)
		return fmt.Errorf("ошибка обновления списка: %w", err)
	}

	return s.render(ticket, notes)
}

// RenderCards заменяет содержимое контейнера карточками notes в порядке сервера
func (s *Synchronizer) RenderCards(notes []note.Note) error {
	return s.render(s.issued.Add(1), notes)
}

// Query выполняет выборку fetch и отрисовывает ее результат.
// Номер берется до запроса, поэтому ответ, пришедший после более нового
// обновления, отбрасывается так же, как в Refresh.
func (s *Synchronizer) Query(ctx context.Context, fetch func(ctx context.Context) ([]note.Note, error)) error {
	ticket := s.issued.Add(1)

	notes, err := fetch(ctx)
	if err != nil {
		return err
	}

	return s.render(ticket, notes)
}

func (s *Synchronizer) render(ticket uint64, notes []note.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ticket < s.rendered {
		s.log.Debug("Устаревший ответ отброшен", "ticket", ticket, "rendered", s.rendered)
		return nil
	}
	s.rendered = ticket

	s.container.Clear()
	for _, n := range notes {
		s.container.Append(Card{
			ID:      n.ID,
			Body:    n.Body,
			OwnerID: n.OwnerID,
			actions: s.actions,
		})
	}

	s.log.Debug("Карточки отрисованы", "count", len(notes), "ticket", ticket)
	return s.container.Flush()
}
