package edit

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/exp/slog"

	"notekeeper/internal/domain/note"
)

var ErrNoSelection = errors.New("no note selected for editing")

type State int

const (
	Idle State = iota
	Loaded
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loaded:
		return "loaded"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Repository - операции сервера, нужные для редактирования
type Repository interface {
	Get(ctx context.Context, id note.ID) (note.Note, error)
	Update(ctx context.Context, id note.ID, body string) error
}

// Refresher перерисовывает список после сохранения
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Session - состояние редактирования: Idle -> Loaded(id) -> Idle.
// Одновременно выбрана не больше одной заметки.
type Session struct {
	repo      Repository
	refresher Refresher
	log       *slog.Logger

	mu     sync.Mutex
	target note.ID
	state  State
}

func NewSession(repo Repository, refresher Refresher, log *slog.Logger) *Session {
	return &Session{
		repo:      repo,
		refresher: refresher,
		log:       log.With("component", "edit_session"),
	}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Target возвращает выбранную заметку, если она есть
func (s *Session) Target() (note.ID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.target, s.state == Loaded
}

// LoadForEdit получает заметку с сервера, заполняет форму и запоминает выбор.
// Загрузка другой заметки заменяет предыдущий выбор.
func (s *Session) LoadForEdit(ctx context.Context, id note.ID, form Form) error {
	n, err := s.repo.Get(ctx, id)
	if err != nil {
		s.log.Error("Не удалось загрузить заметку", "note_id", id, "error", err)
		return fmt.Errorf("ошибка загрузки заметки %s: %w", id, err)
	}

	form.SetBody(n.Body)

	s.mu.Lock()
	s.target = id
	s.state = Loaded
	s.mu.Unlock()

	s.log.Debug("Заметка выбрана для редактирования", "note_id", id)
	return nil
}

// CommitEdit сохраняет текст формы в выбранную заметку и обновляет список.
// Выбор сбрасывается до ответа сервера, ошибка сохранения не откатывается.
func (s *Session) CommitEdit(ctx context.Context, form Form) error {
	s.mu.Lock()
	if s.state != Loaded {
		s.mu.Unlock()
		return ErrNoSelection
	}
	id := s.target
	s.mu.Unlock()

	body, err := form.Body()
	if err != nil {
		return fmt.Errorf("ошибка чтения формы: %w", err)
	}

	s.mu.Lock()
	if s.target == id {
		s.target = ""
		s.state = Idle
	}
	s.mu.Unlock()

	var errs []error
	if err := s.repo.Update(ctx, id, body); err != nil {
		s.log.Error("Не удалось сохранить заметку", "note_id", id, "error", err)
		errs = append(errs, fmt.Errorf("ошибка сохранения заметки %s: %w", id, err))
	}

	if s.refresher != nil {
		if err := s.refresher.Refresh(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Cancel сбрасывает выбор без сохранения
func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.target = ""
	s.state = Idle
}
