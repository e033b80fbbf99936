package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/exp/slog"

	"notekeeper/internal/app/client/config"
	"notekeeper/internal/app/client/edit"
	"notekeeper/internal/app/client/identity"
	"notekeeper/internal/app/client/view"
	"notekeeper/internal/domain/note"
)

// App связывает сессию, клиент заметок, отрисовку и редактирование.
// Внутри одного обработчика изменение на сервере всегда завершается до обновления списка.
type App struct {
	config     *config.Config
	log        *slog.Logger
	store      identity.Store
	identity   *identity.Provider
	httpClient *HTTPClient
	notes      *Notes
	view       *view.Synchronizer
	edit       *edit.Session
	form       edit.Form
	search     *SearchDebouncer
}

// New открывает хранилище сессии и собирает приложение.
// Без действующей сессии возвращается ошибка, обернутая вокруг identity.ErrNoSession.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger, container view.Container, form edit.Form) (*App, error) {
	store := identity.Open(ctx, cfg.SessionPath, log)
	provider := identity.NewProvider(store, log)

	session, err := provider.Current()
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("сессия не найдена, выполните: notekeeper auth login: %w", err)
	}

	httpCl := NewHTTPClient(cfg, log)

	app := &App{
		config:     cfg,
		log:        log.With("component", "app", "user_id", session.UserID),
		store:      store,
		identity:   provider,
		httpClient: httpCl,
		notes:      Bind(httpCl, session),
		view:       view.NewSynchronizer(httpCl, container, log),
		form:       form,
	}

	app.edit = edit.NewSession(app.notes, app, log)
	app.view.SetActions(app)
	app.search = NewSearchDebouncer(cfg.SearchDebounce, app.SearchChanged, log)

	return app, nil
}

func (a *App) Session() identity.Session {
	return a.notes.Session()
}

func (a *App) Notes() *Notes {
	return a.notes
}

func (a *App) EditSession() *edit.Session {
	return a.edit
}

func (a *App) Search() *SearchDebouncer {
	return a.search
}

// Start выполняет первую отрисовку списка
func (a *App) Start(ctx context.Context) error {
	a.log.Info("Клиент запущен",
		"server", a.config.ServerAddress,
		"env", a.config.Env,
	)
	return a.Refresh(ctx)
}

// Refresh перерисовывает список текущего пользователя
func (a *App) Refresh(ctx context.Context) error {
	return a.view.Refresh(ctx, a.notes.UserID())
}

// Submit создает заметку из поля ввода, очищает поле и обновляет список.
// После неудачного создания список не обновляется.
func (a *App) Submit(ctx context.Context, input edit.Form) (note.Note, error) {
	body, err := input.Body()
	if err != nil {
		return note.Note{}, fmt.Errorf("ошибка чтения поля ввода: %w", err)
	}

	created, err := a.notes.Create(ctx, body)
	if err != nil {
		a.log.Error("Не удалось создать заметку", "error", err)
		return note.Note{}, fmt.Errorf("ошибка создания заметки: %w", err)
	}

	input.SetBody("")
	a.log.Debug("Заметка создана", "note_id", created.ID)

	return created, a.Refresh(ctx)
}

// DeleteClicked удаляет заметку и обновляет список даже после ошибки удаления
func (a *App) DeleteClicked(ctx context.Context, id note.ID) error {
	var errs []error
	if err := a.notes.Remove(ctx, id); err != nil {
		a.log.Error("Не удалось удалить заметку", "note_id", id, "error", err)
		errs = append(errs, fmt.Errorf("ошибка удаления заметки %s: %w", id, err))
	}

	if err := a.Refresh(ctx); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// EditClicked загружает заметку в форму редактирования
func (a *App) EditClicked(ctx context.Context, id note.ID) error {
	return a.edit.LoadForEdit(ctx, id, a.form)
}

// UpdateClicked сохраняет форму в выбранную заметку
func (a *App) UpdateClicked(ctx context.Context) error {
	return a.edit.CommitEdit(ctx, a.form)
}

// SearchChanged отрисовывает отфильтрованный список без общего обновления
func (a *App) SearchChanged(ctx context.Context, term string) error {
	err := a.view.Query(ctx, func(ctx context.Context) ([]note.Note, error) {
		return a.notes.Search(ctx, term)
	})
	if err != nil {
		a.log.Error("Ошибка поиска", "term", term, "error", err)
		return fmt.Errorf("ошибка поиска: %w", err)
	}
	return nil
}

// CheckConnection проверяет доступность сервера
func (a *App) CheckConnection(ctx context.Context) error {
	return a.httpClient.HealthCheck(ctx, a.notes.UserID())
}

// Logout завершает сессию: все сохраненные значения истекают
func (a *App) Logout() error {
	if err := a.identity.Logout(); err != nil {
		return fmt.Errorf("ошибка выхода: %w", err)
	}
	a.log.Info("Выход выполнен")
	return nil
}

// Run выполняет fn, пока не получен сигнал завершения
func (a *App) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	err := fn(ctx)
	if errors.Is(err, context.Canceled) && ctx.Err() != nil {
		a.log.Info("Получен сигнал завершения")
		return nil
	}
	return err
}

// Shutdown останавливает отложенный поиск и закрывает хранилище сессии
func (a *App) Shutdown() error {
	a.search.Stop()
	if err := a.store.Close(); err != nil {
		return fmt.Errorf("ошибка закрытия хранилища сессии: %w", err)
	}
	a.log.Debug("Клиент завершил работу")
	return nil
}
