package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"notekeeper/internal/app/client/edit"
	"notekeeper/internal/app/client/view"
	"notekeeper/internal/domain/note"
)

// ErrQuit завершает интерактивный режим
var ErrQuit = errors.New("quit")

// CardFinder ищет карточку в текущей отрисовке
type CardFinder interface {
	Find(id note.ID) (view.Card, bool)
}

const shellHelp = `Команды:
  ls                 обновить список
  add <текст>        создать заметку
  e <id>             выбрать заметку для редактирования
  save [текст]       сохранить выбранную заметку
  cancel             отменить редактирование
  d <id>             удалить заметку
  / [текст]          поиск (пустой текст - все заметки)
  logout             выйти из системы
  q                  выход`

// Shell - интерактивная страница заметок в терминале
type Shell struct {
	app   *App
	cards CardFinder
	form  edit.Form
	read  edit.LineReader
	out   io.Writer
	warn  *color.Color
}

// NewShell создает оболочку; form должна быть той же формой, что передана в New
func NewShell(app *App, cards CardFinder, form edit.Form, read edit.LineReader, out io.Writer) *Shell {
	return &Shell{
		app:   app,
		cards: cards,
		form:  form,
		read:  read,
		out:   out,
		warn:  color.New(color.FgRed),
	}
}

// Loop читает команды до выхода, конца ввода или отмены ctx
func (s *Shell) Loop(ctx context.Context) error {
	if err := s.app.Start(ctx); err != nil {
		s.warn.Fprintf(s.out, "Ошибка: %v\n", err)
	}
	fmt.Fprintln(s.out, "Введите help для списка команд")

	for {
		line, err := s.readLine(ctx, "notekeeper> ")
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if errors.Is(err, io.EOF) || errors.Is(err, edit.ErrInterrupted) {
				return nil
			}
			return fmt.Errorf("ошибка чтения команды: %w", err)
		}

		if err := s.Exec(ctx, line); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			s.warn.Fprintf(s.out, "Ошибка: %v\n", err)
		}
	}
}

type lineResult struct {
	line string
	err  error
}

// readLine ждет строку ввода или отмену ctx.
// После отмены чтение остается незавершенным до конца процесса.
func (s *Shell) readLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	res := make(chan lineResult, 1)
	go func() {
		line, err := s.read(prompt)
		res <- lineResult{line: line, err: err}
	}()

	select {
	case r := <-res:
		return r.line, r.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Exec выполняет одну команду
func (s *Shell) Exec(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case "help", "?":
		fmt.Fprintln(s.out, shellHelp)
		return nil
	case "ls", "list", "refresh":
		return s.app.Refresh(ctx)
	case "add":
		if arg == "" {
			return errors.New("укажите текст заметки")
		}
		input := edit.NewMemoryForm()
		input.SetBody(arg)
		_, err := s.app.Submit(ctx, input)
		return err
	case "e", "edit":
		card, err := s.card(arg)
		if err != nil {
			return err
		}
		if err := card.Edit(ctx); err != nil {
			return err
		}
		body, _ := s.form.Body()
		fmt.Fprintf(s.out, "Редактирование #%s: %s\n", card.ID, body)
		return nil
	case "save":
		if _, ok := s.app.EditSession().Target(); !ok {
			return edit.ErrNoSelection
		}
		if arg == "" {
			text, err := s.read("Новый текст (Enter - без изменений): ")
			if err != nil {
				return fmt.Errorf("ошибка чтения текста: %w", err)
			}
			arg = strings.TrimRight(text, "\r\n")
		}
		if arg != "" {
			s.form.SetBody(arg)
		}
		return s.app.UpdateClicked(ctx)
	case "cancel":
		s.app.EditSession().Cancel()
		return nil
	case "d", "rm", "delete":
		card, err := s.card(arg)
		if err != nil {
			return err
		}
		return card.Delete(ctx)
	case "/", "find", "search":
		return s.app.Search().Changed(ctx, arg)
	case "logout":
		if err := s.app.Logout(); err != nil {
			return err
		}
		fmt.Fprintln(s.out, "Сессия завершена")
		return ErrQuit
	case "q", "quit", "exit":
		return ErrQuit
	default:
		return fmt.Errorf("неизвестная команда %q, введите help", name)
	}
}

func (s *Shell) card(arg string) (view.Card, error) {
	if arg == "" {
		return view.Card{}, errors.New("укажите id заметки")
	}
	card, ok := s.cards.Find(note.ID(strings.TrimPrefix(arg, "#")))
	if !ok {
		return view.Card{}, fmt.Errorf("заметка %s не отображается, обновите список", arg)
	}
	return card, nil
}
