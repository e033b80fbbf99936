package types

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"notekeeper/internal/app/client/edit"
)

// Console - строковый ввод и вывод команды.
// В терминале ввод идет через x/term, иначе построчно из stdin.
type Console struct {
	Out     io.Writer
	Read    edit.LineReader
	restore func()
}

// OpenConsole открывает консоль; Close обязателен
func OpenConsole(in *os.File, out io.Writer) (*Console, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return lineConsole(in, out), nil
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("ошибка перевода терминала в raw-режим: %w", err)
	}

	// в raw-режиме Ctrl-C не порождает SIGINT, поэтому перехватываем его во вводе
	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{&interruptReader{r: in}, out}, "")

	if width, height, err := term.GetSize(fd); err == nil {
		_ = t.SetSize(width, height)
	}

	return &Console{
		Out: t,
		Read: func(prompt string) (string, error) {
			t.SetPrompt(prompt)
			return t.ReadLine()
		},
		restore: func() { _ = term.Restore(fd, state) },
	}, nil
}

func lineConsole(in io.Reader, out io.Writer) *Console {
	r := bufio.NewReader(in)
	return &Console{
		Out: out,
		Read: func(prompt string) (string, error) {
			fmt.Fprint(out, prompt)
			line, err := r.ReadString('\n')
			if err != nil {
				if errors.Is(err, io.EOF) && line != "" {
					return line, nil
				}
				return "", err
			}
			return line, nil
		},
		restore: func() {},
	}
}

const keyCtrlC = 3

// interruptReader обрывает поток ввода на Ctrl-C ошибкой edit.ErrInterrupted
type interruptReader struct {
	r           io.Reader
	interrupted bool
}

func (i *interruptReader) Read(p []byte) (int, error) {
	if i.interrupted {
		return 0, edit.ErrInterrupted
	}

	n, err := i.r.Read(p)
	if idx := bytes.IndexByte(p[:n], keyCtrlC); idx >= 0 {
		i.interrupted = true
		if idx == 0 {
			return 0, edit.ErrInterrupted
		}
		return idx, nil
	}
	return n, err
}

// Close возвращает терминал в исходный режим
func (c *Console) Close() {
	c.restore()
}
