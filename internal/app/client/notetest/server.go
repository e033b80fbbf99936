// Package notetest поднимает в процессе поддельный REST-бэкенд заметок
// с тем же контрактом, что и настоящий сервер, для тестов клиента.
package notetest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"sync"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	"notekeeper/internal/domain/note"
)

// Идентификаторы операций для FailNext
const (
	OpList   = "notes-list-by-user"
	OpCreate = "notes-create"
	OpFind   = "notes-find"
	OpUpdate = "notes-update"
	OpDelete = "notes-delete"
)

// Request - запрос, дошедший до сервера
type Request struct {
	Method      string
	Path        string
	ContentType string
	Status      int
}

type Server struct {
	*httptest.Server

	log        *slog.Logger
	middleware huma.Middlewares

	mu       sync.Mutex
	nextID   int64
	notes    map[int64]note.Note
	failures map[string][]int
	requests []Request
	paused   []*pause
	all      []*pause

	// EmptyCreateBody заставляет создание отвечать 200 без тела
	EmptyCreateBody bool
}

// New запускает сервер; он останавливается вместе с тестом
func New(t interface{ Cleanup(func()) }, log *slog.Logger) *Server {
	s := &Server{
		log:      log,
		notes:    make(map[int64]note.Note),
		failures: make(map[string][]int),
	}
	s.middleware = huma.Middlewares{s.requestLogger(), s.failureInjector()}

	mux := chi.NewMux()
	api := humachi.New(mux, huma.DefaultConfig("Notes API", "1.0.0"))
	s.SetupRoutes(api)

	s.Server = httptest.NewServer(mux)
	t.Cleanup(func() {
		s.releaseAll()
		s.Close()
	})

	return s
}

func (s *Server) SetupRoutes(api huma.API) {
	huma.Register(api, s.listOp(), s.list)
	huma.Register(api, s.createOp(), s.create)
	huma.Register(api, s.findOp(), s.find)
	huma.Register(api, s.updateOp(), s.update)
	huma.Register(api, s.deleteOp(), s.delete)
}

// BaseURL возвращает корень ресурса заметок с завершающим слешем
func (s *Server) BaseURL() string {
	return s.URL + basePath + "/"
}

// FailNext заставляет следующие вызовы операции op ответить статусами statuses
func (s *Server) FailNext(op string, statuses ...int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[op] = append(s.failures[op], statuses...)
}

// Seed добавляет заметку напрямую в хранилище и возвращает ее
func (s *Server) Seed(owner note.UserID, body string) note.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insert(owner, body)
}

// Notes возвращает все заметки владельца в порядке создания
func (s *Server) Notes(owner note.UserID) []note.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.byOwner(owner)
}

// Requests возвращает журнал запросов
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

func (s *Server) record(r Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, r)
}

func (s *Server) failureInjector() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		op := ctx.Operation().OperationID

		s.mu.Lock()
		statuses := s.failures[op]
		var status int
		if len(statuses) > 0 {
			status, s.failures[op] = statuses[0], statuses[1:]
		}
		s.mu.Unlock()

		if status == 0 {
			next(ctx)
			return
		}

		ctx.SetHeader("Content-Type", "application/json")
		ctx.SetStatus(status)
		_ = json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{
			"error": http.StatusText(status),
		})
	}
}

// list снимает список до паузы: задержанный ответ содержит состояние на момент запроса
func (s *Server) list(ctx context.Context, input *listInput) (*listOutput, error) {
	s.mu.Lock()
	notes := s.byOwner(note.UserID(input.UserID))
	var p *pause
	if len(s.paused) > 0 {
		p, s.paused = s.paused[0], s.paused[1:]
	}
	s.mu.Unlock()

	if p != nil {
		close(p.started)
		select {
		case <-p.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return &listOutput{Body: notes}, nil
}

type pause struct {
	started chan struct{}
	release chan struct{}
	once    sync.Once
}

func (p *pause) resume() {
	p.once.Do(func() { close(p.release) })
}

// PauseNextList задерживает ответ следующего запроса списка.
// started закрывается, когда список уже снят; release отпускает ответ.
func (s *Server) PauseNextList() (started <-chan struct{}, release func()) {
	p := &pause{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}

	s.mu.Lock()
	s.paused = append(s.paused, p)
	s.all = append(s.all, p)
	s.mu.Unlock()

	return p.started, p.resume
}

func (s *Server) releaseAll() {
	s.mu.Lock()
	all := s.all
	s.mu.Unlock()

	for _, p := range all {
		p.resume()
	}
}

func (s *Server) create(_ context.Context, input *createInput) (*noteOutput, error) {
	var req note.CreateRequest
	if err := json.Unmarshal(input.RawBody, &req); err != nil {
		return nil, huma.Error400BadRequest("invalid body", err)
	}

	s.mu.Lock()
	created := s.insert(note.UserID(input.UserID), req.Body)
	empty := s.EmptyCreateBody
	s.mu.Unlock()

	if empty {
		return &noteOutput{}, nil
	}
	return &noteOutput{Body: &created}, nil
}

// find отвечает 200 с пустым телом для отсутствующей заметки, как исходный бэкенд
func (s *Server) find(_ context.Context, input *findInput) (*noteOutput, error) {
	id, err := strconv.ParseInt(input.ID, 10, 64)
	if err != nil {
		return nil, huma.Error400BadRequest("invalid note id", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notes[id]
	if !ok {
		return &noteOutput{}, nil
	}
	return &noteOutput{Body: &n}, nil
}

func (s *Server) update(_ context.Context, input *updateInput) (*struct{}, error) {
	var req note.UpdateRequest
	if err := json.Unmarshal(input.RawBody, &req); err != nil {
		return nil, huma.Error400BadRequest("invalid body", err)
	}

	id, err := strconv.ParseInt(string(req.ID), 10, 64)
	if err != nil {
		return nil, huma.Error400BadRequest("invalid note id", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notes[id]
	if !ok {
		return nil, huma.Error404NotFound("note not found")
	}
	n.Body = req.Body
	s.notes[id] = n

	return nil, nil
}

func (s *Server) delete(_ context.Context, input *findInput) (*struct{}, error) {
	id, err := strconv.ParseInt(input.ID, 10, 64)
	if err != nil {
		return nil, huma.Error400BadRequest("invalid note id", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.notes, id)
	return nil, nil
}

func (s *Server) insert(owner note.UserID, body string) note.Note {
	s.nextID++
	n := note.Note{
		ID:      note.ID(strconv.FormatInt(s.nextID, 10)),
		Body:    body,
		OwnerID: owner,
	}
	s.notes[s.nextID] = n
	return n
}

func (s *Server) byOwner(owner note.UserID) []note.Note {
	ids := make([]int64, 0, len(s.notes))
	for id, n := range s.notes {
		if n.OwnerID == owner {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	notes := make([]note.Note, 0, len(ids))
	for _, id := range ids {
		notes = append(notes, s.notes[id])
	}
	return notes
}
