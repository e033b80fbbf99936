package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/exp/slog"

	"notekeeper/internal/app/client/config"
	"notekeeper/internal/domain/note"
)

// Repository - операции над удаленным хранилищем заметок.
// Каждый вызов выполняет ровно один HTTP-запрос (Search - один запрос списка).
type Repository interface {
	ListByUser(ctx context.Context, userID note.UserID) ([]note.Note, error)
	GetByID(ctx context.Context, noteID note.ID) (note.Note, error)
	Create(ctx context.Context, userID note.UserID, body string) (note.Note, error)
	Update(ctx context.Context, noteID note.ID, body string) error
	Remove(ctx context.Context, noteID note.ID) error
	Search(ctx context.Context, userID note.UserID, term string) ([]note.Note, error)
}

type HTTPClient struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	userAgent string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) *HTTPClient {
	return NewHTTPClientWithBase(cfg.BaseURL(), cfg.RequestTimeout, log)
}

// NewHTTPClientWithBase создает клиент для произвольного корня ресурса заметок.
// Нулевой timeout означает отсутствие ограничения по времени.
func NewHTTPClientWithBase(baseURL string, timeout time.Duration, log *slog.Logger) *HTTPClient {
	client := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	if baseURL != "" && baseURL[len(baseURL)-1] != '/' {
		baseURL += "/"
	}

	return &HTTPClient{
		client:    client,
		log:       log.With("component", "notes_client"),
		baseURL:   baseURL,
		userAgent: "NoteKeeper-Client/1.0",
	}
}

// ListByUser получает все заметки пользователя.
// При ошибке возвращается nil, а не пустой список.
func (h *HTTPClient) ListByUser(ctx context.Context, userID note.UserID) ([]note.Note, error) {
	const op = "list notes"

	resp, err := h.doRequest(ctx, op, http.MethodGet, "user/"+url.PathEscape(string(userID)), nil)
	if err != nil {
		return nil, err
	}

	notes := []note.Note{}
	if err := h.parseResponse(op, resp, &notes); err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []note.Note{}
	}

	notes, err = note.Owned(notes, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return notes, nil
}

// GetByID получает одну заметку.
// 404 и пустой ответ (null) означают отсутствие заметки.
func (h *HTTPClient) GetByID(ctx context.Context, noteID note.ID) (note.Note, error) {
	const op = "get note"

	resp, err := h.doRequest(ctx, op, http.MethodGet, url.PathEscape(string(noteID)), nil)
	if err != nil {
		return note.Note{}, err
	}

	if resp.StatusCode == http.StatusNotFound {
		resp.Body.Close()
		return note.Note{}, h.requestError(op, resp, note.ErrNotFound, nil)
	}

	var result *note.Note
	if err := h.parseResponse(op, resp, &result); err != nil {
		return note.Note{}, err
	}
	if result == nil {
		return note.Note{}, h.requestError(op, resp, note.ErrNotFound, nil)
	}
	if result.ID.IsZero() {
		result.ID = noteID
	}

	return *result, nil
}

// Create создает заметку пользователя.
// Сервер может ответить пустым телом, тогда ID остается пустым.
func (h *HTTPClient) Create(ctx context.Context, userID note.UserID, body string) (note.Note, error) {
	const op = "create note"

	resp, err := h.doRequest(ctx, op, http.MethodPost, "user/"+url.PathEscape(string(userID)), note.CreateRequest{Body: body})
	if err != nil {
		return note.Note{}, err
	}

	var created *note.Note
	if err := h.parseResponse(op, resp, &created); err != nil {
		return note.Note{}, err
	}
	if created == nil {
		return note.Note{Body: body, OwnerID: userID}, nil
	}
	if created.OwnerID == "" {
		created.OwnerID = userID
	}

	return *created, nil
}

// Update заменяет тело заметки, тело ответа не анализируется
func (h *HTTPClient) Update(ctx context.Context, noteID note.ID, body string) error {
	const op = "update note"

	resp, err := h.doRequest(ctx, op, http.MethodPut, "", note.UpdateRequest{ID: noteID, Body: body})
	if err != nil {
		return err
	}

	return h.parseResponse(op, resp, nil)
}

// Remove удаляет заметку
func (h *HTTPClient) Remove(ctx context.Context, noteID note.ID) error {
	const op = "delete note"

	resp, err := h.doRequest(ctx, op, http.MethodDelete, url.PathEscape(string(noteID)), nil)
	if err != nil {
		return err
	}

	return h.parseResponse(op, resp, nil)
}

// Search заново получает список пользователя и фильтрует его на клиенте
func (h *HTTPClient) Search(ctx context.Context, userID note.UserID, term string) ([]note.Note, error) {
	notes, err := h.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return note.Filter(notes, term), nil
}

// HealthCheck проверяет доступность сервера запросом списка пользователя
func (h *HTTPClient) HealthCheck(ctx context.Context, userID note.UserID) error {
	_, err := h.ListByUser(ctx, userID)
	return err
}

func (h *HTTPClient) doRequest(ctx context.Context, op, method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("ошибка маршалинга тела запроса: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", h.userAgent)

	h.log.Debug("Отправка запроса",
		"method", method,
		"url", req.URL.String(),
	)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, &note.RequestError{
			Op:     op,
			Method: method,
			URL:    req.URL.String(),
			Err:    note.ErrNetwork,
			Cause:  err,
		}
	}

	return resp, nil
}

func (h *HTTPClient) parseResponse(op string, resp *http.Response, result interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return h.requestError(op, resp, note.ErrNetwork, fmt.Errorf("ошибка чтения ответа: %w", err))
	}

	h.log.Debug("Получен ответ",
		"status", resp.StatusCode,
		"body", string(body),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
			return h.requestError(op, resp, note.ErrNetwork, fmt.Errorf("ошибка сервера: %s", errResp.Error))
		}
		return h.requestError(op, resp, note.ErrNetwork, nil)
	}

	if result != nil && len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, result); err != nil {
			return h.requestError(op, resp, note.ErrInvalidPayload, fmt.Errorf("ошибка парсинга ответа: %w", err))
		}
	}

	return nil
}

func (h *HTTPClient) requestError(op string, resp *http.Response, kind, cause error) error {
	return &note.RequestError{
		Op:     op,
		Method: resp.Request.Method,
		URL:    resp.Request.URL.String(),
		Status: resp.StatusCode,
		Err:    kind,
		Cause:  cause,
	}
}
