package edit

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"notekeeper/internal/domain/note"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Get(ctx context.Context, id note.ID) (note.Note, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(note.Note), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id note.ID, body string) error {
	args := m.Called(ctx, id, body)
	return args.Error(0)
}

type MockRefresher struct {
	mock.Mock
}

func (m *MockRefresher) Refresh(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type brokenForm struct{}

func (brokenForm) SetBody(string) {}

func (brokenForm) Body() (string, error) {
	return "", ErrFormClosed
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSession_LoadForEdit(t *testing.T) {
	ctx := context.Background()
	repo := &MockRepository{}
	s := NewSession(repo, nil, discardLogger())
	form := NewMemoryForm()

	assert.Equal(t, Idle, s.State())

	repo.On("Get", ctx, note.ID("1")).Return(note.Note{ID: "1", Body: "buy milk"}, nil).Once()
	require.NoError(t, s.LoadForEdit(ctx, "1", form))

	body, err := form.Body()
	require.NoError(t, err)
	assert.Equal(t, "buy milk", body)
	assert.Equal(t, Loaded, s.State())
	target, ok := s.Target()
	assert.True(t, ok)
	assert.Equal(t, note.ID("1"), target)

	// выбор другой заметки заменяет предыдущий
	repo.On("Get", ctx, note.ID("2")).Return(note.Note{ID: "2", Body: "call mom"}, nil).Once()
	require.NoError(t, s.LoadForEdit(ctx, "2", form))
	target, _ = s.Target()
	assert.Equal(t, note.ID("2"), target)

	repo.AssertExpectations(t)
}

func TestSession_LoadForEdit_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := &MockRepository{}
	s := NewSession(repo, nil, discardLogger())
	form := NewMemoryForm()
	form.SetBody("draft")

	repo.On("Get", ctx, note.ID("9")).Return(note.Note{}, note.ErrNotFound).Once()
	err := s.LoadForEdit(ctx, "9", form)
	require.Error(t, err)
	assert.ErrorIs(t, err, note.ErrNotFound)

	body, _ := form.Body()
	assert.Equal(t, "draft", body)
	assert.Equal(t, Idle, s.State())
}

func TestSession_CommitEdit(t *testing.T) {
	ctx := context.Background()
	repo := &MockRepository{}
	refresher := &MockRefresher{}
	s := NewSession(repo, refresher, discardLogger())
	form := NewMemoryForm()

	repo.On("Get", ctx, note.ID("1")).Return(note.Note{ID: "1", Body: "buy milk"}, nil).Once()
	require.NoError(t, s.LoadForEdit(ctx, "1", form))

	form.SetBody("buy oat milk")
	repo.On("Update", ctx, note.ID("1"), "buy oat milk").Return(nil).Once()
	refresher.On("Refresh", ctx).Return(nil).Once()

	require.NoError(t, s.CommitEdit(ctx, form))
	assert.Equal(t, Idle, s.State())
	_, ok := s.Target()
	assert.False(t, ok)

	repo.AssertExpectations(t)
	refresher.AssertExpectations(t)
}

func TestSession_CommitEdit_NoSelection(t *testing.T) {
	repo := &MockRepository{}
	refresher := &MockRefresher{}
	s := NewSession(repo, refresher, discardLogger())

	err := s.CommitEdit(context.Background(), NewMemoryForm())
	assert.ErrorIs(t, err, ErrNoSelection)

	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	refresher.AssertNotCalled(t, "Refresh", mock.Anything)
}

func TestSession_CommitEdit_UpdateFailure(t *testing.T) {
	ctx := context.Background()
	repo := &MockRepository{}
	refresher := &MockRefresher{}
	s := NewSession(repo, refresher, discardLogger())
	form := NewMemoryForm()

	repo.On("Get", ctx, note.ID("1")).Return(note.Note{ID: "1", Body: "a"}, nil).Once()
	require.NoError(t, s.LoadForEdit(ctx, "1", form))

	repo.On("Update", ctx, note.ID("1"), "a").Return(note.ErrNetwork).Once()
	refresher.On("Refresh", ctx).Return(nil).Once()

	err := s.CommitEdit(ctx, form)
	require.Error(t, err)
	assert.ErrorIs(t, err, note.ErrNetwork)

	// выбор сброшен, список все равно обновлен
	assert.Equal(t, Idle, s.State())
	refresher.AssertExpectations(t)
}

func TestSession_CommitEdit_FormError(t *testing.T) {
	ctx := context.Background()
	repo := &MockRepository{}
	s := NewSession(repo, nil, discardLogger())

	repo.On("Get", ctx, note.ID("1")).Return(note.Note{ID: "1", Body: "a"}, nil).Once()
	require.NoError(t, s.LoadForEdit(ctx, "1", NewMemoryForm()))

	err := s.CommitEdit(ctx, brokenForm{})
	assert.True(t, errors.Is(err, ErrFormClosed))
	assert.Equal(t, Loaded, s.State())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestSession_Cancel(t *testing.T) {
	ctx := context.Background()
	repo := &MockRepository{}
	s := NewSession(repo, nil, discardLogger())

	repo.On("Get", ctx, note.ID("1")).Return(note.Note{ID: "1"}, nil).Once()
	require.NoError(t, s.LoadForEdit(ctx, "1", NewMemoryForm()))

	s.Cancel()
	assert.Equal(t, Idle, s.State())
	assert.ErrorIs(t, s.CommitEdit(ctx, NewMemoryForm()), ErrNoSelection)
}
