package identity

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"notekeeper/internal/domain/note"
)

// MockStore is a mock implementation of the Store interface for testing
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Get(name string) (Entry, error) {
	args := m.Called(name)
	return args.Get(0).(Entry), args.Error(1)
}

func (m *MockStore) Set(entry Entry) error {
	args := m.Called(entry)
	return args.Error(0)
}

func (m *MockStore) Names() ([]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockStore) Close() error {
	return m.Called().Error(0)
}

func newSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(context.Background(), filepath.Join(t.TempDir(), "session.db"), slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestProvider_Stores(t *testing.T) {
	stores := map[string]func(t *testing.T) Store{
		"memory": func(t *testing.T) Store { return NewMemoryStore() },
		"sqlite": func(t *testing.T) Store { return newSQLiteStore(t) },
	}

	for name, newStore := range stores {
		t.Run(name, func(t *testing.T) {
			p := NewProvider(newStore(t), slog.Default())

			t.Run("NoSession_BeforeLogin", func(t *testing.T) {
				_, err := p.CurrentUserID()
				assert.ErrorIs(t, err, ErrNoSession)
			})

			t.Run("Login_ThenCurrent", func(t *testing.T) {
				session, err := p.Login("42", time.Hour)
				require.NoError(t, err)
				assert.Equal(t, note.UserID("42"), session.UserID)

				current, err := p.Current()
				require.NoError(t, err)
				assert.Equal(t, session, current)
			})

			t.Run("Logout_ClearsEverything", func(t *testing.T) {
				require.NoError(t, p.store.Set(Entry{Name: "theme", Value: "dark", ExpiresAt: time.Now().Add(time.Hour)}))

				require.NoError(t, p.Logout())

				_, err := p.CurrentUserID()
				assert.ErrorIs(t, err, ErrNoSession)

				_, err = p.store.Get("theme")
				assert.ErrorIs(t, err, ErrEntryNotFound)
			})
		})
	}
}

func TestProvider_CurrentUserID_Expired(t *testing.T) {
	store := NewMemoryStore()
	p := NewProvider(store, slog.Default())

	require.NoError(t, store.Set(Entry{Name: SessionKey, Value: "42", ExpiresAt: time.Now().Add(-time.Minute)}))

	_, err := p.CurrentUserID()
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestProvider_CurrentUserID_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "empty", value: ""},
		{name: "spaces", value: "4 2"},
		{name: "cookie separator", value: "42; theme"},
		{name: "nested pair", value: "a=b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMemoryStore()
			p := NewProvider(store, slog.Default())
			require.NoError(t, store.Set(Entry{Name: SessionKey, Value: tt.value, ExpiresAt: time.Now().Add(time.Hour)}))

			_, err := p.CurrentUserID()
			assert.ErrorIs(t, err, ErrNoSession)
		})
	}
}

func TestProvider_Login_Invalid(t *testing.T) {
	p := NewProvider(NewMemoryStore(), slog.Default())

	_, err := p.Login("", time.Hour)
	assert.Error(t, err)

	_, err = p.Login("42", 0)
	assert.Error(t, err)
}

func TestProvider_Logout_ContinuesOnError(t *testing.T) {
	store := new(MockStore)
	p := NewProvider(store, slog.Default())

	store.On("Names").Return([]string{"a", SessionKey, "z"}, nil)
	store.On("Set", Entry{Name: "a", ExpiresAt: expiredAt}).Return(nil)
	store.On("Set", Entry{Name: SessionKey, ExpiresAt: expiredAt}).Return(errors.New("disk full"))
	store.On("Set", Entry{Name: "z", ExpiresAt: expiredAt}).Return(nil)

	err := p.Logout()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	store.AssertExpectations(t)
}

func TestProvider_Logout_NamesError(t *testing.T) {
	store := new(MockStore)
	p := NewProvider(store, slog.Default())

	store.On("Names").Return(nil, errors.New("locked"))

	err := p.Logout()
	assert.Error(t, err)
	store.AssertNotCalled(t, "Set", mock.Anything)
}

func TestOpen_FallsBackToMemory(t *testing.T) {
	store := Open(context.Background(), filepath.Join(t.TempDir(), "missing", "dir", "session.db"), slog.Default())
	defer store.Close()

	_, ok := store.(*MemoryStore)
	assert.True(t, ok)
}

func TestSQLiteStore_Names(t *testing.T) {
	store := newSQLiteStore(t)

	require.NoError(t, store.Set(Entry{Name: "b", Value: "2", ExpiresAt: time.Now().Add(time.Hour)}))
	require.NoError(t, store.Set(Entry{Name: "a", Value: "1", ExpiresAt: time.Now().Add(time.Hour)}))
	require.NoError(t, store.Set(Entry{Name: "a", Value: "3", ExpiresAt: time.Now().Add(time.Hour)}))

	names, err := store.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)

	entry, err := store.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "3", entry.Value)
}
