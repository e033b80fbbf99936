package client

import (
	"context"

	"notekeeper/internal/app/client/identity"
	"notekeeper/internal/domain/note"
)

// Notes - клиент заметок, привязанный к сессии пользователя
type Notes struct {
	repo    Repository
	session identity.Session
}

// Bind привязывает репозиторий к установленной сессии
func Bind(repo Repository, session identity.Session) *Notes {
	return &Notes{
		repo:    repo,
		session: session,
	}
}

func (n *Notes) Session() identity.Session {
	return n.session
}

func (n *Notes) UserID() note.UserID {
	return n.session.UserID
}

func (n *Notes) List(ctx context.Context) ([]note.Note, error) {
	return n.repo.ListByUser(ctx, n.session.UserID)
}

func (n *Notes) Get(ctx context.Context, id note.ID) (note.Note, error) {
	return n.repo.GetByID(ctx, id)
}

func (n *Notes) Create(ctx context.Context, body string) (note.Note, error) {
	return n.repo.Create(ctx, n.session.UserID, body)
}

func (n *Notes) Update(ctx context.Context, id note.ID, body string) error {
	return n.repo.Update(ctx, id, body)
}

func (n *Notes) Remove(ctx context.Context, id note.ID) error {
	return n.repo.Remove(ctx, id)
}

func (n *Notes) Search(ctx context.Context, term string) ([]note.Note, error) {
	return n.repo.Search(ctx, n.session.UserID, term)
}
