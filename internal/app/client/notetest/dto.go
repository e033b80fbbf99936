package notetest

import "notekeeper/internal/domain/note"

type listInput struct {
	UserID string `path:"userId" example:"1" doc:"ID пользователя"`
}

type listOutput struct {
	Body []note.Note
}

type createInput struct {
	UserID  string `path:"userId" example:"1" doc:"ID пользователя"`
	RawBody []byte
}

type noteOutput struct {
	Body *note.Note
}

type findInput struct {
	ID string `path:"noteId" example:"1" doc:"ID заметки"`
}

type updateInput struct {
	RawBody []byte
}
