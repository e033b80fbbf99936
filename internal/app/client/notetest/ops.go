package notetest

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

const basePath = "/api/v1/notes"

func (s *Server) listOp() huma.Operation {
	return huma.Operation{
		OperationID:   "notes-list-by-user",
		Method:        http.MethodGet,
		Path:          basePath + "/user/{userId}",
		Summary:       "Заметки пользователя",
		Tags:          []string{"notes"},
		DefaultStatus: http.StatusOK,
		Middlewares:   s.middleware,
	}
}

func (s *Server) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "notes-create",
		Method:        http.MethodPost,
		Path:          basePath + "/user/{userId}",
		Summary:       "Создать заметку",
		Tags:          []string{"notes"},
		DefaultStatus: http.StatusOK,
		Middlewares:   s.middleware,
	}
}

func (s *Server) findOp() huma.Operation {
	return huma.Operation{
		OperationID:   "notes-find",
		Method:        http.MethodGet,
		Path:          basePath + "/{noteId}",
		Summary:       "Получить заметку",
		Tags:          []string{"notes"},
		DefaultStatus: http.StatusOK,
		Middlewares:   s.middleware,
	}
}

func (s *Server) updateOp() huma.Operation {
	return huma.Operation{
		OperationID:   "notes-update",
		Method:        http.MethodPut,
		Path:          basePath + "/",
		Summary:       "Обновить заметку",
		Tags:          []string{"notes"},
		DefaultStatus: http.StatusOK,
		Middlewares:   s.middleware,
	}
}

func (s *Server) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "notes-delete",
		Method:        http.MethodDelete,
		Path:          basePath + "/{noteId}",
		Summary:       "Удалить заметку",
		Tags:          []string{"notes"},
		DefaultStatus: http.StatusOK,
		Middlewares:   s.middleware,
	}
}
