package note

// CreateRequest - тело POST {base}/user/{userId}
type CreateRequest struct {
	Body string `json:"body"`
}

// UpdateRequest - тело PUT {base}
type UpdateRequest struct {
	ID   ID     `json:"id"`
	Body string `json:"body"`
}
