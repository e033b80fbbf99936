package note

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ID - непрозрачный идентификатор заметки, назначается сервером
type ID string

// UserID - идентификатор владельца заметок
type UserID string

type Note struct {
	ID      ID     `json:"id"`
	Body    string `json:"body"`
	OwnerID UserID `json:"ownerId,omitempty"`
}

func (id ID) String() string {
	return string(id)
}

func (id ID) IsZero() bool {
	return id == ""
}

// MarshalJSON кодирует числовые идентификаторы числом, остальные строкой
func (id ID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id *ID) UnmarshalJSON(data []byte) error {
	s, err := scalar(data)
	if err != nil {
		return fmt.Errorf("note id: %w", err)
	}
	*id = ID(s)
	return nil
}

func (u UserID) String() string {
	return string(u)
}

func (u *UserID) UnmarshalJSON(data []byte) error {
	s, err := scalar(data)
	if err != nil {
		return fmt.Errorf("owner id: %w", err)
	}
	*u = UserID(s)
	return nil
}

// scalar принимает JSON-строку, число или null
func scalar(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return "", nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return s, nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return "", err
	}
	return n.String(), nil
}
