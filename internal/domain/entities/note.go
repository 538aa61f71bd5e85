package entities

import (
	"errors"
	"time"
)

// Ошибки домена заметок.
var (
	ErrNoteNotFound    = errors.New("note not found")
	ErrNotOwner        = errors.New("not authorized")
	ErrTitleTooShort   = errors.New("title must be at least 3 characters")
	ErrContentTooShort = errors.New("content must be at least 5 characters")
)

// Минимальные длины полей заметки.
const (
	MinTitleLength   = 3
	MinContentLength = 5
)

// Note представляет собой заметку пользователя.
// Владелец устанавливается при создании и не изменяется.
type Note struct {
	ID        string
	UserID    string
	Title     string
	Content   string
	Tag       string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewNote создает новую заметку для указанного владельца.
func NewNote(userID, title, content, tag string) *Note {
	now := time.Now()
	return &Note{
		UserID:    userID,
		Title:     title,
		Content:   content,
		Tag:       tag,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsOwnedBy сообщает, принадлежит ли заметка указанному пользователю.
func (n *Note) IsOwnedBy(userID string) bool {
	return n.UserID == userID
}
