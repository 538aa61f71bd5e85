package dto

import (
	"time"

	"github.com/PRV99/online-notes-app/internal/domain/entities"
)

// CreateNoteRequest содержит данные для создания заметки.
// Поле владельца от клиента не принимается.
type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Tag     string `json:"tag"`
}

// UpdateNoteRequest содержит данные для обновления заметки.
// Пустые поля трактуются как "не переданы".
type UpdateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Tag     string `json:"tag"`
}

// NoteResponse представляет заметку в ответе API.
// Имена полей повторяют контракт API (_id, user).
type NoteResponse struct {
	ID        string    `json:"_id"`
	UserID    string    `json:"user"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tag       string    `json:"tag,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MessageResponse - ответ с единственным текстовым сообщением.
type MessageResponse struct {
	Message string `json:"message"`
}

// NoteFromEntity преобразует доменную заметку в представление API.
func NoteFromEntity(note *entities.Note) *NoteResponse {
	return &NoteResponse{
		ID:        note.ID,
		UserID:    note.UserID,
		Title:     note.Title,
		Content:   note.Content,
		Tag:       note.Tag,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}

// NotesFromEntities преобразует список доменных заметок в представление API.
func NotesFromEntities(notes []*entities.Note) []*NoteResponse {
	out := make([]*NoteResponse, 0, len(notes))
	for _, note := range notes {
		out = append(out, NoteFromEntity(note))
	}
	return out
}
