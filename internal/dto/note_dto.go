package dto

import (
	"time"
)

type CreateNoteRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// UpdateNoteRequest carries the PATCH body. Pointer fields distinguish an
// omitted field (nil, leave unchanged) from an explicit empty string, which
// clears the field.
type UpdateNoteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type NoteResponse struct {
	Id        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type NotesEnvelope struct {
	Notes []*NoteResponse `json:"notes"`
}

type NoteEnvelope struct {
	Note *NoteResponse `json:"note"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type SummaryResponse struct {
	Summary string `json:"summary"`
}

type ProfileResponse struct {
	Profile string `json:"profile"`
}
