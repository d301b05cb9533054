package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rodobkn/notes-backend-course/internal/constant"
	"github.com/rodobkn/notes-backend-course/internal/dto"
	"github.com/rodobkn/notes-backend-course/internal/entity"
	"github.com/rodobkn/notes-backend-course/internal/pkg/logger"
	"github.com/rodobkn/notes-backend-course/internal/pkg/serverutils"
	"github.com/rodobkn/notes-backend-course/internal/repository/contract"
	"github.com/rodobkn/notes-backend-course/pkg/llm"
)

type INoteService interface {
	GetAll(ctx context.Context) ([]*dto.NoteResponse, error)
	Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	Show(ctx context.Context, id string) (*dto.NoteResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, id string) (string, error)
	Summarize(ctx context.Context, id string) (string, error)
	Profile(ctx context.Context) (string, error)
}

type noteService struct {
	noteRepository contract.NoteRepository
	llmProvider    llm.Provider
	logger         logger.ILogger
}

func NewNoteService(
	noteRepository contract.NoteRepository,
	llmProvider llm.Provider,
	sysLogger logger.ILogger,
) INoteService {
	return &noteService{
		noteRepository: noteRepository,
		llmProvider:    llmProvider,
		logger:         sysLogger,
	}
}

func (s *noteService) GetAll(ctx context.Context) ([]*dto.NoteResponse, error) {
	notes, err := s.noteRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.NoteResponse, 0, len(notes))
	for _, note := range notes {
		res = append(res, toNoteResponse(note))
	}
	return res, nil
}

func (s *noteService) Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	note, err := s.noteRepository.Create(ctx, req.Title, req.Content)
	if err != nil {
		return nil, err
	}

	return toNoteResponse(note), nil
}

func (s *noteService) Show(ctx context.Context, id string) (*dto.NoteResponse, error) {
	note, err := s.noteRepository.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, serverutils.NewNotFoundError("Note not found")
	}

	return toNoteResponse(note), nil
}

func (s *noteService) Update(ctx context.Context, id string, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	note, err := s.noteRepository.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, serverutils.NewNotFoundError("Note not found")
	}

	// No read-modify-write guard: concurrent updates race and the last
	// write wins.
	updated, err := s.noteRepository.Update(ctx, id, req.Title, req.Content)
	if err != nil {
		return nil, err
	}

	return toNoteResponse(updated), nil
}

func (s *noteService) Delete(ctx context.Context, id string) (string, error) {
	note, err := s.noteRepository.FindOne(ctx, id)
	if err != nil {
		return "", err
	}
	if note == nil {
		return "", serverutils.NewNotFoundError("Note not found")
	}

	if err := s.noteRepository.Delete(ctx, id); err != nil {
		return "", err
	}

	return fmt.Sprintf("Note with ID %s deleted", id), nil
}

func (s *noteService) Summarize(ctx context.Context, id string) (string, error) {
	note, err := s.noteRepository.FindOne(ctx, id)
	if err != nil {
		return "", err
	}
	if note == nil {
		return "", serverutils.NewNotFoundError(fmt.Sprintf("Note with ID %s not found", id))
	}

	prompt := fmt.Sprintf(constant.SummarizeNotePromptV1, note.Title, note.Content)

	summary, err := s.llmProvider.Generate(ctx, prompt)
	if err != nil {
		s.logger.Error("note_service", "Failed to generate summary", map[string]interface{}{
			"note_id": id,
			"error":   err.Error(),
		})
		return "", serverutils.NewUpstreamError(fmt.Sprintf("Error generating summary for note %s", id), err)
	}

	return summary, nil
}

func (s *noteService) Profile(ctx context.Context) (string, error) {
	notes, err := s.noteRepository.FindAll(ctx)
	if err != nil {
		return "", err
	}
	if len(notes) == 0 {
		return "", serverutils.NewNotFoundError("No notes to analyze")
	}

	var combined strings.Builder
	for _, note := range notes {
		combined.WriteString(fmt.Sprintf("Title: %s\nContent: %s\n\n", note.Title, note.Content))
	}

	prompt := fmt.Sprintf(constant.ProfileNotesPromptV1, combined.String())

	profile, err := s.llmProvider.Generate(ctx, prompt)
	if err != nil {
		s.logger.Error("note_service", "Failed to generate profile", map[string]interface{}{
			"note_count": len(notes),
			"error":      err.Error(),
		})
		return "", serverutils.NewUpstreamError("Error generating profile from notes", err)
	}

	return profile, nil
}

func toNoteResponse(note *entity.Note) *dto.NoteResponse {
	return &dto.NoteResponse{
		Id:        note.Id,
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}
