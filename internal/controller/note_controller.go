package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rodobkn/notes-backend-course/internal/dto"
	"github.com/rodobkn/notes-backend-course/internal/pkg/serverutils"
	"github.com/rodobkn/notes-backend-course/internal/service"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Summarize(ctx *fiber.Ctx) error
	Profile(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService service.INoteService
}

func NewNoteController(noteService service.INoteService) INoteController {
	return &noteController{
		noteService: noteService,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/notes")
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	// Static segment first so "profile" is never captured as a note id.
	h.Get("profile/ia", c.Profile)
	h.Get(":id", c.Show)
	h.Patch(":id", c.Update)
	h.Delete(":id", c.Delete)
	h.Get(":id/summary", c.Summarize)
}

func (c *noteController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.noteService.GetAll(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(dto.NotesEnvelope{Notes: res})
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewUnprocessableEntityError(err.Error())
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(dto.NoteEnvelope{Note: res})
}

func (c *noteController) Show(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	res, err := c.noteService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(dto.NoteEnvelope{Note: res})
}

func (c *noteController) Update(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var req dto.UpdateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewUnprocessableEntityError(err.Error())
	}

	res, err := c.noteService.Update(ctx.Context(), id, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(dto.NoteEnvelope{Note: res})
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	message, err := c.noteService.Delete(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(dto.MessageResponse{Message: message})
}

func (c *noteController) Summarize(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	summary, err := c.noteService.Summarize(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(dto.SummaryResponse{Summary: summary})
}

func (c *noteController) Profile(ctx *fiber.Ctx) error {
	profile, err := c.noteService.Profile(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(dto.ProfileResponse{Profile: profile})
}
