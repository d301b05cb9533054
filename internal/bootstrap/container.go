package bootstrap

import (
	"cloud.google.com/go/firestore"

	"github.com/rodobkn/notes-backend-course/internal/config"
	"github.com/rodobkn/notes-backend-course/internal/constant"
	"github.com/rodobkn/notes-backend-course/internal/controller"
	"github.com/rodobkn/notes-backend-course/internal/pkg/logger"
	"github.com/rodobkn/notes-backend-course/internal/repository/implementation"
	"github.com/rodobkn/notes-backend-course/internal/service"
	"github.com/rodobkn/notes-backend-course/pkg/llm/gemini"
)

type Container struct {
	// Controllers
	NoteController controller.INoteController

	// Core Facades
	Logger logger.ILogger
}

func NewContainer(fsClient *firestore.Client, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Clients
	llmProvider := gemini.NewProvider(cfg.Keys.GoogleGemini, constant.GeminiModel)

	// 3. Repositories
	noteRepository := implementation.NewNoteRepository(fsClient)

	// 4. Services
	noteService := service.NewNoteService(noteRepository, llmProvider, sysLogger)

	return &Container{
		NoteController: controller.NewNoteController(noteService),
		Logger:         sysLogger,
	}
}
