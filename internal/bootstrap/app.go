package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	googleauth "interview-backend/internal/auth"
	"interview-backend/internal/documents"
	"interview-backend/internal/evaluation"
	"interview-backend/internal/history"
	"interview-backend/internal/interviews"
	"interview-backend/internal/llm"
	openai "interview-backend/internal/llm/openai"
	"interview-backend/internal/shared/config"
	"interview-backend/internal/shared/server"
	"interview-backend/internal/shared/storage/db"
	"interview-backend/internal/shared/storage/object"
	localstore "interview-backend/internal/shared/storage/object/local"
	"interview-backend/internal/transcribe"
	"interview-backend/internal/usage"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore

	DocumentsRepo  documents.DocumentsRepo
	InterviewsRepo interviews.InterviewsRepo
	HistoryRepo    history.HistoryRepo

	DocumentsService  *documents.Service
	InterviewsService *interviews.Service
	HistoryService    *history.Service
	UsageService      *usage.Service

	LLM         llm.Client
	Transcriber transcribe.Transcriber
	GoogleAuth  *googleauth.GoogleService
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  localstore.New(cfg.LocalStoreDir),
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:            app.Config,
		DocumentHandler:   documents.NewHandler(app.DocumentsService),
		InterviewHandler:  interviews.NewHandler(app.InterviewsService),
		TranscribeHandler: transcribe.NewHandler(app.Transcriber),
		HistoryHandler:    history.NewHandler(app.HistoryService),
		UsageHandler:      usage.NewHandler(app.UsageService),
		GoogleAuth:        app.GoogleAuth,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			sqlDB.Close()
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(app *App) error {
	var docRepo documents.DocumentsRepo
	var interviewRepo interviews.InterviewsRepo
	var historyRepo history.HistoryRepo
	var usageSvc *usage.Service

	if app.DB != nil {
		docRepo = &documents.PGRepo{DB: app.DB}
		interviewRepo = &interviews.PGRepo{DB: app.DB}
		historyRepo = &history.PGRepo{DB: app.DB}
		usageSvc = usage.NewPostgresService(usage.NewPGStore(app.DB))
	} else {
		docRepo = documents.NewMemoryRepo()
		interviewRepo = interviews.NewMemoryRepo()
		historyRepo = history.NewMemoryRepo()
		usageSvc = usage.NewService()
	}

	llmClient := llm.Client(llm.PlaceholderClient{})
	transcriber := transcribe.Transcriber(transcribe.Disabled{})
	apiKey := os.Getenv("OPENAI_API_KEY")
	if app.Config.LLMProvider == "openai" && strings.TrimSpace(apiKey) != "" {
		openaiClient, err := openai.NewClient(apiKey, app.Config.LLMModel)
		if err != nil {
			return err
		}
		llmClient = openaiClient

		whisper, err := transcribe.NewWhisperClient(apiKey, app.Config.TranscribeModel)
		if err != nil {
			return err
		}
		transcriber = whisper
	}

	docSvc := &documents.Service{Store: app.Store, Repo: docRepo}
	historySvc := &history.Service{Repo: historyRepo}
	interviewSvc := &interviews.Service{
		Repo:             interviewRepo,
		LLM:              llmClient,
		Evaluator:        evaluation.NewEvaluator(),
		Docs:             docSvc,
		Usage:            usageSvc,
		History:          historySvc,
		FollowUpsEnabled: app.Config.FollowUpsEnabled,
	}

	app.DocumentsRepo = docRepo
	app.InterviewsRepo = interviewRepo
	app.HistoryRepo = historyRepo
	app.DocumentsService = docSvc
	app.InterviewsService = interviewSvc
	app.HistoryService = historySvc
	app.UsageService = usageSvc
	app.LLM = llmClient
	app.Transcriber = transcriber
	app.GoogleAuth = googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
	)

	return nil
}
