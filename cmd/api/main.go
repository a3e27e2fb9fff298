package main

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/pytutor/pytutor_service/internal/cache"
	"github.com/pytutor/pytutor_service/internal/chat"
	"github.com/pytutor/pytutor_service/internal/config"
	"github.com/pytutor/pytutor_service/internal/middleware"
	"github.com/pytutor/pytutor_service/internal/providers"
	"github.com/pytutor/pytutor_service/internal/quiz"
	"github.com/pytutor/pytutor_service/internal/quota"
	"github.com/pytutor/pytutor_service/internal/telemetry"
	"github.com/pytutor/pytutor_service/internal/usage"
)

func main() {
	cfg := config.Load()

	tlog := telemetry.Init(telemetry.FromEnv(config.GetEnv))
	tlog.Info().Str("port", cfg.AppPort).Msg("booting pytutor_service")

	rdb := cache.Connect(cfg.RedisAddr, cfg.RedisDB)

	gemini := &providers.Gemini{DryRun: cfg.DryRun}
	ledger := usage.NewLedger()

	chatHandler := chat.NewHandler(chat.NewService(gemini, ledger, cfg.GeminiKey, cfg.DefaultModel))
	quizHandler := quiz.NewHandler(
		quiz.NewService(gemini, ledger, cfg.GeminiKey, cfg.QuizModel).WithCache(rdb, cfg.QuizCacheTTL),
	)
	quotaHandler := quota.NewHandler(quota.NewInspector(ledger, cfg.QuotaLimit))

	app := fiber.New()

	app.Use(middleware.RequestID())
	app.Use(middleware.Recover())
	app.Use(middleware.CORS(cfg))
	app.Use(middleware.RequestLog())
	app.Use(middleware.SecureHeaders())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Welcome to pytutor_service!"})
	})
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	app.Get("/api/config", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"models":            config.AvailableModels,
			"languages":         config.AvailableLanguages,
			"chapters":          config.AvailableChapters,
			"chapterTopics":     config.ChapterTopics,
			"topics":            config.AvailableTopics(),
			"familiarityLevels": config.FamiliarityLevels,
			"conversationModes": config.ConversationModes,
		})
	})

	app.Post("/api/chat", chatHandler.Chat)
	app.Post("/api/quiz", quizHandler.Generate)
	app.Post("/api/check-quota", quotaHandler.CheckQuota)

	log.Fatal(app.Listen(":" + cfg.AppPort))
}
