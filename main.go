package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/naseer2426/whatsapp-gemini-bot/internal/api"
	"github.com/naseer2426/whatsapp-gemini-bot/internal/config"
	"github.com/naseer2426/whatsapp-gemini-bot/internal/gemini"
	"github.com/naseer2426/whatsapp-gemini-bot/internal/visionbot"
	"github.com/naseer2426/whatsapp-gemini-bot/internal/whatsapp"
)

func main() {
	if err := initEnv(); err != nil {
		panic(err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	router := initRouter()
	webhook := initWebhook(cfg)

	router.GET("/", webhook.Health)
	router.GET("/webhook", webhook.Verify)
	router.POST("/webhook", webhook.Receive)

	if err := router.Run(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

func initEnv() error {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		// Only log if the file is missing; envs may be provided by the environment
		if !os.IsNotExist(err) {
			log.Printf("warning: could not load .env: %v", err)
			return err
		}
	}
	return nil
}

func initRouter() *gin.Engine {
	router := gin.Default()

	router.Use(requestid.New())
	// Allow CORS for all origins
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:   []string{"Content-Length"},
	}))

	return router
}

func initWebhook(cfg *config.Config) *api.WhatsAppWebhook {
	whatsappAPI := whatsapp.NewWhatsAppAPI(cfg.WhatsAppToken, cfg.PhoneNumberID)
	return &api.WhatsAppWebhook{
		VisionBot:     visionbot.NewBot(gemini.NewGeminiAPI(cfg.GeminiAPIKey), whatsappAPI),
		Sender:        whatsappAPI,
		VerifyToken:   cfg.VerifyToken,
		PhoneNumberID: cfg.PhoneNumberID,
	}
}
