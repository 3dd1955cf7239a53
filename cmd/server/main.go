package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"strings"

	"haveli_pos_backend/internal/database"
	"haveli_pos_backend/internal/router"
	"haveli_pos_backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

func main() {
	// Initialize Logger
	utils.InitLogger()

	// The settlement archive database is optional: without DB_HOST the
	// backend runs fully in memory, which is the normal single-venue mode.
	var db = connectArchiveDB()

	// The voice resolver degrades to "not understood" without an API key.
	var llmModel = connectLLM()

	engine := gin.Default()

	// Add GinLogger middleware for request logging
	engine.Use(utils.GinLogger())

	// CORS configuration
	corsAllowedOriginsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	var allowedOrigins []string
	if corsAllowedOriginsEnv != "" {
		allowedOrigins = strings.Split(corsAllowedOriginsEnv, ",")
	} else {
		allowedOrigins = []string{"http://localhost:3000", "http://localhost:5173"} // Default origins
	}

	config := cors.DefaultConfig()
	config.AllowOrigins = allowedOrigins
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.AllowCredentials = true
	engine.Use(cors.New(config))

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Setup all application routes
	managerPIN := utils.Getenv("MANAGER_PIN", "1234")
	router.Setup(engine, db, llmModel, managerPIN)

	// Server port configuration
	port := utils.Getenv("PORT", "8080")
	utils.LogInfo("Server starting", map[string]interface{}{"port": port})

	if err := engine.Run(":" + port); err != nil {
		utils.LogError(err, "Failed to start server")
		log.Fatalf("Failed to start server: %v", err)
	}
}

// connectArchiveDB opens the settlement archive database when DB_HOST is
// configured. Returns nil when it is not, or when the connection fails;
// settlements then stay in memory for the session.
func connectArchiveDB() *sql.DB {
	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		utils.LogInfo("No DB_HOST configured, settlement archive disabled")
		return nil
	}

	dbPort := utils.Getenv("DB_PORT", "5432")
	dbUser := utils.Getenv("DB_USER", "haveli_pos")
	dbPassword := utils.Getenv("DB_PASSWORD", "haveli_pos")
	dbName := utils.Getenv("DB_NAME", "haveli_pos_db")
	dbSSLMode := utils.Getenv("DB_SSLMODE", "disable")

	db, err := database.Connect(dbHost, dbPort, dbUser, dbPassword, dbName, dbSSLMode)
	if err != nil {
		utils.LogError(err, "Settlement archive database unavailable, continuing in-memory")
		return nil
	}
	if err := database.EnsureSchema(db); err != nil {
		utils.LogError(err, "Settlement archive schema setup failed, continuing in-memory")
		return nil
	}
	utils.LogInfo("Settlement archive database connected", map[string]interface{}{"host": dbHost, "db": dbName})
	return db
}

// connectLLM builds the Gemini backend for the voice order resolver when
// GEMINI_API_KEY is set. Returns nil otherwise.
func connectLLM() llms.Model {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		utils.LogInfo("No GEMINI_API_KEY configured, voice ordering disabled")
		return nil
	}

	modelName := utils.Getenv("GEMINI_MODEL", "gemini-1.5-flash")
	model, err := googleai.New(context.Background(),
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(modelName))
	if err != nil {
		utils.LogError(err, "LLM backend initialization failed, voice ordering disabled")
		return nil
	}
	utils.LogInfo("Voice order resolver enabled", map[string]interface{}{"model": modelName})
	return model
}
