package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/DsK-David/tropiqstorebackend/internal/config"
	"github.com/DsK-David/tropiqstorebackend/internal/database"
	"github.com/DsK-David/tropiqstorebackend/internal/routes"
	"github.com/DsK-David/tropiqstorebackend/internal/services"
)

func main() {
	config.Load()

	dsn, err := config.DatabaseURL()
	if err != nil {
		log.Fatalf("❌ Configuração inválida: %v", err)
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatalf("❌ Erro ao conectar ao Postgres: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("❌ Erro nas migrações: %v", err)
	}

	smtpCfg, err := config.SMTPFromEnv()
	if err != nil {
		log.Fatalf("❌ Configuração SMTP inválida: %v", err)
	}
	mailer := services.NewSMTPMailer(smtpCfg)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	routes.RegisterRoutes(r, db, mailer)

	port := config.Port()
	log.Println("🚀 Servidor Tropiq Store na porta", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Erro no servidor: %v", err)
	}
}
