package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

func Load() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  Nenhum ficheiro .env encontrado — a usar as variáveis de ambiente do sistema")
	} else {
		log.Println("✅ Ficheiro .env carregado com sucesso")
	}
}

// Port devolve a porta HTTP (3000 por omissão, como o painel espera).
func Port() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	return port
}

// DatabaseURL devolve o DSN do Postgres. Obrigatório: sem fallback.
func DatabaseURL() (string, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return "", fmt.Errorf("DATABASE_URL não configurado")
	}
	return dsn, nil
}

type SMTP struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPFromEnv carrega as credenciais de email. Todas obrigatórias — nunca
// voltamos a embutir credenciais por omissão no código.
func SMTPFromEnv() (SMTP, error) {
	cfg := SMTP{
		Host:     os.Getenv("SMTP_HOST"),
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("MAIL_FROM"),
		Port:     587,
	}

	for name, value := range map[string]string{
		"SMTP_HOST":     cfg.Host,
		"SMTP_USERNAME": cfg.Username,
		"SMTP_PASSWORD": cfg.Password,
		"MAIL_FROM":     cfg.From,
	} {
		if value == "" {
			return SMTP{}, fmt.Errorf("%s não configurado", name)
		}
	}

	if raw := os.Getenv("SMTP_PORT"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			return SMTP{}, fmt.Errorf("SMTP_PORT inválido: %v", err)
		}
		cfg.Port = port
	}

	return cfg, nil
}
