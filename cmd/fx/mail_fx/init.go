package mail_fx

import (
	"log"
	"os"
	"strconv"

	"go.uber.org/fx"

	"clubcentral/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService() services.IMailService {
	port := 587
	if v := os.Getenv("SMTP_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid SMTP_PORT %q: %v", v, err)
		}
		port = p
	}

	cfg := services.SMTPConfig{
		Host:     os.Getenv("SMTP_HOST"), // empty disables outbound mail
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
		FromName: "Club Central",
		AppName:  "Club Central",
	}

	if cfg.Host == "" {
		log.Println("SMTP_HOST not set, decision emails disabled")
	}

	return services.NewSMTPMailService(cfg)
}
