package main

import (
	"net/http"
	"os"
	"strings"
	"time"

	"adopet-backend/internal/adapters/auth/gateway"
	"adopet-backend/internal/adapters/auth/jwtauth"
	"adopet-backend/internal/platform/logger"
	"adopet-backend/internal/ports/auth"
	"adopet-backend/internal/router"

	_ "adopet-backend/docs"

	"github.com/joho/godotenv"
)

// @title Adopet API
// @version 1.0
// @description Backend de la plataforma de adopción: registro de animales con fotos, cambio de status por el owner y listados filtrados.
// @BasePath /
func main() {
	// .env es opcional (dev); en prod las vars vienen del entorno.
	_ = godotenv.Load()

	lg := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	r := router.NewRouter(router.Options{
		AuthVerifier: verifierFromEnv(lg),
		Logger:       lg,
	})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	lg.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		lg.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}

// verifierFromEnv elige el verifier de tokens:
// - AUTH_JWT_SECRET => validación HS256 local
// - AUTH_VERIFY_URL (+AUTH_API_KEY) => delegar en el servicio de usuarios
// - nada => nil (modo dev: X-Debug-User-ID)
func verifierFromEnv(lg logger.Logger) auth.AuthVerifier {
	if secret := strings.TrimSpace(os.Getenv("AUTH_JWT_SECRET")); secret != "" {
		lg.Info("auth: local jwt verifier", nil)
		return jwtauth.NewVerifier(secret)
	}

	if baseURL := strings.TrimSpace(os.Getenv("AUTH_VERIFY_URL")); baseURL != "" {
		client, err := gateway.NewClient(gateway.Config{
			BaseURL: baseURL,
			APIKey:  os.Getenv("AUTH_API_KEY"),
		})
		if err != nil {
			lg.Error("auth: invalid AUTH_VERIFY_URL, running in dev mode", map[string]any{"error": err.Error()})
			return nil
		}
		lg.Info("auth: users gateway verifier", map[string]any{"base_url": baseURL})
		return gateway.NewVerifier(client)
	}

	lg.Warn("auth: no verifier configured, dev mode (X-Debug-User-ID)", nil)
	return nil
}
