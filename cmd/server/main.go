package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Anastasia-Osteen/blogly-2/internal/handlers"
	"github.com/Anastasia-Osteen/blogly-2/internal/render"
	"github.com/Anastasia-Osteen/blogly-2/internal/store"
)

func main() {
	// Initialize environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}
	dsn := os.Getenv("DSN")
	if dsn == "" {
		dsn = "postgresql:///blogly"
	}
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":3000"
	}

	// Database connection
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	st := store.New(db)

	// Auto migrate models
	if err := st.AutoMigrate(); err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}

	rn, err := render.New()
	if err != nil {
		log.Fatalf("Failed to parse templates: %v", err)
	}

	// Chi
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(httprate.Limit(
		100,
		1*time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP, httprate.KeyByEndpoint),
	))

	app := handlers.NewApp(st, rn)
	app.Register(r)

	srv := &http.Server{Addr: addr, Handler: r}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Println("Starting server on", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Println("Shutdown error:", err)
	}
	if err := st.Close(); err != nil {
		log.Println("Closing database:", err)
	}
}
