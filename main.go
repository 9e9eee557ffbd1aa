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

	"github.com/joho/godotenv"

	"github.com/example/lugat/internal/database"
	"github.com/example/lugat/internal/scheduler"
	"github.com/example/lugat/internal/server"
	"github.com/example/lugat/internal/study"
)

func main() {
	// .env is optional; environment variables win either way
	_ = godotenv.Load()

	if err := database.Connect(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	wordsFile := os.Getenv("WORDS_FILE")
	if wordsFile == "" {
		wordsFile = "data/words.json"
	}
	if seeded, err := database.SeedWordsFromFile(wordsFile); err != nil {
		log.Fatalf("Failed to seed words from %s: %v", wordsFile, err)
	} else if seeded > 0 {
		log.Printf("Seeded %d words from %s", seeded, wordsFile)
	}

	svc := study.NewService(
		database.NewWordRepository(),
		database.NewProgressRepository(),
		database.NewStudySessionRepository(),
		study.WithSessionTTL(sessionTTL()),
	)

	sched := scheduler.New(svc)
	sched.Start()
	defer sched.Stop()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: server.NewRouter(svc),
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server listening on :%s. Press Ctrl+C to stop.", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	sig := <-sigChan
	log.Printf("Received signal: %v", sig)

	// Give in-flight requests time to finish
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	log.Println("Server stopped successfully")
}

func sessionTTL() time.Duration {
	if raw := os.Getenv("SESSION_TTL_MINUTES"); raw != "" {
		if d, err := time.ParseDuration(raw + "m"); err == nil && d > 0 {
			return d
		}
	}
	return study.DefaultSessionTTL
}
