package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"autoservice/internal/config"
	"autoservice/internal/db"
	"autoservice/internal/dialog"
	"autoservice/internal/docx"
	"autoservice/internal/orderform"
)

var (
	migrateOnlyFlag = flag.Bool("migrate-only", false, "Run DB migrations and exit")
	seedOnlyFlag    = flag.Bool("seed-only", false, "Run DB seed and exit")
)

func main() {
	flag.Parse()

	// Load environment variables from .env file
	_ = godotenv.Load()

	cfg := config.Load()

	if *migrateOnlyFlag {
		conn, err := db.Connect(cfg.DatabaseDSN, true, false)
		if err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		closeDB(conn)
		log.Println("Migrations completed successfully")
		return
	}
	if *seedOnlyFlag {
		conn, err := db.Connect(cfg.DatabaseDSN, false, true)
		if err != nil {
			log.Fatalf("Seeding failed: %v", err)
		}
		closeDB(conn)
		log.Println("Seeding completed successfully")
		return
	}

	dbConn, err := db.Connect(cfg.DatabaseDSN, cfg.Migrations, cfg.Seed)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	orderForms := orderform.NewService(dbConn, dialog.NewSave(), docx.NewRenderer())
	appHandler := NewApp(dbConn, orderForms)

	srv := &http.Server{
		Addr:         "127.0.0.1:" + cfg.Port,
		Handler:      withLogging(appHandler),
		ReadTimeout:  15 * time.Second,
		// Generation blocks on the native save dialog, so the write
		// timeout has to outlive a user deciding where to put the file.
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port %s (env=%s)", cfg.Port, cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	closeDB(dbConn)
	log.Println("Server stopped gracefully")
}

func closeDB(conn *gorm.DB) {
	sqlDB, err := conn.DB()
	if err == nil {
		_ = sqlDB.Close()
	}
}

// withLogging adds request logging middleware.
func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}
