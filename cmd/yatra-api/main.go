// README: Entry point; loads config, wires stores and services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"yatra/internal/ai"
	"yatra/internal/config"
	httptransport "yatra/internal/http"
	"yatra/internal/infra"
	"yatra/internal/modules/booking"
	"yatra/internal/modules/editor"
	"yatra/internal/modules/prefs"
	"yatra/internal/modules/trip"
	"yatra/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var docs store.Document
	if cfg.Firebase.CredentialsFile != "" || cfg.Firebase.DatabaseURL != "" {
		rtdb, err := infra.NewRTDB(ctx, cfg.Firebase.CredentialsFile, cfg.Firebase.DatabaseURL)
		if err != nil {
			log.Fatalf("firebase init: %v", err)
		}
		docs = store.NewRealtime(rtdb)
	} else {
		log.Print("no firebase credentials configured, using in-memory store")
		docs = store.NewMemory()
	}

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	var prefStore prefs.Store
	if cfg.DB.DSN != "" {
		dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			log.Fatal(err)
		}
		defer dbPool.Close()
		prefStore = prefs.NewPostgresStore(dbPool)
	} else {
		log.Print("no database configured, using in-memory preferences")
		prefStore = prefs.NewMemory()
	}

	provider := ai.NewGeminiProvider(cfg.AI.GeminiKey)

	tripRepo := trip.NewRepository(docs)
	tripSvc := trip.NewService(tripRepo, provider)
	editorSvc := editor.NewService(tripRepo, provider)
	bookingSvc := booking.NewService(tripRepo, booking.NewRedisSink(redisClient, cfg.Booking.LogTTL))
	prefsSvc := prefs.NewService(prefStore)

	handler := httptransport.NewRouter(httptransport.RouterDeps{
		Trips:     tripSvc,
		Editor:    editorSvc,
		Booking:   bookingSvc,
		Prefs:     prefsSvc,
		PublicURL: cfg.HTTP.PublicURL,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
