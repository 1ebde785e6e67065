package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Hasan-Al-Banna-Nahid/blog-backend/internal/config"
	"github.com/Hasan-Al-Banna-Nahid/blog-backend/internal/db"
	"github.com/Hasan-Al-Banna-Nahid/blog-backend/internal/handlers"
	"github.com/Hasan-Al-Banna-Nahid/blog-backend/internal/storage"
)

func main() {
	cfg := config.Load()

	ctx := context.Background()
	store, err := db.NewStore(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("mongodb connect failed: %v", err)
	}
	defer store.Close(context.Background())
	log.Println("MongoDB connected")

	media, err := storage.New(storage.Config{
		CloudName: cfg.CloudinaryCloudName,
		APIKey:    cfg.CloudinaryAPIKey,
		APISecret: cfg.CloudinaryAPISecret,
	})
	if err != nil {
		log.Fatalf("cloudinary init failed: %v", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   cfg.CorsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}).Handler)

	r.Get("/health", handlers.Health)

	blogsHandler := handlers.NewBlogsHandler(store, media)

	r.Route("/api/blogs", func(r chi.Router) {
		r.Post("/create", blogsHandler.Create)
		r.Put("/update/{id}", blogsHandler.Update)
		r.Get("/", blogsHandler.List)
		r.Get("/{id}", blogsHandler.GetByID)
		r.Delete("/delete/{id}", blogsHandler.Delete)
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
