package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"

	"github.com/Sanddmann/PLNU-MBA-Performance-Dashboard/pkg/config"
	"github.com/Sanddmann/PLNU-MBA-Performance-Dashboard/pkg/dataset"
	"github.com/Sanddmann/PLNU-MBA-Performance-Dashboard/pkg/extract"
	"github.com/Sanddmann/PLNU-MBA-Performance-Dashboard/pkg/metrics"
	"github.com/Sanddmann/PLNU-MBA-Performance-Dashboard/pkg/web"
)

func main() {
	log.Println("🚀 Starting Performance Dashboard...")

	cfg, err := config.Load(config.DefaultFile)
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}
	log.Printf("⚙️  Configuration: archives=%s workdir=%s addr=%s", cfg.ArchiveDir, cfg.WorkDir, cfg.Addr)

	// Startup pipeline: extract, load, normalize. Everything must succeed
	// before the listener starts; there is no partial-startup mode.
	result, err := extract.Run(cfg.ArchiveDir, cfg.WorkDir)
	if err != nil {
		log.Fatalf("❌ Extraction failed: %v", err)
	}
	log.Printf("🗂  Extracted %d CSV files from %d archives", len(result.Extracted), result.Archives)

	frames, err := dataset.Load(cfg.WorkDir)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	table, err := dataset.Build(frames)
	if err != nil {
		log.Fatalf("❌ Failed to build unified table: %v", err)
	}
	metrics.SetDatasetStats(len(table.Rows), table.DroppedRows, len(table.Subjects()))

	handler, err := web.NewHandler(table, cfg)
	if err != nil {
		log.Fatalf("❌ Failed to create dashboard handler: %v", err)
	}

	router := mux.NewRouter()
	router.Use(web.CORS)
	router.Use(web.AccessLog)
	router.HandleFunc("/", handler.HandleIndex).Methods("GET", "POST")
	router.HandleFunc("/healthz", handler.HandleHealth).Methods("GET")
	router.Handle("/metrics", metrics.Handler()).Methods("GET")

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
	}

	go func() {
		log.Printf("🌐 Dashboard serving on http://localhost%s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutdown signal received...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("⚠️  Server shutdown warning: %v", err)
	}
	log.Println("👋 Dashboard exited cleanly")
}
