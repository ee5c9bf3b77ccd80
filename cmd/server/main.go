package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/avsouza/leaseguard/internal/archive"
	"github.com/avsouza/leaseguard/internal/audit"
	"github.com/avsouza/leaseguard/internal/config"
	"github.com/avsouza/leaseguard/internal/extract"
	"github.com/avsouza/leaseguard/internal/llm"
	"github.com/avsouza/leaseguard/internal/middleware"
	"github.com/avsouza/leaseguard/internal/service"
	"github.com/avsouza/leaseguard/internal/store"
	mcphandler "github.com/avsouza/leaseguard/pkg/mcp"
)

type server struct {
	cfg      *config.Config
	analyzer *service.Analyzer
	mcp      *mcphandler.Handler
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	cache, err := store.Open(cfg.App.Cache.Path)
	if err != nil {
		log.Fatalf("Failed to open cache: %v", err)
	}
	defer cache.Close()

	narrator := llm.NewClient(cfg.App.LLM.Endpoint, cfg.App.LLM.Model, cfg.App.LLM.APIKey)
	if !narrator.Configured() {
		log.Println("No Gemini key configured, narrative analysis disabled")
	}

	var archiver service.Archiver
	if cfg.App.Archive.Enabled {
		arc, err := archive.New(cfg.App.Archive)
		if err != nil {
			log.Printf("Warning: failed to initialize upload archive: %v", err)
		} else {
			if err := arc.EnsureBucket(context.Background()); err != nil {
				log.Printf("Warning: archive bucket check failed: %v", err)
			}
			archiver = arc
		}
	}

	auditor := audit.NewAuditor("/tmp/leaseguard_audit.db")
	defer auditor.Close()

	analyzer := service.NewAnalyzer(
		cfg.App.Upload,
		extract.NewFileExtractor(),
		narrator,
		cache,
		archiver,
		auditor,
	)

	s := &server{
		cfg:      cfg,
		analyzer: analyzer,
		mcp:      mcphandler.NewHandler(analyzer, narrator),
	}

	srv := &http.Server{
		Addr:         cfg.App.Server.Addr,
		Handler:      s.routes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting LeaseGuard API on %s", cfg.App.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}

func (s *server) routes() *mux.Router {
	router := mux.NewRouter()
	middleware.Register(router, s.cfg.App.Server.AllowedOrigins)

	router.HandleFunc("/analisar", s.analyzeHandler).Methods("POST")
	router.HandleFunc("/analisar/", s.analyzeHandler).Methods("POST")
	router.HandleFunc("/analises", s.analysesHandler).Methods("GET")
	router.HandleFunc("/health", healthHandler).Methods("GET")
	router.HandleFunc("/", rootHandler).Methods("GET")
	router.PathPrefix("/mcp").Handler(s.mcp)

	return router
}

func (s *server) analyzeHandler(w http.ResponseWriter, r *http.Request) {
	// One extra MB of headroom for multipart framing; the service
	// enforces the real payload limit.
	maxBytes := int64(s.cfg.App.Upload.MaxMB*1024*1024) + 1<<20
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Arquivo não enviado. Use o campo 'file'.")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, (&service.FileTooLargeError{LimitMB: int(s.cfg.App.Upload.MaxMB)}).Error())
		return
	}

	forceAI := false
	if v := r.URL.Query().Get("force_ai"); v != "" {
		forceAI, _ = strconv.ParseBool(v)
	}

	res, err := s.analyzer.AnalyzeUpload(r.Context(), header.Filename, data, forceAI)
	if err != nil {
		writeAnalysisError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

func (s *server) analysesHandler(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	entries, err := s.analyzer.Recent(r.Context(), limit)
	if err != nil {
		log.Printf("listing analyses failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Erro interno do servidor. Tente novamente mais tarde.")
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "API do Analisador de Contratos no ar!",
		"versao":  "1.5 (Simplificada)",
		"endpoints": map[string]string{
			"analise_contrato": "/analisar/",
			"historico":        "/analises",
		},
	})
}

func writeAnalysisError(w http.ResponseWriter, err error) {
	var (
		tooLarge *service.FileTooLargeError
		parseErr *extract.ParseError
	)
	switch {
	case errors.As(err, &tooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, err.Error())
	case errors.As(err, &parseErr),
		errors.Is(err, service.ErrMissingFilename),
		errors.Is(err, service.ErrInsufficientText),
		errors.Is(err, extract.ErrUnsupportedFormat),
		errors.Is(err, extract.ErrNoText):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("analysis failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Erro interno do servidor. Tente novamente mais tarde.")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
