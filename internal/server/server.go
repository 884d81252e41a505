package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/uzushio/tinysearch"
	"github.com/uzushio/tinysearch/internal/metrics"
)

// Server is the HTTP surface over a single Engine. The engine itself is
// unsynchronized, so the server provides the concurrency discipline: a
// reader/writer lock allowing concurrent searches and exclusive mutation.
// When a snapshot storage is configured, every successful mutation persists
// the exported snapshot under the configured name.
type Server struct {
	mu           sync.RWMutex
	engine       *tinysearch.Engine
	storage      tinysearch.Storage
	snapshotName string
	logger       *zap.Logger
}

// New creates a server around engine. storage may be nil, in which case the
// index lives only in memory.
func New(engine *tinysearch.Engine, storage tinysearch.Storage, snapshotName string, logger *zap.Logger) *Server {
	return &Server{
		engine:       engine,
		storage:      storage,
		snapshotName: snapshotName,
		logger:       logger,
	}
}

// RestoreSnapshot loads the persisted snapshot into the engine. A missing
// snapshot is not an error: the service starts with an empty index.
func (s *Server) RestoreSnapshot() error {
	if s.storage == nil {
		return nil
	}
	snapshot, err := s.storage.LoadSnapshot(s.snapshotName)
	if err != nil {
		if errors.Is(err, tinysearch.ErrSnapshotNotFound) {
			s.logger.Info("no persisted snapshot, starting empty", zap.String("snapshot", s.snapshotName))
			return nil
		}
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.engine.Import(snapshot); err != nil {
		return err
	}
	stats := s.engine.Stats()
	metrics.SetIndexedDocuments(stats.TotalDocuments)
	s.logger.Info("snapshot restored",
		zap.String("snapshot", s.snapshotName),
		zap.Int("documents", stats.TotalDocuments),
		zap.Int("terms", stats.TotalTerms),
	)
	return nil
}

// Router builds the chi router with logging and metrics middleware.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chiMiddleware.Recoverer)
	r.Use(metrics.Middleware())

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/documents", s.handleAddDocument)
	r.Get("/search", s.handleSearch)
	r.Get("/stats", s.handleStats)
	r.Get("/export", s.handleExport)
	r.Post("/import", s.handleImport)
	return r
}

type addDocumentRequest struct {
	Content string `json:"content"`
	Title   string `json:"title"`
}

type addDocumentResponse struct {
	DocumentID tinysearch.DocumentID `json:"document_id"`
}

func (s *Server) handleAddDocument(w http.ResponseWriter, r *http.Request) {
	var req addDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.engine.AddDocument(req.Content, req.Title)
	metrics.SetIndexedDocuments(s.engine.Stats().TotalDocuments)

	if err := s.persistLocked(); err != nil {
		s.logger.Error("failed to persist snapshot", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to persist snapshot")
		return
	}

	s.logger.Info("document indexed", zap.Uint64("document_id", uint64(id)))
	writeJSON(w, http.StatusCreated, addDocumentResponse{DocumentID: id})
}

type searchResponse struct {
	Query   string                    `json:"query"`
	Results []tinysearch.SearchResult `json:"results"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	s.mu.RLock()
	results := s.engine.Search(query)
	s.mu.RUnlock()

	writeJSON(w, http.StatusOK, searchResponse{Query: query, Results: results})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	stats := s.engine.Stats()
	s.mu.RUnlock()

	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	snapshot := s.engine.Export()
	s.mu.RUnlock()

	writeJSON(w, http.StatusOK, snapshot)
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	var snapshot tinysearch.Snapshot
	if err := json.NewDecoder(r.Body).Decode(&snapshot); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.engine.Import(snapshot); err != nil {
		if errors.Is(err, tinysearch.ErrInvalidSnapshot) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	metrics.SetIndexedDocuments(s.engine.Stats().TotalDocuments)

	if err := s.persistLocked(); err != nil {
		s.logger.Error("failed to persist snapshot", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to persist snapshot")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// persistLocked saves the current snapshot; the caller holds the write lock.
func (s *Server) persistLocked() error {
	if s.storage == nil {
		return nil
	}
	return s.storage.SaveSnapshot(s.snapshotName, s.engine.Export())
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
