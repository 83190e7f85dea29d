package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/yndnr/uebridge-go/internal/engine"
	"github.com/yndnr/uebridge-go/internal/protocol"
	"github.com/yndnr/uebridge-go/internal/telemetry/logger"
	"github.com/yndnr/uebridge-go/internal/telemetry/metric"
)

// Sender dispatches a command to the editor and returns its response.
type Sender interface {
	Send(ctx context.Context, command string, params any) protocol.Response
}

// History reads back recorded command results, newest first.
type History interface {
	Recent(n int) ([]engine.Result, error)
}

// stateReporter is implemented by senders that expose their connection
// lifecycle, such as *engine.Conn. The health endpoint reports it when
// available.
type stateReporter interface {
	State() engine.State
	LastError() error
}

// Handler implements the HTTP API for the bridge.
type Handler struct {
	mux     *http.ServeMux
	sender  Sender
	reg     *Registry
	history History
	metrics *metric.Registry
	log     logger.Logger
}

// HandlerConfig configures a Handler.
type HandlerConfig struct {
	Sender  Sender
	Tools   *Registry
	History History
	Metrics *metric.Registry
	Logger  logger.Logger
}

// NewHandler creates a Handler and registers its routes.
func NewHandler(cfg HandlerConfig) *Handler {
	if cfg.Tools == nil {
		cfg.Tools = NewRegistry()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = metric.Global()
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Default()
	}

	h := &Handler{
		mux:     http.NewServeMux(),
		sender:  cfg.Sender,
		reg:     cfg.Tools,
		history: cfg.History,
		metrics: cfg.Metrics,
		log:     cfg.Logger.With("component", "gateway"),
	}
	h.registerRoutes()
	return h
}

func (h *Handler) registerRoutes() {
	h.mux.HandleFunc("GET /health", h.handleHealth)
	h.mux.Handle("GET /metrics", h.metrics.Handler())

	h.mux.HandleFunc("POST /api/v1/commands", h.handleCommand)
	h.mux.HandleFunc("GET /api/v1/tools", h.handleListTools)
	h.mux.HandleFunc("POST /api/v1/tools/{tool}", h.handleTool)
	h.mux.HandleFunc("GET /api/v1/history", h.handleHistory)
}

// ServeHTTP implements http.Handler.
//
// The handler's logger is placed in the request context so that
// downstream code picks it up, enriched with the request ID, via
// logger.L.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithLogger(r.Context(), h.log)
	h.mux.ServeHTTP(w, r.WithContext(ctx))
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	body := map[string]any{"status": "ok"}
	if sr, ok := h.sender.(stateReporter); ok {
		editor := map[string]any{"state": sr.State().String()}
		if err := sr.LastError(); err != nil {
			editor["last_error"] = err.Error()
		}
		body["editor"] = editor
	}
	writeJSON(w, http.StatusOK, body)
}

// commandRequest is the body of POST /api/v1/commands.
type commandRequest struct {
	Command string         `json:"command"`
	Params  map[string]any `json:"params"`
}

func (h *Handler) handleCommand(w http.ResponseWriter, r *http.Request) {
	var req commandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Command == "" {
		writeError(w, http.StatusBadRequest, "command is required")
		return
	}

	logger.L(r.Context()).Debug("dispatching raw command", "command", req.Command)
	resp := h.sender.Send(r.Context(), req.Command, req.Params)
	writeResponse(w, resp)
}

func (h *Handler) handleListTools(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"tools": h.reg.List(),
		"count": h.reg.Count(),
	})
}

func (h *Handler) handleTool(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("tool")
	tool, ok := h.reg.Get(name)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown tool: "+name)
		return
	}

	params := map[string]any{}
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	logger.L(r.Context()).Debug("invoking tool", "tool", name)
	resp := tool.Handler(r.Context(), params)
	writeResponse(w, resp)
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	if h.history == nil {
		writeError(w, http.StatusNotFound, "history is not enabled")
		return
	}

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	results, err := h.history.Recent(limit)
	if err != nil {
		h.log.Error("history read failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to read history")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"results": results,
		"count":   len(results),
	})
}

// writeResponse maps a protocol response onto an HTTP status.
//
// Command failures are still HTTP 200 so callers can distinguish
// transport problems from editor errors.
func writeResponse(w http.ResponseWriter, resp protocol.Response) {
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{
		"status": protocol.StatusError,
		"error":  msg,
	})
}
