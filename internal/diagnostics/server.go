// Package diagnostics is an optional, off-by-default HTTP server exposing
// read-only introspection of a running interpreter: its open channel
// connections and declared function signatures. It never participates in
// program semantics — purely observability, the way the teacher layers
// internal/web HTTP endpoints and a chi router around a core compiler that
// itself has no HTTP concept (see internal/web/profiling.RegisterRoutes for
// the same shape: register routes on a chi.Router, nothing more).
package diagnostics

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/minipar-lang/minipar/compiler/ast"
	"github.com/minipar-lang/minipar/runtime/connection"
)

// Source is the subset of evaluator.Evaluator the diagnostics server reads.
type Source interface {
	Connections() *connection.Table
	Functions() map[string]*ast.FuncDef
}

type connectionView struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	RemoteAddr string    `json:"remote_addr"`
	OpenedAt   time.Time `json:"opened_at"`
}

type functionView struct {
	Name       string   `json:"name"`
	ReturnType string   `json:"return_type"`
	Params     []string `json:"params"`
}

// NewRouter builds the chi.Router exposing GET /connections and GET
// /functions over src.
func NewRouter(src Source, log *zap.SugaredLogger) chi.Router {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	r := chi.NewRouter()

	r.Get("/connections", func(w http.ResponseWriter, req *http.Request) {
		entries := src.Connections().Snapshot()
		views := make([]connectionView, 0, len(entries))
		for _, e := range entries {
			views = append(views, connectionView{
				ID:         e.ID.String(),
				Name:       e.Name,
				Role:       string(e.Role),
				RemoteAddr: e.RemoteAddr,
				OpenedAt:   e.OpenedAt,
			})
		}
		writeJSON(w, log, views)
	})

	r.Get("/functions", func(w http.ResponseWriter, req *http.Request) {
		funcs := src.Functions()
		views := make([]functionView, 0, len(funcs))
		for name, fn := range funcs {
			params := make([]string, 0, len(fn.Params.Order))
			for _, p := range fn.Params.Order {
				params = append(params, p)
			}
			views = append(views, functionView{
				Name:       name,
				ReturnType: string(fn.ReturnType),
				Params:     params,
			})
		}
		writeJSON(w, log, views)
	})

	return r
}

// Serve starts the diagnostics HTTP server on addr. It blocks until the
// server stops (normally never, since it runs detached from the evaluator's
// own goroutine in cmd/minipar's run command) and returns any listen error.
func Serve(addr string, src Source, log *zap.SugaredLogger) error {
	return http.ListenAndServe(addr, NewRouter(src, log))
}

func writeJSON(w http.ResponseWriter, log *zap.SugaredLogger, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Debugw("diagnostics: failed to encode response", "error", err)
	}
}
