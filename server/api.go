package server

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/tqtools/tq/engine"
	"github.com/tqtools/tq/loader"
	"github.com/tqtools/tq/parser"
)

// APIResponse wraps every API reply with success/error info.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// QueryRequest is the body of POST /api/query. Query holds the full
// statement; predicates use the same token grammar as the CLI, with
// parentheses as standalone tokens.
type QueryRequest struct {
	Query   string `json:"query"`
	InputFS string `json:"input_fs,omitempty"`
	Header  bool   `json:"header,omitempty"`
}

// QueryResponse carries the projected result. RowCount zero with success
// true is the no-rows outcome; callers must branch on it, not on Error.
type QueryResponse struct {
	Fields   []string   `json:"fields"`
	Rows     [][]string `json:"rows"`
	RowCount int        `json:"row_count"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, APIResponse{Success: false, Error: msg})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{Success: true})
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	var req QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	q, err := parser.ParseArgs(strings.Fields(req.Query))
	if err != nil {
		writeError(w, http.StatusBadRequest, "parse error: "+err.Error())
		return
	}

	path, ok := s.resolveTable(q.Table)
	if !ok {
		writeError(w, http.StatusBadRequest, "table path escapes the configured root")
		return
	}
	q.Table = path

	tbl, err := loader.Load(q.Table, loader.Options{InputFS: req.InputFS})
	if err != nil {
		s.log.Warn("table load failed", "table", q.Table, "err", err)
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	result, err := engine.Execute(q, tbl, engine.Options{})
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	resp := QueryResponse{Fields: q.SelectedFields, Rows: [][]string{}}
	rows := result.Rows
	if req.Header && !result.Empty() {
		rows = append([]int{0}, rows...)
	}
	for _, row := range rows {
		cells := make([]string, len(q.SelectedFields))
		for i, f := range q.SelectedFields {
			cells[i] = tbl.Value(f, row)
		}
		resp.Rows = append(resp.Rows, cells)
	}
	resp.RowCount = len(result.Rows)

	s.log.Info("query served", "table", q.Table, "rows", resp.RowCount)
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: resp})
}

// resolveTable joins the requested table path onto the root directory and
// rejects anything that climbs back out of it.
func (s *Server) resolveTable(name string) (string, bool) {
	if s.cfg.Root == "" {
		return name, true
	}
	path := filepath.Join(s.cfg.Root, filepath.Clean("/"+name))
	rel, err := filepath.Rel(s.cfg.Root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", false
	}
	return path, true
}
