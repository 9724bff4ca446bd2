package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/qdrawlabs/qdraw/pkg/cache"
	qio "github.com/qdrawlabs/qdraw/pkg/io"
	"github.com/qdrawlabs/qdraw/pkg/render/sink"
	"github.com/qdrawlabs/qdraw/pkg/render/styles"
	"github.com/qdrawlabs/qdraw/pkg/storage"

	"github.com/qdrawlabs/qdraw/pkg/errors"
)

// renderRequest is the POST /v1/render body. The circuit field uses the
// same JSON document format as the io package; style overrides are
// optional and merge over the defaults.
type renderRequest struct {
	Circuit json.RawMessage  `json:"circuit"`
	Format  string           `json:"format"`
	Style   styles.Overrides `json:"style"`
}

var contentTypes = map[string]string{
	"svg":  "image/svg+xml",
	"png":  "image/png",
	"pdf":  "application/pdf",
	"json": "application/json",
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode request"))
		return
	}
	if req.Format == "" {
		req.Format = "svg"
	}
	if _, ok := contentTypes[req.Format]; !ok {
		s.writeError(w, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", req.Format))
		return
	}

	c, err := qio.ReadJSON(bytes.NewReader(req.Circuit))
	if err != nil {
		s.writeError(w, err)
		return
	}
	st := req.Style.Apply(styles.Default())

	circuitHash := cache.Hash(req.Circuit)
	styleJSON, _ := json.Marshal(st)
	key := cache.ArtifactKey(circuitHash, req.Format, cache.Hash(styleJSON))

	ctx := r.Context()
	data, hit, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("cache read failed", "err", err)
		hit = false
	}

	if !hit {
		switch req.Format {
		case "svg":
			data, err = sink.RenderSVG(c, st)
		case "png":
			data, err = sink.RenderPNG(c, st, sink.DefaultPNGScale)
		case "pdf":
			data, err = sink.RenderPDF(c, st)
		case "json":
			data, err = sink.RenderJSON(c, st)
		}
		if err != nil {
			s.writeError(w, err)
			return
		}
		if err := s.cache.Set(ctx, key, data, s.artifactTTL); err != nil {
			s.logger.Warn("cache write failed", "err", err)
		}
	}

	d := storage.Diagram{
		ID:          uuid.New(),
		CircuitHash: circuitHash,
		Format:      req.Format,
		Data:        data,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.store.Put(ctx, d); err != nil {
		s.writeError(w, err)
		return
	}

	s.logger.Info("rendered diagram",
		"id", d.ID, "format", req.Format, "qubits", c.NumQubits(), "gates", c.Len(), "cached", hit)

	w.Header().Set("Content-Type", contentTypes[req.Format])
	w.Header().Set("X-Diagram-Id", d.ID.String())
	_, _ = w.Write(data)
}

func (s *Server) handleGetDiagram(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse diagram id"))
		return
	}

	d, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", contentTypes[d.Format])
	w.Header().Set("X-Diagram-Id", d.ID.String())
	_, _ = w.Write(d.Data)
}

// diagramSummary is the list representation: metadata only, no payload.
type diagramSummary struct {
	ID          uuid.UUID `json:"id"`
	CircuitHash string    `json:"circuit_hash"`
	Format      string    `json:"format"`
	CreatedAt   time.Time `json:"created_at"`
}

func (s *Server) handleListDiagrams(w http.ResponseWriter, r *http.Request) {
	diagrams, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}

	out := make([]diagramSummary, len(diagrams))
	for i, d := range diagrams {
		out[i] = diagramSummary{
			ID:          d.ID,
			CircuitHash: d.CircuitHash,
			Format:      d.Format,
			CreatedAt:   d.CreatedAt,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}

func (s *Server) handleDeleteDiagram(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse diagram id"))
		return
	}
	if err := s.store.Delete(r.Context(), id); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeError maps error codes to HTTP statuses and writes a JSON error
// body with the user-facing message.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidQASM, errors.ErrCodeInvalidStyle,
		errors.ErrCodeInvalidCircuit, errors.ErrCodeInvalidQubit, errors.ErrCodeInvalidGate,
		errors.ErrCodeInvalidAxis, errors.ErrCodeQubitOutOfRange:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound:
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": errors.UserMessage(err)})
}
