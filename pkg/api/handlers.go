package api

import (
	"encoding/json"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/go-chi/chi/v5"
	"github.com/ssargent/freyjalink/pkg/codec"
	"github.com/ssargent/freyjalink/pkg/handle"
	"github.com/ssargent/freyjalink/pkg/storage"
)

// maxLinkBody bounds the size of a link request body
const maxLinkBody = 1 << 20

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	sendSuccess(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleCreateLink(w http.ResponseWriter, r *http.Request) {
	targets, ok := s.readTargets(w, r)
	if !ok {
		s.metrics.RecordLinkOperation("create", false)
		return
	}

	id, err := s.store.Create(targets)
	if err != nil {
		s.metrics.RecordLinkOperation("create", false)
		s.sendStoreError(w, "create", err)
		return
	}

	s.metrics.RecordLinkOperation("create", true)
	sendSuccess(w, http.StatusCreated, newLinkResponse(id, targets))
}

func (s *Server) handleGetLink(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseHandle(w, r)
	if !ok {
		s.metrics.RecordLinkOperation("get", false)
		return
	}

	targets, err := s.store.Read(id)
	if err != nil {
		s.metrics.RecordLinkOperation("get", false)
		s.sendStoreError(w, "get", err)
		return
	}

	s.metrics.RecordLinkOperation("get", true)
	sendSuccess(w, http.StatusOK, newLinkResponse(id, targets))
}

func (s *Server) handlePutLink(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseHandle(w, r)
	if !ok {
		s.metrics.RecordLinkOperation("put", false)
		return
	}
	targets, ok := s.readTargets(w, r)
	if !ok {
		s.metrics.RecordLinkOperation("put", false)
		return
	}

	if err := s.store.Update(id, targets); err != nil {
		s.metrics.RecordLinkOperation("put", false)
		s.sendStoreError(w, "put", err)
		return
	}

	s.metrics.RecordLinkOperation("put", true)
	sendSuccess(w, http.StatusOK, newLinkResponse(id, targets))
}

func (s *Server) handleDeleteLink(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseHandle(w, r)
	if !ok {
		s.metrics.RecordLinkOperation("delete", false)
		return
	}

	if err := s.store.Delete(id); err != nil {
		s.metrics.RecordLinkOperation("delete", false)
		s.sendStoreError(w, "delete", err)
		return
	}

	s.metrics.RecordLinkOperation("delete", true)
	sendSuccess(w, http.StatusOK, map[string]string{"handle": id.String()})
}

// parseHandle reads the {handle} URL parameter
func (s *Server) parseHandle(w http.ResponseWriter, r *http.Request) (handle.Handle, bool) {
	raw := chi.URLParam(r, "handle")
	if raw == "" {
		sendError(w, "Handle is required", http.StatusBadRequest)
		return nil, false
	}
	id, err := s.parser.Parse(raw)
	if err != nil {
		sendError(w, "Invalid handle: "+raw, http.StatusBadRequest)
		return nil, false
	}
	return id, true
}

// readTargets decodes a LinkRequest body into handles, preserving order
func (s *Server) readTargets(w http.ResponseWriter, r *http.Request) ([]handle.Handle, bool) {
	var req LinkRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxLinkBody)).Decode(&req); err != nil {
		sendError(w, "Invalid JSON in request body", http.StatusBadRequest)
		return nil, false
	}

	targets := make([]handle.Handle, len(req.Targets))
	for i, raw := range req.Targets {
		h, err := s.parser.Parse(raw)
		if err != nil {
			sendError(w, "Invalid target handle: "+raw, http.StatusBadRequest)
			return nil, false
		}
		targets[i] = h
	}
	return targets, true
}

// sendStoreError maps storage and codec errors onto HTTP statuses
func (s *Server) sendStoreError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		sendError(w, "Link not found", http.StatusNotFound)
	case errors.Is(err, codec.ErrHandleWidth):
		sendError(w, "Handle has the wrong width for this store", http.StatusBadRequest)
	case errors.Is(err, codec.ErrMalformedLink):
		s.logger.Error("corrupt link record", "operation", op, "error", err)
		sendError(w, "Stored link record is corrupt", http.StatusInternalServerError)
	default:
		s.logger.Error("link operation failed", "operation", op, "error", err)
		sendError(w, "Failed to "+op+" link", http.StatusInternalServerError)
	}
}

func newLinkResponse(id handle.Handle, targets []handle.Handle) LinkResponse {
	resp := LinkResponse{
		Handle:  id.String(),
		Targets: make([]string, len(targets)),
	}
	for i, t := range targets {
		resp.Targets[i] = t.String()
	}
	return resp
}
