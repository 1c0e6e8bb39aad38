// Package server exposes the lookup and registration operations as a local JSON API for a
// browser based UI.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/at-ishikawa/ogura-an/internal/app"
	"github.com/at-ishikawa/ogura-an/internal/apperror"
	"github.com/at-ishikawa/ogura-an/internal/i18n"
	"github.com/at-ishikawa/ogura-an/internal/notion"
)

const (
	PathFetchWordMeaning = "/api/fetch-word-meaning"
	PathRegisterRecord   = "/api/register-record"
	PathNotifyError      = "/api/notify-error"

	maxRequestBodyBytes = 1 << 20
)

type FetchWordMeaningRequest struct {
	Word    string `json:"word"`
	Context string `json:"context"`
}

type FetchWordMeaningResponse struct {
	Result string `json:"result"`
}

type RegisterRecordRequest struct {
	ResultText string `json:"resultText"`
}

type RegisterRecordResponse struct {
	Page notion.Page `json:"page"`
}

type NotifyErrorRequest struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// Handler serves the JSON API.
type Handler struct {
	service *app.Service
}

func NewHandler(service *app.Service) *Handler {
	return &Handler{service: service}
}

// Routes registers every endpoint on a new mux.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST "+PathFetchWordMeaning, h.FetchWordMeaning)
	mux.HandleFunc("POST "+PathRegisterRecord, h.RegisterRecord)
	mux.HandleFunc("POST "+PathNotifyError, h.NotifyError)
	return mux
}

func (h *Handler) FetchWordMeaning(w http.ResponseWriter, r *http.Request) {
	var req FetchWordMeaningRequest
	if err := decodeRequest(w, r, &req); err != nil {
		h.writeBadRequest(w, err)
		return
	}

	result, err := h.service.FetchWordMeaning(r.Context(), req.Word, req.Context)
	if err != nil {
		h.writeError(w, err, i18n.KeyLookupFailed)
		return
	}
	writeJSON(w, http.StatusOK, FetchWordMeaningResponse{Result: result})
}

func (h *Handler) RegisterRecord(w http.ResponseWriter, r *http.Request) {
	var req RegisterRecordRequest
	if err := decodeRequest(w, r, &req); err != nil {
		h.writeBadRequest(w, err)
		return
	}

	page, err := h.service.RegisterRecord(r.Context(), req.ResultText)
	if err != nil {
		h.writeError(w, err, i18n.KeyRegisterFailed)
		return
	}
	writeJSON(w, http.StatusOK, RegisterRecordResponse{Page: page})
}

func (h *Handler) NotifyError(w http.ResponseWriter, r *http.Request) {
	var req NotifyErrorRequest
	if err := decodeRequest(w, r, &req); err != nil {
		h.writeBadRequest(w, err)
		return
	}

	h.service.NotifyError(req.Type, req.Message)
	w.WriteHeader(http.StatusNoContent)
}

func decodeRequest(w http.ResponseWriter, r *http.Request, v any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("decoder.Decode > %w", err)
	}
	return nil
}

func (h *Handler) writeBadRequest(w http.ResponseWriter, err error) {
	slog.Default().Debug("bad request", "error", err)
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: h.service.Message(i18n.KeyBadRequest)})
}

func (h *Handler) writeError(w http.ResponseWriter, err error, fallbackKey string) {
	writeJSON(w, statusCode(err), ErrorResponse{Error: h.service.UserMessage(err, fallbackKey)})
}

// statusCode maps upstream failures to 502 and everything caused by the input to 400.
func statusCode(err error) int {
	switch {
	case errors.Is(err, apperror.ErrUpstreamRequest):
		return http.StatusBadGateway
	case errors.Is(err, apperror.ErrMalformedResult), errors.Is(err, apperror.ErrInvalidRecord):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Default().Error("failed to write a response", "error", err)
	}
}
