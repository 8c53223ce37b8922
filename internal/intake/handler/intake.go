package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"renovacampo/internal/intake/service"
	apperrors "renovacampo/pkg/errors"
	httputil "renovacampo/pkg/http"
	"renovacampo/pkg/logger"
	"renovacampo/pkg/model"
)

type IntakeHandler struct {
	service service.IntakeService
	log     *logger.Logger
}

func NewIntakeHandler(service service.IntakeService, log *logger.Logger) *IntakeHandler {
	return &IntakeHandler{
		service: service,
		log:     log,
	}
}

type taxIDRequest struct {
	TaxID string `json:"taxId"`
}

func (h *IntakeHandler) Submit(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	raw := model.NewFields()
	if err := httputil.DecodeBody(r, raw); err != nil {
		h.writeError(w, "Submit", err)
		return
	}

	sub, err := h.service.Submit(r.Context(), ps.ByName("kind"), raw)
	if err != nil {
		h.writeError(w, "Submit", err)
		return
	}

	if err := httputil.WriteCreated(w, sub); err != nil {
		h.log.Error("failed to write created response", "handler", "Submit", "operation", "WriteCreated", "error", err)
	}
}

func (h *IntakeHandler) Preview(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	raw := model.NewFields()
	if err := httputil.DecodeBody(r, raw); err != nil {
		h.writeError(w, "Preview", err)
		return
	}

	preview, err := h.service.Preview(r.Context(), ps.ByName("kind"), raw)
	if err != nil {
		h.writeError(w, "Preview", err)
		return
	}

	if err := httputil.WriteSuccess(w, preview); err != nil {
		h.log.Error("failed to write success response", "handler", "Preview", "operation", "WriteSuccess", "error", err)
	}
}

func (h *IntakeHandler) ValidateTaxID(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req taxIDRequest
	if err := httputil.DecodeBody(r, &req); err != nil {
		h.writeError(w, "ValidateTaxID", err)
		return
	}

	if err := httputil.WriteSuccess(w, h.service.ValidateTaxID(req.TaxID)); err != nil {
		h.log.Error("failed to write success response", "handler", "ValidateTaxID", "operation", "WriteSuccess", "error", err)
	}
}

func (h *IntakeHandler) GetSubmission(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sub, err := h.service.GetSubmission(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "GetSubmission", err)
		return
	}

	if err := httputil.WriteSuccess(w, sub); err != nil {
		h.log.Error("failed to write success response", "handler", "GetSubmission", "operation", "WriteSuccess", "error", err)
	}
}

func (h *IntakeHandler) ListSubmissions(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()

	limit := 0
	if limitStr := query.Get("limit"); limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil {
			h.writeError(w, "ListSubmissions", apperrors.InvalidInput(fmt.Sprintf("invalid limit parameter: %s", limitStr)))
			return
		}
	}

	subs, err := h.service.ListSubmissions(r.Context(), query.Get("kind"), limit)
	if err != nil {
		h.writeError(w, "ListSubmissions", err)
		return
	}

	if err := httputil.WriteSuccess(w, subs); err != nil {
		h.log.Error("failed to write success response", "handler", "ListSubmissions", "operation", "WriteSuccess", "error", err)
	}
}

func (h *IntakeHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func (h *IntakeHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/intake/:kind", h.Submit)
	router.POST("/api/v1/intake/:kind/preview", h.Preview)
	router.POST("/api/v1/taxid/validate", h.ValidateTaxID)
	router.GET("/api/v1/submissions", h.ListSubmissions)
	router.GET("/api/v1/submissions/:id", h.GetSubmission)
}
