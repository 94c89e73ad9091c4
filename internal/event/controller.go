package event

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"pizzada/internal/domain"
	apperrors "pizzada/internal/errors"
)

type Controller struct {
	service Service
	logger  *zap.Logger
}

func NewController(service Service, logger *zap.Logger) *Controller {
	return &Controller{
		service: service,
		logger:  logger,
	}
}

func (c *Controller) HandleList(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	eventos, err := c.service.List(r.Context())
	if err != nil {
		c.handleServiceError(w, err, logger)
		return
	}

	dtos := make([]EventoDTO, 0, len(eventos))
	for i := range eventos {
		dtos = append(dtos, toEventoDTO(&eventos[i]))
	}

	c.writeJSON(w, http.StatusOK, dtos)
}

func (c *Controller) HandleGetAtivo(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	evento, err := c.service.GetAtivo(r.Context())
	if err != nil {
		c.handleServiceError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, toEventoDTO(evento))
}

func (c *Controller) HandleGet(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	id, ok := c.parseID(w, r)
	if !ok {
		return
	}

	evento, err := c.service.Get(r.Context(), id)
	if err != nil {
		c.handleServiceError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, toEventoDTO(evento))
}

func (c *Controller) HandleCreate(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req CreateEventoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	var details []apperrors.ValidationDetail

	dataEvento, err := time.Parse("2006-01-02", req.DataEvento)
	if err != nil {
		details = append(details, apperrors.ValidationDetail{
			Field:   "data_evento",
			Message: "data_evento must be a date in the format 2006-01-02",
		})
	}

	dataLimite, err := time.Parse(time.RFC3339, req.DataLimite)
	if err != nil {
		details = append(details, apperrors.ValidationDetail{
			Field:   "data_limite",
			Message: "data_limite must be a timestamp in RFC 3339 format",
		})
	}

	if req.Nome != nil && len(*req.Nome) > 200 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "nome",
			Message: "nome must be at most 200 characters",
		})
	}

	if len(details) > 0 {
		c.writeValidationError(w, "validation failed", details...)
		return
	}

	evento, err := c.service.Create(r.Context(), dataEvento, dataLimite, req.Nome)
	if err != nil {
		c.handleServiceError(w, err, logger)
		return
	}

	logger.Info("evento created", zap.Int("eventoId", evento.ID), zap.String("dataEvento", req.DataEvento))
	c.writeJSON(w, http.StatusCreated, toEventoDTO(evento))
}

func (c *Controller) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	id, ok := c.parseID(w, r)
	if !ok {
		return
	}

	var req UpdateEventoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	update := domain.EventoUpdate{
		Nome:   req.Nome,
		Status: req.Status,
	}

	if req.DataLimite != nil {
		dataLimite, err := time.Parse(time.RFC3339, *req.DataLimite)
		if err != nil {
			c.writeValidationError(w, "validation failed", apperrors.ValidationDetail{
				Field:   "data_limite",
				Message: "data_limite must be a timestamp in RFC 3339 format",
			})
			return
		}
		update.DataLimite = &dataLimite
	}

	evento, err := c.service.Update(r.Context(), id, update)
	if err != nil {
		c.handleServiceError(w, err, logger)
		return
	}

	logger.Info("evento updated", zap.Int("eventoId", evento.ID))
	c.writeJSON(w, http.StatusOK, toEventoDTO(evento))
}

func (c *Controller) HandleDelete(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	id, ok := c.parseID(w, r)
	if !ok {
		return
	}

	if err := c.service.Delete(r.Context(), id); err != nil {
		c.handleServiceError(w, err, logger)
		return
	}

	logger.Info("evento deleted", zap.Int("eventoId", id))
	w.WriteHeader(http.StatusNoContent)
}

func (c *Controller) parseID(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		c.writeValidationError(w, "invalid id", apperrors.ValidationDetail{
			Field:   "id",
			Message: "id must be a positive integer",
		})
		return 0, false
	}
	return id, true
}

func (c *Controller) handleServiceError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	if ce, ok := apperrors.IsConflictError(err); ok {
		// Regras de negócio violadas respondem 400, igual ao resto da API.
		c.writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":   "CONFLICT",
			"message": ce.Message,
		})
		return
	}

	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, map[string]string{
			"error":   "NOT_FOUND",
			"message": nfe.Message,
		})
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error":   "INTERNAL_ERROR",
		"message": "an unexpected error occurred",
	})
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *Controller) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
