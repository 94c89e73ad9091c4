package flavor

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

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

	apenasAtivos := r.URL.Query().Get("ativos") == "true"

	sabores, err := c.service.List(r.Context(), apenasAtivos)
	if err != nil {
		c.handleServiceError(w, err, logger)
		return
	}

	dtos := make([]SaborDTO, 0, len(sabores))
	for i := range sabores {
		dtos = append(dtos, toSaborDTO(&sabores[i]))
	}

	c.writeJSON(w, http.StatusOK, dtos)
}

func (c *Controller) HandleGet(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	id, ok := c.parseID(w, r)
	if !ok {
		return
	}

	sabor, err := c.service.Get(r.Context(), id)
	if err != nil {
		c.handleServiceError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, toSaborDTO(sabor))
}

func (c *Controller) HandleCreate(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req CreateSaborRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	req.Nome = strings.TrimSpace(req.Nome)

	if err := c.validateSabor(req.Nome, req.PrecoPedaco); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	sabor, err := c.service.Create(r.Context(), req.Nome, req.PrecoPedaco)
	if err != nil {
		c.handleServiceError(w, err, logger)
		return
	}

	logger.Info("sabor created", zap.Int("saborId", sabor.ID))
	c.writeJSON(w, http.StatusCreated, toSaborDTO(sabor))
}

func (c *Controller) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	id, ok := c.parseID(w, r)
	if !ok {
		return
	}

	var req UpdateSaborRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	var details []apperrors.ValidationDetail
	if req.Nome != nil {
		nome := strings.TrimSpace(*req.Nome)
		req.Nome = &nome
		if len(nome) < 3 || len(nome) > 100 {
			details = append(details, apperrors.ValidationDetail{
				Field:   "nome",
				Message: "nome must be between 3 and 100 characters",
			})
		}
	}
	if req.PrecoPedaco != nil && *req.PrecoPedaco <= 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "preco_pedaco",
			Message: "preco_pedaco must be greater than zero",
		})
	}
	if len(details) > 0 {
		c.writeValidationError(w, "validation failed", details...)
		return
	}

	sabor, err := c.service.Update(r.Context(), id, domain.SaborUpdate{
		Nome:        req.Nome,
		PrecoPedaco: req.PrecoPedaco,
		Ativo:       req.Ativo,
	})
	if err != nil {
		c.handleServiceError(w, err, logger)
		return
	}

	logger.Info("sabor updated", zap.Int("saborId", sabor.ID))
	c.writeJSON(w, http.StatusOK, toSaborDTO(sabor))
}

func (c *Controller) HandleDelete(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	id, ok := c.parseID(w, r)
	if !ok {
		return
	}

	if err := c.service.Deactivate(r.Context(), id); err != nil {
		c.handleServiceError(w, err, logger)
		return
	}

	logger.Info("sabor deactivated", zap.Int("saborId", id))
	w.WriteHeader(http.StatusNoContent)
}

func (c *Controller) validateSabor(nome string, precoPedaco float64) error {
	var details []apperrors.ValidationDetail

	if len(nome) < 3 || len(nome) > 100 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "nome",
			Message: "nome must be between 3 and 100 characters",
		})
	}

	if precoPedaco <= 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "preco_pedaco",
			Message: "preco_pedaco must be greater than zero",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}

	return nil
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
