package order

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"pizzada/internal/auth"
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

func (c *Controller) HandleCreate(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	usuario, ok := auth.UsuarioFrom(r.Context())
	if !ok {
		c.writeUnauthenticated(w)
		return
	}

	var req CreatePedidoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := c.validateCreateRequest(req); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	pedido, err := c.service.Create(r.Context(), usuario, req.EventoID, req.Itens)
	if err != nil {
		c.handleServiceError(w, err, logger)
		return
	}

	logger.Info("pedido created", zap.Int("pedidoId", pedido.ID), zap.Int("usuarioId", usuario.ID))
	c.writeJSON(w, http.StatusCreated, toPedidoDTO(pedido))
}

func (c *Controller) HandleList(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	eventoID, ok := c.parseEventoFilter(w, r)
	if !ok {
		return
	}

	pedidos, err := c.service.List(r.Context(), eventoID)
	if err != nil {
		c.handleServiceError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, c.toDTOs(pedidos))
}

// HandleListMine lista só os pedidos do usuário autenticado.
func (c *Controller) HandleListMine(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	usuario, ok := auth.UsuarioFrom(r.Context())
	if !ok {
		c.writeUnauthenticated(w)
		return
	}

	eventoID, ok := c.parseEventoFilter(w, r)
	if !ok {
		return
	}

	pedidos, err := c.service.ListByUsuario(r.Context(), usuario.ID, eventoID)
	if err != nil {
		c.handleServiceError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, c.toDTOs(pedidos))
}

func (c *Controller) HandleGet(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	usuario, ok := auth.UsuarioFrom(r.Context())
	if !ok {
		c.writeUnauthenticated(w)
		return
	}

	id, ok := c.parseID(w, r)
	if !ok {
		return
	}

	pedido, err := c.service.Get(r.Context(), usuario, id)
	if err != nil {
		c.handleServiceError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, toPedidoDTO(pedido))
}

func (c *Controller) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	id, ok := c.parseID(w, r)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	pedido, err := c.service.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		c.handleServiceError(w, err, logger)
		return
	}

	logger.Info("pedido status updated", zap.Int("pedidoId", id), zap.String("status", req.Status))
	c.writeJSON(w, http.StatusOK, toPedidoDTO(pedido))
}

func (c *Controller) HandleDelete(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	usuario, ok := auth.UsuarioFrom(r.Context())
	if !ok {
		c.writeUnauthenticated(w)
		return
	}

	id, ok := c.parseID(w, r)
	if !ok {
		return
	}

	if err := c.service.Delete(r.Context(), usuario, id); err != nil {
		c.handleServiceError(w, err, logger)
		return
	}

	logger.Info("pedido deleted", zap.Int("pedidoId", id), zap.Int("usuarioId", usuario.ID))
	w.WriteHeader(http.StatusNoContent)
}

func (c *Controller) validateCreateRequest(req CreatePedidoRequest) error {
	var details []apperrors.ValidationDetail

	if req.EventoID <= 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "evento_id",
			Message: "evento_id must be a positive integer",
		})
	}

	if len(req.Itens) == 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "itens",
			Message: "itens must not be empty",
		})
	}

	saborIDs := make(map[int]bool)
	for i, item := range req.Itens {
		if item.SaborID <= 0 {
			details = append(details, apperrors.ValidationDetail{
				Field:   "itens[" + strconv.Itoa(i) + "].sabor_id",
				Message: "sabor_id must be a positive integer",
			})
		}

		if saborIDs[item.SaborID] {
			details = append(details, apperrors.ValidationDetail{
				Field:   "itens[" + strconv.Itoa(i) + "].sabor_id",
				Message: "sabor_id must not be duplicated",
			})
		}
		saborIDs[item.SaborID] = true

		// No máximo uma pizza inteira (8 pedaços) por sabor.
		if item.Quantidade < 1 || item.Quantidade > domain.MaxPedacosPorItem {
			details = append(details, apperrors.ValidationDetail{
				Field:   "itens[" + strconv.Itoa(i) + "].quantidade",
				Message: "quantidade must be between 1 and 8",
			})
		}
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

func (c *Controller) parseEventoFilter(w http.ResponseWriter, r *http.Request) (*int, bool) {
	raw := r.URL.Query().Get("evento_id")
	if raw == "" {
		return nil, true
	}

	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		c.writeValidationError(w, "invalid evento_id", apperrors.ValidationDetail{
			Field:   "evento_id",
			Message: "evento_id must be a positive integer",
		})
		return nil, false
	}
	return &id, true
}

func (c *Controller) toDTOs(pedidos []domain.Pedido) []PedidoDTO {
	dtos := make([]PedidoDTO, 0, len(pedidos))
	for i := range pedidos {
		dtos = append(dtos, toPedidoDTO(&pedidos[i]))
	}
	return dtos
}

func (c *Controller) writeUnauthenticated(w http.ResponseWriter) {
	c.writeJSON(w, http.StatusUnauthorized, map[string]string{
		"error":   "UNAUTHORIZED",
		"message": "credencial não informada",
	})
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

	if fe, ok := apperrors.IsForbiddenError(err); ok {
		c.writeJSON(w, http.StatusForbidden, map[string]string{
			"error":   "FORBIDDEN",
			"message": fe.Message,
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
