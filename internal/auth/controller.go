package auth

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

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

func (c *Controller) HandleRegister(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	req.NomeCompleto = strings.TrimSpace(req.NomeCompleto)
	req.Setor = strings.TrimSpace(req.Setor)

	if err := c.validateRegisterRequest(req); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	usuario, err := c.service.Register(r.Context(), req.NomeCompleto, req.Setor, req.Senha, req.IsAdmin)
	if err != nil {
		c.handleServiceError(w, err, logger)
		return
	}

	logger.Info("usuario registered", zap.Int("usuarioId", usuario.ID))
	c.writeJSON(w, http.StatusCreated, toUsuarioDTO(usuario))
}

func (c *Controller) HandleLogin(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if req.NomeCompleto == "" || req.Senha == "" {
		c.writeValidationError(w, "validation failed", apperrors.ValidationDetail{
			Field:   "nome_completo",
			Message: "nome_completo e senha são obrigatórios",
		})
		return
	}

	accessToken, expiresAt, usuario, err := c.service.Login(r.Context(), req.NomeCompleto, req.Senha)
	if err != nil {
		c.handleServiceError(w, err, logger)
		return
	}

	logger.Info("usuario logged in", zap.Int("usuarioId", usuario.ID))
	c.writeJSON(w, http.StatusOK, LoginResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
		Usuario:     toUsuarioDTO(usuario),
	})
}

// HandleMe devolve o usuário que o middleware já resolveu.
func (c *Controller) HandleMe(w http.ResponseWriter, r *http.Request) {
	usuario, ok := UsuarioFrom(r.Context())
	if !ok {
		c.writeJSON(w, http.StatusUnauthorized, map[string]string{
			"error":   "UNAUTHORIZED",
			"message": "credencial não informada",
		})
		return
	}

	c.writeJSON(w, http.StatusOK, toUsuarioDTO(usuario))
}

func (c *Controller) validateRegisterRequest(req RegisterRequest) error {
	var details []apperrors.ValidationDetail

	if len(req.NomeCompleto) < 3 || len(req.NomeCompleto) > 200 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "nome_completo",
			Message: "nome_completo must be between 3 and 200 characters",
		})
	}

	if len(req.Setor) < 2 || len(req.Setor) > 100 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "setor",
			Message: "setor must be between 2 and 100 characters",
		})
	}

	if len(req.Senha) < 6 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "senha",
			Message: "senha must be at least 6 characters",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}

	return nil
}

func (c *Controller) handleServiceError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if ce, ok := apperrors.IsConflictError(err); ok {
		// Regras de negócio violadas respondem 400, igual ao resto da API.
		c.writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":   "CONFLICT",
			"message": ce.Message,
		})
		return
	}

	if ue, ok := apperrors.IsUnauthorizedError(err); ok {
		c.writeJSON(w, http.StatusUnauthorized, map[string]string{
			"error":   "UNAUTHORIZED",
			"message": ue.Message,
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
