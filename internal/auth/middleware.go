package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"pizzada/internal/domain"
	apperrors "pizzada/internal/errors"
	"pizzada/internal/token"
)

type contextKey string

const usuarioContextKey contextKey = "usuario"

// UsuarioFrom devolve o usuário autenticado colocado no contexto pelo
// middleware. Handlers atrás de RequireUser/RequireAdmin podem assumir
// que ele existe.
func UsuarioFrom(ctx context.Context) (*domain.Usuario, bool) {
	u, ok := ctx.Value(usuarioContextKey).(*domain.Usuario)
	return u, ok
}

type Middleware struct {
	tokenMaker token.Maker
	service    Service
	logger     *zap.Logger
}

func NewMiddleware(tokenMaker token.Maker, service Service, logger *zap.Logger) *Middleware {
	return &Middleware{
		tokenMaker: tokenMaker,
		service:    service,
		logger:     logger,
	}
}

// RequireUser exige um bearer token válido de um usuário ativo e coloca
// o usuário resolvido no contexto da requisição.
func (m *Middleware) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		usuario, ok := m.authenticate(w, r)
		if !ok {
			return
		}
		ctx := context.WithValue(r.Context(), usuarioContextKey, usuario)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin exige, além do token válido, que o usuário seja admin.
func (m *Middleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		usuario, ok := m.authenticate(w, r)
		if !ok {
			return
		}
		if !usuario.IsAdmin {
			m.writeError(w, http.StatusForbidden, "FORBIDDEN", "acesso restrito a administradores")
			return
		}
		ctx := context.WithValue(r.Context(), usuarioContextKey, usuario)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) authenticate(w http.ResponseWriter, r *http.Request) (*domain.Usuario, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		m.writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "credencial não informada")
		return nil, false
	}

	fields := strings.Fields(header)
	if len(fields) != 2 || !strings.EqualFold(fields[0], "Bearer") {
		m.writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "formato do header Authorization inválido")
		return nil, false
	}

	payload, err := m.tokenMaker.VerifyToken(fields[1])
	if err != nil {
		msg := "credencial inválida"
		if err == token.ErrExpiredToken {
			msg = "credencial expirada"
		}
		m.writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", msg)
		return nil, false
	}

	usuario, err := m.service.GetUsuarioAtivo(r.Context(), payload.UserID)
	if err != nil {
		if ue, ok := apperrors.IsUnauthorizedError(err); ok {
			m.writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", ue.Message)
			return nil, false
		}
		m.logger.Error("resolving current user failed", zap.Error(err))
		m.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
		return nil, false
	}

	return usuario, true
}

func (m *Middleware) writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"error":   code,
		"message": message,
	}); err != nil {
		m.logger.Error("failed to encode response", zap.Error(err))
	}
}
