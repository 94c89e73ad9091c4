package order

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"pizzada/internal/domain"
	apperrors "pizzada/internal/errors"
)

type orderService struct {
	repo          Repository
	eventoRepo    EventoRepository
	saborRepo     SaborRepository
	shippingValue float64
	logger        *zap.Logger
	now           func() time.Time
}

func NewService(repo Repository, eventoRepo EventoRepository, saborRepo SaborRepository, shippingValue float64, logger *zap.Logger) Service {
	return &orderService{
		repo:          repo,
		eventoRepo:    eventoRepo,
		saborRepo:     saborRepo,
		shippingValue: shippingValue,
		logger:        logger,
		now:           time.Now,
	}
}

func (s *orderService) Create(ctx context.Context, usuario *domain.Usuario, eventoID int, itens []ItemRequest) (*domain.Pedido, error) {
	evento, err := s.eventoRepo.FindByID(ctx, eventoID)
	if err != nil {
		return nil, err
	}

	if !evento.AceitaPedidos(s.now()) {
		return nil, apperrors.NewConflictError("evento não está aberto para pedidos")
	}

	exists, err := s.repo.ExistsByEventoAndUsuario(ctx, eventoID, usuario.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewConflictError("usuário já possui um pedido neste evento")
	}

	pedidoItens, valorTotal, err := s.buildItens(ctx, itens)
	if err != nil {
		return nil, err
	}

	pedido := domain.Pedido{
		EventoID:   eventoID,
		UsuarioID:  usuario.ID,
		ValorTotal: valorTotal,
		ValorFrete: s.shippingValue,
		Status:     domain.PedidoStatusPendente,
		Itens:      pedidoItens,
	}

	id, err := s.repo.CreateWithItens(ctx, pedido)
	if err != nil {
		return nil, err
	}

	s.logger.Info("pedido created",
		zap.Int("pedidoId", id),
		zap.Int("eventoId", eventoID),
		zap.Int("usuarioId", usuario.ID),
		zap.Float64("valorTotal", valorTotal),
	)

	return s.repo.FindByID(ctx, id)
}

// buildItens resolve cada sabor e congela o preço unitário vigente no
// item: mudanças de preço futuras não mexem em pedidos passados.
func (s *orderService) buildItens(ctx context.Context, itens []ItemRequest) ([]domain.ItemPedido, float64, error) {
	var details []apperrors.ValidationDetail
	pedidoItens := make([]domain.ItemPedido, 0, len(itens))
	valorTotal := 0.0

	for i, item := range itens {
		sabor, err := s.saborRepo.FindByID(ctx, item.SaborID)
		if err != nil {
			if _, ok := apperrors.IsNotFoundError(err); ok {
				details = append(details, apperrors.ValidationDetail{
					Field:   fmt.Sprintf("itens[%d].sabor_id", i),
					Message: fmt.Sprintf("sabor com id %d não encontrado", item.SaborID),
				})
				continue
			}
			return nil, 0, err
		}

		if !sabor.Ativo {
			details = append(details, apperrors.ValidationDetail{
				Field:   fmt.Sprintf("itens[%d].sabor_id", i),
				Message: fmt.Sprintf("sabor %q está desativado", sabor.Nome),
			})
			continue
		}

		subtotal := float64(item.Quantidade) * sabor.PrecoPedaco
		pedidoItens = append(pedidoItens, domain.ItemPedido{
			SaborID:       sabor.ID,
			SaborNome:     sabor.Nome,
			Quantidade:    item.Quantidade,
			PrecoUnitario: sabor.PrecoPedaco,
			Subtotal:      subtotal,
		})
		valorTotal += subtotal
	}

	if len(details) > 0 {
		return nil, 0, apperrors.NewValidationError("validation failed", details...)
	}

	return pedidoItens, valorTotal, nil
}

func (s *orderService) Get(ctx context.Context, usuario *domain.Usuario, id int) (*domain.Pedido, error) {
	pedido, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if pedido.UsuarioID != usuario.ID && !usuario.IsAdmin {
		return nil, apperrors.NewForbiddenError("pedido pertence a outro usuário")
	}

	return pedido, nil
}

func (s *orderService) List(ctx context.Context, eventoID *int) ([]domain.Pedido, error) {
	return s.repo.List(ctx, eventoID)
}

func (s *orderService) ListByUsuario(ctx context.Context, usuarioID int, eventoID *int) ([]domain.Pedido, error) {
	return s.repo.ListByUsuario(ctx, usuarioID, eventoID)
}

func (s *orderService) UpdateStatus(ctx context.Context, id int, status string) (*domain.Pedido, error) {
	// Só a pertinência ao enum é validada; o admin pode voltar um PAGO
	// para PENDENTE para corrigir um engano.
	if !domain.IsValidPedidoStatus(status) {
		return nil, apperrors.NewValidationError("status inválido", apperrors.ValidationDetail{
			Field:   "status",
			Message: "status must be one of PENDENTE, CONFIRMADO, PAGO",
		})
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, id)
}

// Delete libera a vaga do usuário no evento. O dono só pode excluir
// enquanto o evento aceita pedidos; admin exclui a qualquer momento.
func (s *orderService) Delete(ctx context.Context, usuario *domain.Usuario, id int) error {
	pedido, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !usuario.IsAdmin {
		if pedido.UsuarioID != usuario.ID {
			return apperrors.NewForbiddenError("pedido pertence a outro usuário")
		}

		evento, err := s.eventoRepo.FindByID(ctx, pedido.EventoID)
		if err != nil {
			return err
		}
		if !evento.AceitaPedidos(s.now()) {
			return apperrors.NewConflictError("evento não está mais aberto; pedido não pode ser excluído")
		}
	}

	return s.repo.Delete(ctx, id)
}
