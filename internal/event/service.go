package event

import (
	"context"
	"fmt"
	"time"

	"pizzada/internal/domain"
	apperrors "pizzada/internal/errors"
)

type eventService struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &eventService{repo: repo, now: time.Now}
}

func (s *eventService) List(ctx context.Context) ([]domain.Evento, error) {
	return s.repo.List(ctx)
}

func (s *eventService) GetAtivo(ctx context.Context) (*domain.Evento, error) {
	return s.repo.FindAtivo(ctx, s.now())
}

func (s *eventService) Get(ctx context.Context, id int) (*domain.Evento, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *eventService) Create(ctx context.Context, dataEvento, dataLimite time.Time, nome *string) (*domain.Evento, error) {
	exists, err := s.repo.ExistsByData(ctx, dataEvento)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewConflictError(
			fmt.Sprintf("já existe um evento na data %s", dataEvento.Format("2006-01-02")))
	}

	evento := domain.Evento{
		Nome:       nome,
		DataEvento: dataEvento,
		DataLimite: dataLimite,
		// Todo evento nasce ABERTO, independente do que o cliente mandar.
		Status: domain.EventoStatusAberto,
	}

	id, err := s.repo.Insert(ctx, evento)
	if err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, id)
}

func (s *eventService) Update(ctx context.Context, id int, update domain.EventoUpdate) (*domain.Evento, error) {
	if update.Empty() {
		return nil, apperrors.NewValidationError("nenhum campo para atualizar", apperrors.ValidationDetail{
			Field:   "body",
			Message: "informe ao menos um campo: nome, data_limite ou status",
		})
	}

	// Só a pertinência ao enum é validada; transições como
	// FINALIZADO -> ABERTO ficam a critério do admin.
	if update.Status != nil && !domain.IsValidEventoStatus(*update.Status) {
		return nil, apperrors.NewValidationError("status inválido", apperrors.ValidationDetail{
			Field:   "status",
			Message: "status must be one of ABERTO, FECHADO, FINALIZADO",
		})
	}

	if err := s.repo.Update(ctx, id, update); err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, id)
}

func (s *eventService) Delete(ctx context.Context, id int) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	count, err := s.repo.CountPedidos(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperrors.NewConflictError(
			fmt.Sprintf("evento possui %d pedido(s); exclua os pedidos antes de excluir o evento", count))
	}

	return s.repo.Delete(ctx, id)
}
