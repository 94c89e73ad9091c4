package dashboard

import (
	"context"

	"pizzada/internal/domain"
)

type dashboardService struct {
	repo       Repository
	eventoRepo EventoRepository
}

func NewService(repo Repository, eventoRepo EventoRepository) Service {
	return &dashboardService{
		repo:       repo,
		eventoRepo: eventoRepo,
	}
}

func (s *dashboardService) Resumo(ctx context.Context, eventoID int) (*ResumoEvento, error) {
	evento, err := s.eventoRepo.FindByID(ctx, eventoID)
	if err != nil {
		return nil, err
	}

	totais, err := s.repo.Totais(ctx, eventoID)
	if err != nil {
		return nil, err
	}

	totalPedacos, err := s.repo.TotalPedacos(ctx, eventoID)
	if err != nil {
		return nil, err
	}

	return &ResumoEvento{
		Evento:             toEventoDTO(evento),
		TotalParticipantes: totais.TotalParticipantes,
		TotalPedidos:       totais.TotalPedidos,
		// Soma todos os pedaços do evento e fecha em grupos de 8;
		// sobras não viram pizza.
		TotalPizzas: domain.PizzasCompletas(totalPedacos),
		ValorTotal:  totais.ValorTotal,
	}, nil
}

func (s *dashboardService) Estatisticas(ctx context.Context, eventoID int) (*EventoEstatisticas, error) {
	evento, err := s.eventoRepo.FindByID(ctx, eventoID)
	if err != nil {
		return nil, err
	}

	totais, err := s.repo.Totais(ctx, eventoID)
	if err != nil {
		return nil, err
	}

	stats, err := s.repo.EstatisticasPorSabor(ctx, eventoID)
	if err != nil {
		return nil, err
	}

	porSabor := make([]SaborEstatisticaDTO, 0, len(stats))
	for _, st := range stats {
		porSabor = append(porSabor, SaborEstatisticaDTO{
			SaborID:          st.SaborID,
			SaborNome:        st.SaborNome,
			TotalPedacos:     st.TotalPedacos,
			PizzasCompletas:  domain.PizzasCompletas(st.TotalPedacos),
			PedacosRestantes: domain.PedacosRestantes(st.TotalPedacos),
			ValorTotal:       st.ValorTotal,
		})
	}

	return &EventoEstatisticas{
		EventoID:             evento.ID,
		DataEvento:           evento.DataEvento.Format("2006-01-02"),
		Nome:                 evento.Nome,
		Status:               evento.Status,
		TotalParticipantes:   totais.TotalParticipantes,
		TotalPedidos:         totais.TotalPedidos,
		ValorTotalEvento:     totais.ValorTotal,
		EstatisticasPorSabor: porSabor,
	}, nil
}
