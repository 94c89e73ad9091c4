package dashboard

import (
	"time"

	"pizzada/internal/domain"
)

type EventoDTO struct {
	ID         int       `json:"id"`
	Nome       *string   `json:"nome"`
	DataEvento string    `json:"data_evento"`
	DataLimite time.Time `json:"data_limite"`
	Status     string    `json:"status"`
}

// ResumoEvento é a visão rápida de um evento: quem participou, quantos
// pedidos, quantas pizzas fechadas e quanto dinheiro envolvido.
type ResumoEvento struct {
	Evento             EventoDTO `json:"evento"`
	TotalParticipantes int       `json:"total_participantes"`
	TotalPedidos       int       `json:"total_pedidos"`
	TotalPizzas        int       `json:"total_pizzas"`
	ValorTotal         float64   `json:"valor_total"`
}

type SaborEstatisticaDTO struct {
	SaborID          int     `json:"sabor_id"`
	SaborNome        string  `json:"sabor_nome"`
	TotalPedacos     int     `json:"total_pedacos"`
	PizzasCompletas  int     `json:"pizzas_completas"`
	PedacosRestantes int     `json:"pedacos_restantes"`
	ValorTotal       float64 `json:"valor_total"`
}

type EventoEstatisticas struct {
	EventoID             int                   `json:"evento_id"`
	DataEvento           string                `json:"data_evento"`
	Nome                 *string               `json:"nome"`
	Status               string                `json:"status"`
	TotalParticipantes   int                   `json:"total_participantes"`
	TotalPedidos         int                   `json:"total_pedidos"`
	ValorTotalEvento     float64               `json:"valor_total_evento"`
	EstatisticasPorSabor []SaborEstatisticaDTO `json:"estatisticas_por_sabor"`
}

func toEventoDTO(e *domain.Evento) EventoDTO {
	return EventoDTO{
		ID:         e.ID,
		Nome:       e.Nome,
		DataEvento: e.DataEvento.Format("2006-01-02"),
		DataLimite: e.DataLimite,
		Status:     e.Status,
	}
}
