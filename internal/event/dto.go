package event

import (
	"time"

	"pizzada/internal/domain"
)

type CreateEventoRequest struct {
	Nome       *string `json:"nome"`
	DataEvento string  `json:"data_evento"`
	DataLimite string  `json:"data_limite"`
}

// Campos ausentes no JSON ficam nil e não são aplicados.
type UpdateEventoRequest struct {
	Nome       *string `json:"nome"`
	DataLimite *string `json:"data_limite"`
	Status     *string `json:"status"`
}

type EventoDTO struct {
	ID          int       `json:"id"`
	Nome        *string   `json:"nome"`
	DataEvento  string    `json:"data_evento"`
	DataLimite  time.Time `json:"data_limite"`
	Status      string    `json:"status"`
	DataCriacao time.Time `json:"data_criacao"`
}

func toEventoDTO(e *domain.Evento) EventoDTO {
	return EventoDTO{
		ID:          e.ID,
		Nome:        e.Nome,
		DataEvento:  e.DataEvento.Format("2006-01-02"),
		DataLimite:  e.DataLimite,
		Status:      e.Status,
		DataCriacao: e.DataCriacao,
	}
}
