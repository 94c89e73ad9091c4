package domain

import "time"

type Evento struct {
	ID          int
	Nome        *string
	DataEvento  time.Time
	DataLimite  time.Time
	Status      string
	DataCriacao time.Time
}

const (
	EventoStatusAberto     = "ABERTO"
	EventoStatusFechado    = "FECHADO"
	EventoStatusFinalizado = "FINALIZADO"
)

func IsValidEventoStatus(status string) bool {
	switch status {
	case EventoStatusAberto, EventoStatusFechado, EventoStatusFinalizado:
		return true
	}
	return false
}

// AceitaPedidos indica se o evento ainda recebe pedidos: precisa estar
// ABERTO e com a data limite no futuro.
func (e Evento) AceitaPedidos(now time.Time) bool {
	return e.Status == EventoStatusAberto && e.DataLimite.After(now)
}

// EventoUpdate descreve uma atualização parcial: só os campos não-nil
// são aplicados.
type EventoUpdate struct {
	Nome       *string
	DataLimite *time.Time
	Status     *string
}

func (u EventoUpdate) Empty() bool {
	return u.Nome == nil && u.DataLimite == nil && u.Status == nil
}
