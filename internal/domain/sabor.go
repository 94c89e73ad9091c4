package domain

import "time"

// Sabor é um tipo de pizza vendido por pedaço.
type Sabor struct {
	ID           int
	Nome         string
	PrecoPedaco  float64
	Ativo        bool
	DataCadastro time.Time
}

// SaborUpdate descreve uma atualização parcial: só os campos não-nil
// são aplicados.
type SaborUpdate struct {
	Nome        *string
	PrecoPedaco *float64
	Ativo       *bool
}

func (u SaborUpdate) Empty() bool {
	return u.Nome == nil && u.PrecoPedaco == nil && u.Ativo == nil
}
