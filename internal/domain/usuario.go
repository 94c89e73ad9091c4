package domain

import "time"

type Usuario struct {
	ID           int
	NomeCompleto string
	Setor        string
	SenhaHash    string
	IsAdmin      bool
	Ativo        bool
	DataCadastro time.Time
}
