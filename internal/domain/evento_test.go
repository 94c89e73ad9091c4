package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEvento_StatusConstants(t *testing.T) {
	assert.Equal(t, "ABERTO", EventoStatusAberto)
	assert.Equal(t, "FECHADO", EventoStatusFechado)
	assert.Equal(t, "FINALIZADO", EventoStatusFinalizado)
}

func TestIsValidEventoStatus(t *testing.T) {
	assert.True(t, IsValidEventoStatus("ABERTO"))
	assert.True(t, IsValidEventoStatus("FECHADO"))
	assert.True(t, IsValidEventoStatus("FINALIZADO"))
	assert.False(t, IsValidEventoStatus("aberto"))
	assert.False(t, IsValidEventoStatus("CANCELADO"))
	assert.False(t, IsValidEventoStatus(""))
}

func TestEvento_AceitaPedidos(t *testing.T) {
	now := time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)

	evento := Evento{
		Status:     EventoStatusAberto,
		DataLimite: now.Add(24 * time.Hour),
	}
	assert.True(t, evento.AceitaPedidos(now))
}

func TestEvento_AceitaPedidos_DataLimitePassada(t *testing.T) {
	now := time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)

	evento := Evento{
		Status:     EventoStatusAberto,
		DataLimite: now.Add(-time.Minute),
	}
	assert.False(t, evento.AceitaPedidos(now))
}

func TestEvento_AceitaPedidos_DataLimiteExata(t *testing.T) {
	now := time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)

	// Limite estritamente no futuro: igual a agora não aceita mais.
	evento := Evento{
		Status:     EventoStatusAberto,
		DataLimite: now,
	}
	assert.False(t, evento.AceitaPedidos(now))
}

func TestEvento_AceitaPedidos_StatusFechado(t *testing.T) {
	now := time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)

	for _, status := range []string{EventoStatusFechado, EventoStatusFinalizado} {
		evento := Evento{
			Status:     status,
			DataLimite: now.Add(24 * time.Hour),
		}
		assert.False(t, evento.AceitaPedidos(now), "status %s", status)
	}
}

func TestEvento_NomeOpcional(t *testing.T) {
	nome := "Pizzada de Junho"

	comNome := Evento{Nome: &nome}
	semNome := Evento{}

	assert.NotNil(t, comNome.Nome)
	assert.Equal(t, "Pizzada de Junho", *comNome.Nome)
	assert.Nil(t, semNome.Nome)
}
