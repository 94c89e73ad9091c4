package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPedido_StatusConstants(t *testing.T) {
	assert.Equal(t, "PENDENTE", PedidoStatusPendente)
	assert.Equal(t, "CONFIRMADO", PedidoStatusConfirmado)
	assert.Equal(t, "PAGO", PedidoStatusPago)
}

func TestIsValidPedidoStatus(t *testing.T) {
	assert.True(t, IsValidPedidoStatus("PENDENTE"))
	assert.True(t, IsValidPedidoStatus("CONFIRMADO"))
	assert.True(t, IsValidPedidoStatus("PAGO"))
	assert.False(t, IsValidPedidoStatus("pendente"))
	assert.False(t, IsValidPedidoStatus("CANCELADO"))
	assert.False(t, IsValidPedidoStatus(""))
}

func TestPizzasCompletas(t *testing.T) {
	assert.Equal(t, 0, PizzasCompletas(0))
	assert.Equal(t, 0, PizzasCompletas(7))
	assert.Equal(t, 1, PizzasCompletas(8))
	assert.Equal(t, 1, PizzasCompletas(9))
	assert.Equal(t, 1, PizzasCompletas(12))
	assert.Equal(t, 2, PizzasCompletas(16))
	assert.Equal(t, 0, PizzasCompletas(-3))
}

func TestPedacosRestantes(t *testing.T) {
	assert.Equal(t, 0, PedacosRestantes(0))
	assert.Equal(t, 7, PedacosRestantes(7))
	assert.Equal(t, 0, PedacosRestantes(8))
	assert.Equal(t, 1, PedacosRestantes(9))
	assert.Equal(t, 4, PedacosRestantes(12))
	assert.Equal(t, 0, PedacosRestantes(-3))
}

// Para qualquer total de pedaços, pizzas*8 + restantes devolve o total.
func TestPizzasCompletas_SomaFecha(t *testing.T) {
	for pedacos := 0; pedacos <= 64; pedacos++ {
		soma := PizzasCompletas(pedacos)*PedacosPorPizza + PedacosRestantes(pedacos)
		assert.Equal(t, pedacos, soma, "pedacos=%d", pedacos)
	}
}

func TestItemPedido_SnapshotDePreco(t *testing.T) {
	item := ItemPedido{
		SaborID:       3,
		SaborNome:     "Calabresa",
		Quantidade:    5,
		PrecoUnitario: 6.50,
		Subtotal:      32.50,
	}

	assert.Equal(t, 5, item.Quantidade)
	assert.Equal(t, 6.50, item.PrecoUnitario)
	assert.Equal(t, 32.50, item.Subtotal)
}
