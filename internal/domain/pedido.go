package domain

import "time"

type Pedido struct {
	ID           int
	EventoID     int
	UsuarioID    int
	UsuarioNome  string
	UsuarioSetor string
	ValorTotal   float64
	ValorFrete   float64
	Status       string
	DataPedido   time.Time
	Itens        []ItemPedido
}

// ItemPedido guarda o preço do sabor no momento do pedido; mudanças de
// preço posteriores não alteram pedidos já feitos.
type ItemPedido struct {
	ID            int
	PedidoID      int
	SaborID       int
	SaborNome     string
	Quantidade    int
	PrecoUnitario float64
	Subtotal      float64
}

const (
	PedidoStatusPendente   = "PENDENTE"
	PedidoStatusConfirmado = "CONFIRMADO"
	PedidoStatusPago       = "PAGO"
)

func IsValidPedidoStatus(status string) bool {
	switch status {
	case PedidoStatusPendente, PedidoStatusConfirmado, PedidoStatusPago:
		return true
	}
	return false
}

// Uma pizza inteira tem 8 pedaços; cada item de pedido é limitado a uma
// pizza do mesmo sabor.
const (
	PedacosPorPizza   = 8
	MaxPedacosPorItem = 8
)

func PizzasCompletas(totalPedacos int) int {
	if totalPedacos < 0 {
		return 0
	}
	return totalPedacos / PedacosPorPizza
}

func PedacosRestantes(totalPedacos int) int {
	if totalPedacos < 0 {
		return 0
	}
	return totalPedacos % PedacosPorPizza
}
