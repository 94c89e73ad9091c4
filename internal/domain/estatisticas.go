package domain

// EventoTotais são os agregados de um evento sobre seus pedidos.
// Consultas sem linhas produzem zeros, nunca null.
type EventoTotais struct {
	TotalParticipantes int
	TotalPedidos       int
	ValorTotal         float64
}

// SaborEstatistica agrupa os itens de um evento por sabor. Pizzas
// completas e pedaços restantes derivam de TotalPedacos.
type SaborEstatistica struct {
	SaborID      int
	SaborNome    string
	TotalPedacos int
	ValorTotal   float64
}
