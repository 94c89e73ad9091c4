package order

import (
	"time"

	"pizzada/internal/domain"
)

type ItemRequest struct {
	SaborID    int `json:"sabor_id"`
	Quantidade int `json:"quantidade"`
}

type CreatePedidoRequest struct {
	EventoID int           `json:"evento_id"`
	Itens    []ItemRequest `json:"itens"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type ItemPedidoDTO struct {
	ID            int     `json:"id"`
	SaborID       int     `json:"sabor_id"`
	SaborNome     string  `json:"sabor_nome"`
	Quantidade    int     `json:"quantidade"`
	PrecoUnitario float64 `json:"preco_unitario"`
	Subtotal      float64 `json:"subtotal"`
}

type PedidoDTO struct {
	ID           int             `json:"id"`
	EventoID     int             `json:"evento_id"`
	UsuarioID    int             `json:"usuario_id"`
	UsuarioNome  string          `json:"usuario_nome"`
	UsuarioSetor string          `json:"usuario_setor"`
	ValorTotal   float64         `json:"valor_total"`
	ValorFrete   float64         `json:"valor_frete"`
	Status       string          `json:"status"`
	DataPedido   time.Time       `json:"data_pedido"`
	Itens        []ItemPedidoDTO `json:"itens"`
}

func toPedidoDTO(p *domain.Pedido) PedidoDTO {
	itens := make([]ItemPedidoDTO, 0, len(p.Itens))
	for _, item := range p.Itens {
		itens = append(itens, ItemPedidoDTO{
			ID:            item.ID,
			SaborID:       item.SaborID,
			SaborNome:     item.SaborNome,
			Quantidade:    item.Quantidade,
			PrecoUnitario: item.PrecoUnitario,
			Subtotal:      item.Subtotal,
		})
	}

	return PedidoDTO{
		ID:           p.ID,
		EventoID:     p.EventoID,
		UsuarioID:    p.UsuarioID,
		UsuarioNome:  p.UsuarioNome,
		UsuarioSetor: p.UsuarioSetor,
		ValorTotal:   p.ValorTotal,
		ValorFrete:   p.ValorFrete,
		Status:       p.Status,
		DataPedido:   p.DataPedido,
		Itens:        itens,
	}
}
