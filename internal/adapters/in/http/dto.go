package http

import (
	"time"

	"github.com/shopspring/decimal"

	"verduleria/internal/core/application/usecases/queries"
	"verduleria/internal/core/domain/model/customer"
	"verduleria/internal/core/domain/model/note"
	"verduleria/internal/core/domain/model/order"
	"verduleria/internal/core/domain/model/product"
)

// Wire representations exposed by the REST API. Field names keep the
// Spanish vocabulary the API has always spoken so existing clients keep
// working unchanged.

// ClienteDTO is the wire representation of a customer.
type ClienteDTO struct {
	ID          string `json:"id,omitempty"`
	RazonSocial string `json:"razonSocial"`
	Telefono    string `json:"telefono,omitempty"`
	Direccion   string `json:"direccion"`
	Email       string `json:"email,omitempty"`
	CuitDni     string `json:"cuitDni"`
}

// ProductoDTO is the wire representation of a product.
type ProductoDTO struct {
	ID           string          `json:"id,omitempty"`
	Nombre       string          `json:"nombre"`
	UnidadMedida string          `json:"unidadMedida"`
	PrecioVenta  decimal.Decimal `json:"precioVenta"`
}

// DetallePedidoDTO is the wire representation of one order line. The unit
// price travels with the line as a snapshot taken at order time.
type DetallePedidoDTO struct {
	ProductoID  string          `json:"productoId"`
	Cantidad    decimal.Decimal `json:"cantidad"`
	PrecioVenta decimal.Decimal `json:"precioVenta"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// PedidoDTO is the wire representation of an order.
type PedidoDTO struct {
	ID             string             `json:"id,omitempty"`
	FechaCreacion  time.Time          `json:"fechaCreacion"`
	ClienteID      string             `json:"clienteId"`
	Estado         string             `json:"estado,omitempty"`
	RemitoGenerado bool               `json:"remitoGenerado"`
	Detalles       []DetallePedidoDTO `json:"detalles"`
	MontoTotal     decimal.Decimal    `json:"montoTotal"`
}

// RemitoDTO is the wire representation of a delivery note.
type RemitoDTO struct {
	ID                string          `json:"id,omitempty"`
	NumeroRemito      int64           `json:"numeroRemito"`
	PedidoID          string          `json:"pedidoId"`
	ValorTotal        decimal.Decimal `json:"valorTotal"`
	FechaEmision      time.Time       `json:"fechaEmision"`
	RecibidoPor       string          `json:"recibidoPor,omitempty"`
	DocumentoReceptor string          `json:"documentoReceptor,omitempty"`
	Observaciones     string          `json:"observaciones,omitempty"`
}

// GenerarRemitoDTO is the request body for issuing a delivery note.
type GenerarRemitoDTO struct {
	NumeroRemito int64 `json:"numeroRemito"`
}

// CambioEstadoDTO is the request body for an order status change.
type CambioEstadoDTO struct {
	Estado string `json:"estado"`
}

// ConfirmarEntregaDTO is the request body for confirming receipt of a
// delivery note at the customer's door.
type ConfirmarEntregaDTO struct {
	RecibidoPor       string `json:"recibidoPor"`
	DocumentoReceptor string `json:"documentoReceptor,omitempty"`
	Observaciones     string `json:"observaciones,omitempty"`
}

func clienteFromAggregate(c *customer.Customer) ClienteDTO {
	return ClienteDTO{
		ID:          c.ID().String(),
		RazonSocial: c.BusinessName(),
		Telefono:    c.Phone(),
		Direccion:   c.Address(),
		Email:       c.Email(),
		CuitDni:     c.TaxID(),
	}
}

func clienteFromResponse(r queries.CustomerResponse) ClienteDTO {
	return ClienteDTO{
		ID:          r.ID.String(),
		RazonSocial: r.BusinessName,
		Telefono:    r.Phone,
		Direccion:   r.Address,
		Email:       r.Email,
		CuitDni:     r.TaxID,
	}
}

func productoFromAggregate(p *product.Product) ProductoDTO {
	return ProductoDTO{
		ID:           p.ID().String(),
		Nombre:       p.Name(),
		UnidadMedida: p.Unit(),
		PrecioVenta:  p.SalePrice(),
	}
}

func productoFromResponse(r queries.ProductResponse) ProductoDTO {
	return ProductoDTO{
		ID:           r.ID.String(),
		Nombre:       r.Name,
		UnidadMedida: r.Unit,
		PrecioVenta:  r.SalePrice,
	}
}

func pedidoFromAggregate(o *order.Order) PedidoDTO {
	lines := o.Lines()
	detalles := make([]DetallePedidoDTO, len(lines))
	for i, line := range lines {
		detalles[i] = DetallePedidoDTO{
			ProductoID:  line.ProductID().String(),
			Cantidad:    line.Quantity(),
			PrecioVenta: line.UnitPrice(),
			Subtotal:    line.Subtotal(),
		}
	}

	return PedidoDTO{
		ID:             o.ID().String(),
		FechaCreacion:  o.CreatedAt(),
		ClienteID:      o.CustomerID().String(),
		Estado:         o.Status().String(),
		RemitoGenerado: o.NoteIssued(),
		Detalles:       detalles,
		MontoTotal:     o.Total(),
	}
}

func pedidoFromResponse(r queries.OrderResponse) PedidoDTO {
	detalles := make([]DetallePedidoDTO, len(r.Lines))
	for i, line := range r.Lines {
		detalles[i] = DetallePedidoDTO{
			ProductoID:  line.ProductID.String(),
			Cantidad:    line.Quantity,
			PrecioVenta: line.UnitPrice,
			Subtotal:    line.Subtotal,
		}
	}

	return PedidoDTO{
		ID:             r.ID.String(),
		FechaCreacion:  r.CreatedAt,
		ClienteID:      r.CustomerID.String(),
		Estado:         r.Status,
		RemitoGenerado: r.NoteIssued,
		Detalles:       detalles,
		MontoTotal:     r.Total,
	}
}

func remitoFromAggregate(n *note.DeliveryNote) RemitoDTO {
	return RemitoDTO{
		ID:                n.ID().String(),
		NumeroRemito:      n.Number(),
		PedidoID:          n.OrderID().String(),
		ValorTotal:        n.Total(),
		FechaEmision:      n.IssuedAt(),
		RecibidoPor:       n.ReceivedBy(),
		DocumentoReceptor: n.ReceivedDoc(),
		Observaciones:     n.Remarks(),
	}
}

func remitoFromResponse(r queries.DeliveryNoteResponse) RemitoDTO {
	return RemitoDTO{
		ID:                r.ID.String(),
		NumeroRemito:      r.Number,
		PedidoID:          r.OrderID.String(),
		ValorTotal:        r.Total,
		FechaEmision:      r.IssuedAt,
		RecibidoPor:       r.ReceivedBy,
		DocumentoReceptor: r.ReceivedDoc,
		Observaciones:     r.Remarks,
	}
}
