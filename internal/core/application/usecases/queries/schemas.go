// Package queries contains read operations that bypass the domain model.
// Implements the Query side of the CQRS architecture: handlers run raw SQL
// against the read database and return plain response structs.
//
// List queries accept the compact filter language (see internal/pkg/criteria);
// filter field names follow the external API vocabulary, which predates this
// service, and are mapped onto storage columns by the schemas below.
package queries

import "verduleria/internal/pkg/criteria"

func customerSchema() criteria.Schema {
	return criteria.Schema{
		"razonSocial": {Column: "business_name", Kind: criteria.Text},
		"telefono":    {Column: "phone", Kind: criteria.Text},
		"direccion":   {Column: "address", Kind: criteria.Text},
		"email":       {Column: "email", Kind: criteria.Text},
		"cuitDni":     {Column: "tax_id", Kind: criteria.Text},
	}
}

func productSchema() criteria.Schema {
	return criteria.Schema{
		"nombre":       {Column: "name", Kind: criteria.Text},
		"unidadMedida": {Column: "unit", Kind: criteria.Text},
		"precioVenta":  {Column: "sale_price", Kind: criteria.Numeric},
	}
}

func orderSchema() criteria.Schema {
	return criteria.Schema{
		"estado":         {Column: "status", Kind: criteria.Keyword},
		"montoTotal":     {Column: "total", Kind: criteria.Numeric},
		"remitoGenerado": {Column: "note_issued", Kind: criteria.Bool},
	}
}

func deliveryNoteSchema() criteria.Schema {
	return criteria.Schema{
		"numeroRemito": {Column: "number", Kind: criteria.Integer},
		"valorTotal":   {Column: "total", Kind: criteria.Numeric},
	}
}
