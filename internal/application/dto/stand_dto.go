package dto

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// CreateStandRequest entrada para crear un puesto.
type CreateStandRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// AddMenuItemRequest entrada para agregar (o reemplazar) un artículo del menú.
// Cost y Price aceptan número o string decimal.
type AddMenuItemRequest struct {
	Name  string          `json:"name" validate:"required,min=1,max=200"`
	Cost  decimal.Decimal `json:"cost"`  // costo mayorista
	Price decimal.Decimal `json:"price"` // precio de venta
}

// MenuItemResponse salida de un artículo del menú.
type MenuItemResponse struct {
	Name          string          `json:"name"`
	Cost          decimal.Decimal `json:"cost"`
	Price         decimal.Decimal `json:"price"`
	ProfitPerUnit decimal.Decimal `json:"profit_per_unit"`
}

// StandResponse detalle de un puesto.
type StandResponse struct {
	Name        string             `json:"name"`
	CurrentDay  int                `json:"current_day"` // próximo día a registrar
	Menu        []MenuItemResponse `json:"menu"`
	TotalProfit decimal.Decimal    `json:"total_profit"`
}

// StandListResponse lista de puestos.
type StandListResponse struct {
	Items []StandResponse `json:"items"`
	ListResponse
}

// SaleLineDTO cantidad vendida de un artículo.
type SaleLineDTO struct {
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
}

// EnterSalesRequest cuerpo de POST /api/stands/:name/sales.
//
// Acepta un objeto artículo → cantidad ({"lemonade": 5, "cookie": 2}) respetando el orden
// de las claves, o la forma explícita {"sales": [{"item": "lemonade", "quantity": 5}]}.
type EnterSalesRequest struct {
	Sales []SaleLineDTO `json:"sales"`
}

// UnmarshalJSON decodifica el objeto token a token para conservar el orden de las claves.
func (r *EnterSalesRequest) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("ventas: se esperaba un objeto JSON")
	}
	r.Sales = r.Sales[:0]
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		raw = bytes.TrimSpace(raw)
		if key == "sales" && len(raw) > 0 && raw[0] == '[' {
			var lines []SaleLineDTO
			if err := json.Unmarshal(raw, &lines); err != nil {
				return fmt.Errorf("ventas: lista inválida: %w", err)
			}
			r.Sales = append(r.Sales, lines...)
			continue
		}
		var qty int
		if err := json.Unmarshal(raw, &qty); err != nil {
			return fmt.Errorf("ventas: cantidad inválida para %q: %w", key, err)
		}
		r.Sales = append(r.Sales, SaleLineDTO{Item: key, Quantity: qty})
	}
	_, err = dec.Token()
	return err
}

// DailySalesResponse salida de un día registrado.
type DailySalesResponse struct {
	Stand    string        `json:"stand"`
	DayIndex int           `json:"day_index"`
	Sales    []SaleLineDTO `json:"sales"`
}

// ItemDaySalesResponse unidades de un artículo en un día.
type ItemDaySalesResponse struct {
	Stand    string `json:"stand"`
	Day      int    `json:"day"`
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
}

// ItemSalesResponse unidades históricas de un artículo.
type ItemSalesResponse struct {
	Stand      string `json:"stand"`
	Item       string `json:"item"`
	TotalSales int    `json:"total_sales"`
}

// ProfitResponse ganancia de un artículo (Item != "") o del puesto completo.
type ProfitResponse struct {
	Stand       string          `json:"stand"`
	Item        string          `json:"item,omitempty"`
	TotalProfit decimal.Decimal `json:"total_profit"`
	Formatted   string          `json:"formatted"` // ej: "$5.00"
}
