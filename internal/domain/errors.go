package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")

	ErrInvalidSalesItem = errors.New("el artículo no está en el menú")
	ErrItemNotFound     = errors.New("artículo no encontrado en el menú")
	ErrIndexOutOfRange  = errors.New("día fuera de rango")
)

// InvalidSalesItemError lo devuelve el registro de ventas cuando la planilla trae un artículo
// que no existe en el menú. Item es el primer artículo inválido según el orden de la planilla.
type InvalidSalesItemError struct {
	Item string
}

func (e *InvalidSalesItemError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidSalesItem.Error(), e.Item)
}

func (e *InvalidSalesItemError) Unwrap() error { return ErrInvalidSalesItem }

// ItemNotFoundError se produce al pedir la ganancia de un artículo ausente del menú.
type ItemNotFoundError struct {
	Item string
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", ErrItemNotFound.Error(), e.Item)
}

func (e *ItemNotFoundError) Unwrap() error { return ErrItemNotFound }

// IndexOutOfRangeError se produce al consultar un día que no existe en el registro de ventas.
type IndexOutOfRangeError struct {
	Day  int
	Days int // cantidad de días registrados al momento de la consulta
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("%s: día %d (días registrados: %d)", ErrIndexOutOfRange.Error(), e.Day, e.Days)
}

func (e *IndexOutOfRangeError) Unwrap() error { return ErrIndexOutOfRange }
