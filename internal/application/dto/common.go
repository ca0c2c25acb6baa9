package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Item    string `json:"item,omitempty"` // artículo involucrado (INVALID_SALES_ITEM, ITEM_NOT_FOUND)
}

// ListResponse metadatos de listados sin paginar.
type ListResponse struct {
	Total int `json:"total"`
}
