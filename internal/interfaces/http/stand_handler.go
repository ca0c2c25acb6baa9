package http

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Stand-api/internal/application/dto"
	"github.com/jhoicas/Stand-api/internal/application/usecase"
)

// StandHandler maneja puestos, menú, ventas del día y consultas de ventas/ganancia.
type StandHandler struct {
	uc *usecase.StandUseCase
}

// NewStandHandler construye el handler.
func NewStandHandler(uc *usecase.StandUseCase) *StandHandler {
	return &StandHandler{uc: uc}
}

// Create godoc
// @Summary      Crear puesto
// @Tags         stands
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStandRequest  true  "Nombre del puesto"
// @Success      201   {object}  dto.StandResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stands [post]
func (h *StandHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStandRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c, "cuerpo inválido")
	}
	if strings.TrimSpace(in.Name) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.CreateStand(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar puestos
// @Tags         stands
// @Produce      json
// @Success      200  {object}  dto.StandListResponse
// @Router       /api/stands [get]
func (h *StandHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListStands(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Detalle del puesto (menú, día actual, ganancia total)
// @Tags         stands
// @Produce      json
// @Param        name  path  string  true  "Nombre del puesto"
// @Success      200   {object}  dto.StandResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stands/{name} [get]
func (h *StandHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetStand(c.UserContext(), c.Params("name"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AddMenuItem godoc
// @Summary      Agregar o reemplazar un artículo del menú
// @Description  Si ya existe un artículo con ese nombre se reemplaza (costo y precio nuevos).
// @Tags         menu
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        name  path  string                  true  "Nombre del puesto"
// @Param        body  body  dto.AddMenuItemRequest  true  "name, cost, price"
// @Success      200   {object}  dto.MenuItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stands/{name}/menu [put]
func (h *StandHandler) AddMenuItem(c *fiber.Ctx) error {
	var in dto.AddMenuItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c, "cuerpo inválido: name, cost y price")
	}
	if strings.TrimSpace(in.Name) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.AddMenuItem(c.UserContext(), c.Params("name"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// EnterSales godoc
// @Summary      Registrar las ventas del día actual
// @Description  Cuerpo: objeto artículo → cantidad ({"lemonade": 5}) o {"sales": [{"item": "lemonade", "quantity": 5}]}.
// @Description  Si algún artículo no está en el menú responde 422 y no se registra nada.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        name  path  string  true  "Nombre del puesto"
// @Success      201   {object}  dto.DailySalesResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/stands/{name}/sales [post]
func (h *StandHandler) EnterSales(c *fiber.Ctx) error {
	var in dto.EnterSalesRequest
	// json.Unmarshal directo: el orden de las claves importa y no depende del Content-Type.
	if err := json.Unmarshal(c.Body(), &in); err != nil {
		return badBody(c, err.Error())
	}
	out, err := h.uc.EnterSalesForToday(c.UserContext(), c.Params("name"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// SalesForDay godoc
// @Summary      Unidades vendidas de un artículo en un día
// @Tags         sales
// @Produce      json
// @Param        name  path  string  true  "Nombre del puesto"
// @Param        day   path  int     true  "Índice del día (desde 0)"
// @Param        item  path  string  true  "Artículo"
// @Success      200   {object}  dto.ItemDaySalesResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stands/{name}/days/{day}/items/{item} [get]
func (h *StandHandler) SalesForDay(c *fiber.Ctx) error {
	day, err := c.ParamsInt("day")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "day debe ser un entero"})
	}
	out, err := h.uc.SalesOfMenuItemForDay(c.UserContext(), c.Params("name"), day, c.Params("item"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// TotalSales godoc
// @Summary      Unidades vendidas de un artículo en todo el historial
// @Tags         sales
// @Produce      json
// @Param        name  path  string  true  "Nombre del puesto"
// @Param        item  path  string  true  "Artículo"
// @Success      200   {object}  dto.ItemSalesResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stands/{name}/items/{item}/sales [get]
func (h *StandHandler) TotalSales(c *fiber.Ctx) error {
	out, err := h.uc.TotalSalesForMenuItem(c.UserContext(), c.Params("name"), c.Params("item"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ItemProfit godoc
// @Summary      Ganancia histórica de un artículo
// @Tags         profit
// @Produce      json
// @Param        name  path  string  true  "Nombre del puesto"
// @Param        item  path  string  true  "Artículo"
// @Success      200   {object}  dto.ProfitResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stands/{name}/items/{item}/profit [get]
func (h *StandHandler) ItemProfit(c *fiber.Ctx) error {
	out, err := h.uc.TotalProfitForMenuItem(c.UserContext(), c.Params("name"), c.Params("item"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// StandProfit godoc
// @Summary      Ganancia histórica del puesto
// @Tags         profit
// @Produce      json
// @Param        name  path  string  true  "Nombre del puesto"
// @Success      200   {object}  dto.ProfitResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stands/{name}/profit [get]
func (h *StandHandler) StandProfit(c *fiber.Ctx) error {
	out, err := h.uc.TotalProfitForStand(c.UserContext(), c.Params("name"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
