package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jhoicas/Stand-api/internal/application/dto"
	"github.com/jhoicas/Stand-api/internal/domain"
	"github.com/jhoicas/Stand-api/internal/domain/entity"
	"github.com/jhoicas/Stand-api/internal/domain/repository"
	"github.com/jhoicas/Stand-api/internal/domain/stand"
	"github.com/jhoicas/Stand-api/pkg/money"
	"github.com/rs/zerolog"
)

// StandUseCase casos de uso del puesto: menú, registro de ventas diarias y consultas de
// ventas y ganancia. Las reglas viven en el agregado stand.Stand; aquí solo se valida la
// entrada, se carga/persiste vía repositorio y se arma la respuesta.
type StandUseCase struct {
	repo   repository.StandRepository
	format *money.Formatter
	log    zerolog.Logger
}

// NewStandUseCase construye el caso de uso.
func NewStandUseCase(repo repository.StandRepository, format *money.Formatter, log zerolog.Logger) *StandUseCase {
	return &StandUseCase{repo: repo, format: format, log: log}
}

// CreateStand crea un puesto vacío. ErrDuplicate si el nombre ya existe.
func (uc *StandUseCase) CreateStand(ctx context.Context, in dto.CreateStandRequest) (*dto.StandResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	st := stand.New(name)
	if err := uc.repo.Create(ctx, st); err != nil {
		return nil, err
	}
	uc.log.Info().Str("stand", name).Msg("puesto creado")
	return toStandResponse(st), nil
}

// GetStand devuelve el detalle del puesto. ErrNotFound si no existe.
func (uc *StandUseCase) GetStand(ctx context.Context, name string) (*dto.StandResponse, error) {
	st, err := uc.load(ctx, name)
	if err != nil {
		return nil, err
	}
	return toStandResponse(st), nil
}

// ListStands lista todos los puestos.
func (uc *StandUseCase) ListStands(ctx context.Context) (*dto.StandListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StandResponse, 0, len(list))
	for _, st := range list {
		items = append(items, *toStandResponse(st))
	}
	return &dto.StandListResponse{Items: items, ListResponse: dto.ListResponse{Total: len(items)}}, nil
}

// AddMenuItem agrega o reemplaza un artículo del menú.
func (uc *StandUseCase) AddMenuItem(ctx context.Context, standName string, in dto.AddMenuItemRequest) (*dto.MenuItemResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	item := entity.NewMenuItem(name, in.Cost, in.Price)
	err := uc.repo.Update(ctx, standName, func(st *stand.Stand) error {
		st.AddMenuItem(item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("stand", standName).
		Str("item", name).
		Str("cost", in.Cost.String()).
		Str("price", in.Price.String()).
		Msg("artículo agregado al menú")
	return toMenuItemResponse(item), nil
}

// EnterSalesForToday registra la planilla del día actual. Si algún artículo no está en el menú
// devuelve *domain.InvalidSalesItemError y el puesto no cambia.
func (uc *StandUseCase) EnterSalesForToday(ctx context.Context, standName string, in dto.EnterSalesRequest) (*dto.DailySalesResponse, error) {
	sheet := make(entity.SalesSheet, 0, len(in.Sales))
	for _, l := range in.Sales {
		sheet = append(sheet, entity.SaleLine{Item: l.Item, Quantity: l.Quantity})
	}

	var rec entity.DailySalesRecord
	err := uc.repo.Update(ctx, standName, func(st *stand.Stand) error {
		var err error
		rec, err = st.EnterSalesForToday(sheet)
		return err
	})
	if err != nil {
		var invalid *domain.InvalidSalesItemError
		if errors.As(err, &invalid) {
			uc.log.Warn().Str("stand", standName).Str("item", invalid.Item).Msg("planilla rechazada: artículo fuera del menú")
		}
		return nil, err
	}

	uc.log.Info().
		Str("stand", standName).
		Int("day", rec.DayIndex()).
		Int("units", rec.TotalUnits()).
		Msg("ventas del día registradas")
	return toDailySalesResponse(standName, rec), nil
}

// SalesOfMenuItemForDay unidades del artículo en el día indicado.
func (uc *StandUseCase) SalesOfMenuItemForDay(ctx context.Context, standName string, day int, item string) (*dto.ItemDaySalesResponse, error) {
	st, err := uc.load(ctx, standName)
	if err != nil {
		return nil, err
	}
	q, err := st.SalesOfMenuItemForDay(day, item)
	if err != nil {
		return nil, err
	}
	return &dto.ItemDaySalesResponse{Stand: st.Name(), Day: day, Item: item, Quantity: q}, nil
}

// TotalSalesForMenuItem unidades históricas del artículo (0 si nunca se vendió o no existe).
func (uc *StandUseCase) TotalSalesForMenuItem(ctx context.Context, standName, item string) (*dto.ItemSalesResponse, error) {
	st, err := uc.load(ctx, standName)
	if err != nil {
		return nil, err
	}
	return &dto.ItemSalesResponse{Stand: st.Name(), Item: item, TotalSales: st.TotalSalesForMenuItem(item)}, nil
}

// TotalProfitForMenuItem ganancia histórica del artículo. *domain.ItemNotFoundError si no está en el menú.
func (uc *StandUseCase) TotalProfitForMenuItem(ctx context.Context, standName, item string) (*dto.ProfitResponse, error) {
	st, err := uc.load(ctx, standName)
	if err != nil {
		return nil, err
	}
	p, err := st.TotalProfitForMenuItem(item)
	if err != nil {
		return nil, err
	}
	return &dto.ProfitResponse{Stand: st.Name(), Item: item, TotalProfit: p, Formatted: uc.format.Format(p)}, nil
}

// TotalProfitForStand ganancia histórica de todo el menú.
func (uc *StandUseCase) TotalProfitForStand(ctx context.Context, standName string) (*dto.ProfitResponse, error) {
	st, err := uc.load(ctx, standName)
	if err != nil {
		return nil, err
	}
	p := st.TotalProfitForStand()
	return &dto.ProfitResponse{Stand: st.Name(), TotalProfit: p, Formatted: uc.format.Format(p)}, nil
}

func (uc *StandUseCase) load(ctx context.Context, name string) (*stand.Stand, error) {
	st, err := uc.repo.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("cargar puesto %q: %w", name, err)
	}
	if st == nil {
		return nil, domain.ErrNotFound
	}
	return st, nil
}

func toStandResponse(st *stand.Stand) *dto.StandResponse {
	menu := st.Menu()
	items := make([]dto.MenuItemResponse, 0, len(menu))
	for _, item := range menu {
		items = append(items, *toMenuItemResponse(item))
	}
	return &dto.StandResponse{
		Name:        st.Name(),
		CurrentDay:  st.CurrentDay(),
		Menu:        items,
		TotalProfit: st.TotalProfitForStand(),
	}
}

func toMenuItemResponse(item entity.MenuItem) *dto.MenuItemResponse {
	return &dto.MenuItemResponse{
		Name:          item.Name(),
		Cost:          item.Cost(),
		Price:         item.Price(),
		ProfitPerUnit: item.ProfitPerUnit(),
	}
}

func toDailySalesResponse(standName string, rec entity.DailySalesRecord) *dto.DailySalesResponse {
	lines := rec.Lines()
	sales := make([]dto.SaleLineDTO, 0, len(lines))
	for _, l := range lines {
		sales = append(sales, dto.SaleLineDTO{Item: l.Item, Quantity: l.Quantity})
	}
	return &dto.DailySalesResponse{Stand: standName, DayIndex: rec.DayIndex(), Sales: sales}
}
