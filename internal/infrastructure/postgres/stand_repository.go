package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Stand-api/internal/domain"
	"github.com/jhoicas/Stand-api/internal/domain/entity"
	"github.com/jhoicas/Stand-api/internal/domain/repository"
	"github.com/jhoicas/Stand-api/internal/domain/stand"
)

var _ repository.StandRepository = (*StandRepo)(nil)

// StandRepo implementación del puerto StandRepository sobre PostgreSQL.
// Tablas: stands, menu_items (posición = orden de alta), daily_sales y daily_sales_lines
// (posición = orden de la planilla).
type StandRepo struct {
	pool *pgxpool.Pool
}

// NewStandRepository construye el adaptador de persistencia para puestos.
func NewStandRepository(pool *pgxpool.Pool) *StandRepo {
	return &StandRepo{pool: pool}
}

// Create persiste el puesto con su menú e historial.
func (r *StandRepo) Create(ctx context.Context, st *stand.Stand) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `INSERT INTO stands (name) VALUES ($1)`, st.Name()); err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insert stand: %w", err)
		}
		if err := saveMenu(ctx, tx, st); err != nil {
			return err
		}
		return saveDays(ctx, tx, st, 0)
	})
}

// GetByName reconstruye el puesto; nil, nil si no existe.
func (r *StandRepo) GetByName(ctx context.Context, name string) (*stand.Stand, error) {
	var found string
	err := r.pool.QueryRow(ctx, `SELECT name FROM stands WHERE name = $1`, name).Scan(&found)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stand: %w", err)
	}
	return loadStand(ctx, r.pool, found)
}

// List devuelve todos los puestos ordenados por nombre.
func (r *StandRepo) List(ctx context.Context) ([]*stand.Stand, error) {
	rows, err := r.pool.Query(ctx, `SELECT name FROM stands ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list stands: %w", err)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan stand: %w", err)
	}

	list := make([]*stand.Stand, 0, len(names))
	for _, name := range names {
		st, err := loadStand(ctx, r.pool, name)
		if err != nil {
			return nil, err
		}
		list = append(list, st)
	}
	return list, nil
}

// Update bloquea la fila del puesto (FOR UPDATE), reconstruye el agregado, ejecuta fn y
// persiste el menú y los días nuevos en la misma transacción. Si fn falla se hace rollback.
func (r *StandRepo) Update(ctx context.Context, name string, fn func(st *stand.Stand) error) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		var locked string
		err := tx.QueryRow(ctx, `SELECT name FROM stands WHERE name = $1 FOR UPDATE`, name).Scan(&locked)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("lock stand: %w", err)
		}

		st, err := loadStand(ctx, tx, locked)
		if err != nil {
			return err
		}
		storedDays := st.CurrentDay()

		if err := fn(st); err != nil {
			return err
		}

		if err := saveMenu(ctx, tx, st); err != nil {
			return err
		}
		return saveDays(ctx, tx, st, storedDays)
	})
}

func (r *StandRepo) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// saveMenu hace upsert de todo el menú. La posición solo se fija al insertar.
func saveMenu(ctx context.Context, tx pgx.Tx, st *stand.Stand) error {
	query := `
		INSERT INTO menu_items (stand_name, name, cost, price, position)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (stand_name, name) DO UPDATE SET cost = EXCLUDED.cost, price = EXCLUDED.price`
	batch := &pgx.Batch{}
	for i, item := range st.Menu() {
		batch.Queue(query, st.Name(), item.Name(), item.Cost(), item.Price(), i)
	}
	if batch.Len() == 0 {
		return nil
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("upsert menu items: %w", err)
	}
	return nil
}

// saveDays inserta los registros con índice >= from (el historial es append-only).
func saveDays(ctx context.Context, tx pgx.Tx, st *stand.Stand, from int) error {
	records := st.SalesRecords()
	if from >= len(records) {
		return nil
	}
	batch := &pgx.Batch{}
	for _, rec := range records[from:] {
		batch.Queue(`INSERT INTO daily_sales (stand_name, day_index) VALUES ($1, $2)`, st.Name(), rec.DayIndex())
		for pos, line := range rec.Lines() {
			batch.Queue(`
				INSERT INTO daily_sales_lines (stand_name, day_index, position, item_name, quantity)
				VALUES ($1, $2, $3, $4, $5)`,
				st.Name(), rec.DayIndex(), pos, line.Item, line.Quantity)
		}
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert daily sales: %w", err)
	}
	return nil
}

func loadStand(ctx context.Context, q Querier, name string) (*stand.Stand, error) {
	menu, err := loadMenu(ctx, q, name)
	if err != nil {
		return nil, err
	}
	records, err := loadDays(ctx, q, name)
	if err != nil {
		return nil, err
	}
	st, err := stand.Restore(name, menu, records)
	if err != nil {
		return nil, fmt.Errorf("restore stand: %w", err)
	}
	return st, nil
}

func loadMenu(ctx context.Context, q Querier, name string) ([]entity.MenuItem, error) {
	rows, err := q.Query(ctx, `
		SELECT name, cost, price FROM menu_items
		WHERE stand_name = $1 ORDER BY position`, name)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	defer rows.Close()
	var menu []entity.MenuItem
	for rows.Next() {
		var itemName string
		var cost, price decimal.Decimal
		if err := rows.Scan(&itemName, &cost, &price); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		menu = append(menu, entity.NewMenuItem(itemName, cost, price))
	}
	return menu, rows.Err()
}

func loadDays(ctx context.Context, q Querier, name string) ([]entity.DailySalesRecord, error) {
	rows, err := q.Query(ctx, `SELECT day_index FROM daily_sales WHERE stand_name = $1 ORDER BY day_index`, name)
	if err != nil {
		return nil, fmt.Errorf("list daily sales: %w", err)
	}
	days, err := pgx.CollectRows(rows, pgx.RowTo[int])
	if err != nil {
		return nil, fmt.Errorf("scan daily sales: %w", err)
	}
	if len(days) == 0 {
		return nil, nil
	}

	sheets := make(map[int]entity.SalesSheet, len(days))
	lines, err := q.Query(ctx, `
		SELECT day_index, item_name, quantity FROM daily_sales_lines
		WHERE stand_name = $1 ORDER BY day_index, position`, name)
	if err != nil {
		return nil, fmt.Errorf("list daily sales lines: %w", err)
	}
	defer lines.Close()
	for lines.Next() {
		var day, quantity int
		var item string
		if err := lines.Scan(&day, &item, &quantity); err != nil {
			return nil, fmt.Errorf("scan daily sales line: %w", err)
		}
		sheets[day] = append(sheets[day], entity.SaleLine{Item: item, Quantity: quantity})
	}
	if err := lines.Err(); err != nil {
		return nil, err
	}

	records := make([]entity.DailySalesRecord, 0, len(days))
	for _, day := range days {
		records = append(records, entity.NewDailySalesRecord(day, sheets[day]))
	}
	return records, nil
}
