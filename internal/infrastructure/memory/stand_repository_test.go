package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Stand-api/internal/domain"
	"github.com/jhoicas/Stand-api/internal/domain/entity"
	"github.com/jhoicas/Stand-api/internal/domain/stand"
	"github.com/jhoicas/Stand-api/internal/infrastructure/memory"
)

func TestStandRepo_CreateYDuplicado(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStandRepository()

	require.NoError(t, repo.Create(ctx, stand.New("lemons")))
	err := repo.Create(ctx, stand.New("lemons"))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestStandRepo_GetByNameInexistente(t *testing.T) {
	st, err := memory.NewStandRepository().GetByName(context.Background(), "nada")
	require.NoError(t, err)
	assert.Nil(t, st)
}

func TestStandRepo_GetByNameDevuelveCopia(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStandRepository()
	require.NoError(t, repo.Create(ctx, stand.New("lemons")))

	st, err := repo.GetByName(ctx, "lemons")
	require.NoError(t, err)
	st.AddMenuItem(entity.NewMenuItem("lemonade", decimal.NewFromFloat(0.5), decimal.NewFromFloat(1.5)))

	again, err := repo.GetByName(ctx, "lemons")
	require.NoError(t, err)
	assert.Empty(t, again.Menu(), "modificar la copia no altera el repositorio")
}

func TestStandRepo_UpdateAtomico(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStandRepository()
	require.NoError(t, repo.Create(ctx, stand.New("lemons")))

	err := repo.Update(ctx, "lemons", func(st *stand.Stand) error {
		st.AddMenuItem(entity.NewMenuItem("lemonade", decimal.NewFromFloat(0.5), decimal.NewFromFloat(1.5)))
		return nil
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = repo.Update(ctx, "lemons", func(st *stand.Stand) error {
		st.AddMenuItem(entity.NewMenuItem("cookie", decimal.NewFromFloat(0.2), decimal.NewFromFloat(1)))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	st, err := repo.GetByName(ctx, "lemons")
	require.NoError(t, err)
	require.Len(t, st.Menu(), 1, "el cambio fallido no se persiste")
	assert.Equal(t, "lemonade", st.Menu()[0].Name())
}

func TestStandRepo_UpdateInexistente(t *testing.T) {
	err := memory.NewStandRepository().Update(context.Background(), "nada", func(*stand.Stand) error { return nil })
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStandRepo_ListOrdenado(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStandRepository()
	for _, name := range []string{"zeta", "alfa", "mango"} {
		require.NoError(t, repo.Create(ctx, stand.New(name)))
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	names := make([]string, 0, len(list))
	for _, st := range list {
		names = append(names, st.Name())
	}
	assert.Equal(t, []string{"alfa", "mango", "zeta"}, names)
}
