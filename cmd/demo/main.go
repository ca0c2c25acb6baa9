// Demo de consola: arma "Lemons R Us", intenta registrar una planilla con un artículo
// fuera del menú y muestra la ganancia de la limonada.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Stand-api/internal/domain"
	"github.com/jhoicas/Stand-api/internal/domain/entity"
	"github.com/jhoicas/Stand-api/internal/domain/stand"
	"github.com/jhoicas/Stand-api/pkg/money"
)

func main() {
	if err := run(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(w io.Writer) error {
	st := stand.New("Lemons R Us")
	st.AddMenuItem(entity.NewMenuItem("lemonade", decimal.RequireFromString("0.5"), decimal.RequireFromString("1.5")))
	st.AddMenuItem(entity.NewMenuItem("nori", decimal.RequireFromString("0.6"), decimal.RequireFromString("0.8")))
	st.AddMenuItem(entity.NewMenuItem("cookie", decimal.RequireFromString("0.2"), decimal.RequireFromString("1.0")))

	_, err := st.EnterSalesForToday(entity.SalesSheet{
		{Item: "lemonade", Quantity: 5},
		{Item: "cookie", Quantity: 2},
		{Item: "corndog", Quantity: 1},
	})
	var invalid *domain.InvalidSalesItemError
	switch {
	case errors.As(err, &invalid):
		fmt.Fprintf(w, "Error:  This item is not on the menu: %s.\n", invalid.Item)
	case err != nil:
		return err
	}

	profit, err := st.TotalProfitForMenuItem("lemonade")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Total profit for lemonade: %s\n", money.NewFormatter("en", "$").Format(profit))
	return nil
}
