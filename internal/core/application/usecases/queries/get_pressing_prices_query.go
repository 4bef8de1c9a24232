package queries

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrGetPressingPricesQueryIsNotConstructed = errors.New(
	"GetPressingPricesQuery must be created via NewGetPressingPricesQuery constructor",
)

// GetPressingPricesQuery retrieves the pressing price catalog.
type GetPressingPricesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPressingPricesQuery creates a parameterless catalog query.
func NewGetPressingPricesQuery() GetPressingPricesQuery {
	return GetPressingPricesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPressingPricesQuery) Validate() error {
	return q.guard.Validate(ErrGetPressingPricesQueryIsNotConstructed)
}

// PressingPriceResponse is the catalog entry read model.
type PressingPriceResponse struct {
	Category     string
	PricePerItem kernel.Money
	Active       bool
}
