package postgres

import (
	"laundry/internal/adapters/out/postgres/actorrepo"
	"laundry/internal/adapters/out/postgres/auditrepo"
	"laundry/internal/adapters/out/postgres/deliveryrepo"
	"laundry/internal/adapters/out/postgres/invoicerepo"
	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/adapters/out/postgres/paymentrepo"
	"laundry/internal/adapters/out/postgres/pricelistrepo"

	"gorm.io/gorm"
)

// MigrateSchema creates or updates the tables behind every repository.
func MigrateSchema(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&paymentrepo.PaymentDTO{},
		&deliveryrepo.JobDTO{},
		&invoicerepo.InvoiceDTO{},
		&pricelistrepo.CategoryPriceDTO{},
		&actorrepo.ActorDTO{},
		&auditrepo.EntryDTO{},
	)
}
