// Package orderrepo persists the order aggregate and its line items.
// Monetary columns are numeric(12,2) mapped through decimal strings, never
// floating point.
package orderrepo

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/payment"
	"laundry/internal/core/domain/model/pricing"

	"github.com/google/uuid"
)

// OrderDTO is the database row for an order aggregate. Line items live in
// their own table and are replaced wholesale on every update, matching the
// aggregate's replace-items edit semantics.
type OrderDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID    uuid.UUID  `gorm:"type:uuid;index"`
	Items         []ItemDTO  `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
	Total         string     `gorm:"type:numeric(12,2)"`
	Status        string     `gorm:"type:varchar(32);index"`
	PaymentStatus string     `gorm:"type:varchar(32);index"`
	PaymentMethod string     `gorm:"type:varchar(16)"`
	PaidAt        *time.Time `gorm:""`
	PickupDate    time.Time
	DeliveryDate  time.Time
	Notes         string `gorm:"type:text"`
	CreatedAt     time.Time
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is the database row for one priced order line. The row id is a
// storage artifact; the domain item carries no identity of its own.
type ItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	ServiceKind string    `gorm:"type:varchar(32)"`
	Unit        string    `gorm:"type:varchar(16)"`
	WeightKg    float64
	ItemCount   int
	Category    string `gorm:"type:varchar(32)"`
	UnitPrice   string `gorm:"type:numeric(12,2)"`
	LineTotal   string `gorm:"type:numeric(12,2)"`
}

// TableName overrides GORM's default naming to use "order_items".
func (ItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ID:          uuid.New(),
			OrderID:     aggregate.ID().Bytes(),
			ServiceKind: item.ServiceKind().String(),
			Unit:        item.Unit().String(),
			WeightKg:    item.WeightKg(),
			ItemCount:   item.ItemCount(),
			Category:    string(item.Category()),
			UnitPrice:   item.UnitPrice().String(),
			LineTotal:   item.LineTotal().String(),
		})
	}

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		CustomerID:    aggregate.CustomerID().Bytes(),
		Items:         items,
		Total:         aggregate.Total().String(),
		Status:        aggregate.Status().String(),
		PaymentStatus: aggregate.PaymentStatus().String(),
		PaymentMethod: aggregate.PaymentMethod(),
		PaidAt:        aggregate.PaidAt(),
		PickupDate:    aggregate.PickupDate(),
		DeliveryDate:  aggregate.DeliveryDate(),
		Notes:         aggregate.Notes(),
		CreatedAt:     aggregate.CreatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoneyFromString(dto.Total)
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	paymentStatus, err := payment.StatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id, customerID, items, total,
		status, paymentStatus, dto.PaymentMethod, dto.PaidAt,
		dto.PickupDate, dto.DeliveryDate, dto.Notes, dto.CreatedAt,
	)
}

func itemToDomain(dto ItemDTO) (order.Item, error) {
	kind, err := order.ServiceKindFromString(dto.ServiceKind)
	if err != nil {
		return order.Item{}, err
	}
	unit, err := order.UnitFromString(dto.Unit)
	if err != nil {
		return order.Item{}, err
	}
	unitPrice, err := kernel.NewMoneyFromString(dto.UnitPrice)
	if err != nil {
		return order.Item{}, err
	}
	lineTotal, err := kernel.NewMoneyFromString(dto.LineTotal)
	if err != nil {
		return order.Item{}, err
	}

	return order.NewItem(
		kind, unit, dto.WeightKg, dto.ItemCount,
		pricing.PressingCategory(dto.Category), unitPrice, lineTotal,
	)
}
