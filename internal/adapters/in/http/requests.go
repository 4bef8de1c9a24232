package http

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/pricing"
	"laundry/internal/pkg/errs"
)

// dateLayout is the wire format for pickup and delivery dates.
const dateLayout = "2006-01-02"

// SelectionRequest is one requested service in an order request. The fields
// used depend on the service: weight for the per-kilogram services, items for
// pressing, both weight and item_count for wash-and-iron.
type SelectionRequest struct {
	Service   string         `json:"service"`
	WeightKg  float64        `json:"weight_kg,omitempty"`
	ItemCount int            `json:"item_count,omitempty"`
	Items     map[string]int `json:"items,omitempty"`
}

// CreateOrderRequest is the body of POST /orders.
type CreateOrderRequest struct {
	CustomerID   string             `json:"customer_id"`
	Selections   []SelectionRequest `json:"selections"`
	Express      bool               `json:"express"`
	Premium      bool               `json:"premium"`
	PickupDate   string             `json:"pickup_date"`
	DeliveryDate string             `json:"delivery_date"`
	Notes        string             `json:"notes,omitempty"`
}

// EditOrderRequest is the body of PUT /orders/:orderID.
type EditOrderRequest struct {
	Selections   []SelectionRequest `json:"selections"`
	Express      bool               `json:"express"`
	Premium      bool               `json:"premium"`
	PickupDate   string             `json:"pickup_date"`
	DeliveryDate string             `json:"delivery_date"`
	Notes        string             `json:"notes,omitempty"`
}

// CancelOrderRequest is the body of POST /orders/:orderID/cancel.
type CancelOrderRequest struct {
	Reason string `json:"reason,omitempty"`
}

// UpdateStatusRequest carries a status name for the order, delivery, and
// payment status endpoints.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// GenerateDeliveryJobRequest is the body of POST /orders/:orderID/delivery-job.
type GenerateDeliveryJobRequest struct {
	AssigneeID string `json:"assignee_id,omitempty"`
}

// ReassignDeliveryRequest is the body of PUT /delivery-jobs/:jobID/assignee.
type ReassignDeliveryRequest struct {
	AssigneeID string `json:"assignee_id"`
}

// MarkCardPaidRequest is the body of POST /orders/:orderID/payments/card.
type MarkCardPaidRequest struct {
	ProviderRef string `json:"provider_ref,omitempty"`
}

// MarkPaymentFailedRequest is the body of POST /orders/:orderID/payments/failed.
type MarkPaymentFailedRequest struct {
	Reason string `json:"reason,omitempty"`
}

// SetPressingPriceRequest is the body of PUT /prices/:category.
type SetPressingPriceRequest struct {
	PricePerItem string `json:"price_per_item"`
	Active       bool   `json:"active"`
}

func parseDate(name, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errs.NewValueIsRequiredError(name)
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return t, nil
}

func parseUUID(name, value string) (kernel.UUID, error) {
	if value == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(name)
	}
	id, err := kernel.UUIDFromString(value)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

func toSelections(requests []SelectionRequest) ([]order.Selection, error) {
	if len(requests) == 0 {
		return nil, errs.NewValueIsRequiredError("selections")
	}

	selections := make([]order.Selection, 0, len(requests))
	for _, req := range requests {
		kind, err := order.ServiceKindFromString(req.Service)
		if err != nil {
			return nil, err
		}

		switch kind {
		case order.ServiceWashOnly:
			selections = append(selections, order.WashOnlySelection{WeightKg: req.WeightKg})
		case order.ServiceDryCleaning:
			selections = append(selections, order.DryCleaningSelection{WeightKg: req.WeightKg})
		case order.ServicePressing:
			items := make(map[pricing.PressingCategory]int, len(req.Items))
			for category, count := range req.Items {
				items[pricing.PressingCategory(category)] = count
			}
			selections = append(selections, order.PressingSelection{Items: items})
		case order.ServiceWashAndIron:
			selections = append(selections, order.WashAndIronSelection{
				WeightKg:  req.WeightKg,
				ItemCount: req.ItemCount,
			})
		default:
			return nil, errs.NewValueIsInvalidError("service " + req.Service)
		}
	}
	return selections, nil
}
