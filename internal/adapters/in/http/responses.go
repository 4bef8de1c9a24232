package http

import (
	"time"

	"laundry/internal/core/application/usecases/queries"
)

// OrderView is the wire form of an order read model. Identifiers travel as
// canonical UUID strings and amounts as decimal strings.
type OrderView struct {
	ID            string    `json:"id"`
	CustomerID    string    `json:"customer_id"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	Total         string    `json:"total"`
	PickupDate    string    `json:"pickup_date"`
	DeliveryDate  string    `json:"delivery_date"`
	CreatedAt     time.Time `json:"created_at"`
}

func toOrderViews(orders []queries.OrderResponse) []OrderView {
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, OrderView{
			ID:            o.ID.String(),
			CustomerID:    o.CustomerID.String(),
			Status:        o.Status,
			PaymentStatus: o.PaymentStatus,
			Total:         o.Total.String(),
			PickupDate:    o.PickupDate.Format(dateLayout),
			DeliveryDate:  o.DeliveryDate.Format(dateLayout),
			CreatedAt:     o.CreatedAt,
		})
	}
	return views
}

// DeliveryJobView is the wire form of a delivery job read model.
type DeliveryJobView struct {
	ID         string    `json:"id"`
	OrderID    string    `json:"order_id"`
	Status     string    `json:"status"`
	PickupAt   time.Time `json:"pickup_at"`
	DeliveryAt time.Time `json:"delivery_at"`
	Late       bool      `json:"late"`
}

func toDeliveryJobViews(jobs []queries.DeliveryJobResponse) []DeliveryJobView {
	views := make([]DeliveryJobView, 0, len(jobs))
	for _, j := range jobs {
		views = append(views, DeliveryJobView{
			ID:         j.ID.String(),
			OrderID:    j.OrderID.String(),
			Status:     j.Status,
			PickupAt:   j.PickupAt,
			DeliveryAt: j.DeliveryAt,
			Late:       j.Late,
		})
	}
	return views
}

// FinanceStatsView is the wire form of the finance aggregates.
type FinanceStatsView struct {
	TotalRevenue    string `json:"total_revenue"`
	PendingAmount   string `json:"pending_amount"`
	PaidPayments    int    `json:"paid_payments"`
	PendingPayments int    `json:"pending_payments"`
	TotalOrders     int    `json:"total_orders"`
	CancelledOrders int    `json:"cancelled_orders"`
	InvoicesIssued  int    `json:"invoices_issued"`
}

// PressingPriceView is the wire form of one catalog entry.
type PressingPriceView struct {
	Category     string `json:"category"`
	PricePerItem string `json:"price_per_item"`
	Active       bool   `json:"active"`
}

func toPressingPriceViews(prices []queries.PressingPriceResponse) []PressingPriceView {
	views := make([]PressingPriceView, 0, len(prices))
	for _, p := range prices {
		views = append(views, PressingPriceView{
			Category:     p.Category,
			PricePerItem: p.PricePerItem.String(),
			Active:       p.Active,
		})
	}
	return views
}

// SweepResultView reports how many jobs one sweep pass flagged.
type SweepResultView struct {
	Flagged int `json:"flagged"`
}
