// Package http exposes the REST API. Route handlers translate requests into
// commands and queries; all business rules, including authorization, live in
// the application core. The acting principal arrives in the X-Actor-ID
// header, set by the authenticating proxy in front of this service.
package http

import (
	"net/http"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/delivery"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/payment"
	"laundry/internal/core/domain/model/pricing"

	"github.com/labstack/echo/v4"
)

// actorHeader carries the resolved acting principal's identifier.
const actorHeader = "X-Actor-ID"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler         commands.CreateOrderCommandHandler
	editOrderHandler           commands.EditOrderCommandHandler
	cancelOrderHandler         commands.CancelOrderCommandHandler
	updateOrderStatusHandler   commands.UpdateOrderStatusCommandHandler
	generateDeliveryJobHandler commands.GenerateDeliveryJobCommandHandler
	updateDeliveryHandler      commands.UpdateDeliveryStatusCommandHandler
	reassignDeliveryHandler    commands.ReassignDeliveryCommandHandler
	confirmCODHandler          commands.ConfirmCODPaymentCommandHandler
	markCardPaidHandler        commands.MarkCardPaidCommandHandler
	markPaymentFailedHandler   commands.MarkPaymentFailedCommandHandler
	updatePaymentHandler       commands.UpdatePaymentStatusCommandHandler
	generateInvoiceHandler     commands.GenerateInvoiceCommandHandler
	setPressingPriceHandler    commands.SetPressingPriceCommandHandler

	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler
	getDeliveriesHandler     queries.GetDeliveriesForAssigneeQueryHandler
	getFinanceStatsHandler   queries.GetFinanceStatsQueryHandler
	getPressingPricesHandler queries.GetPressingPricesQueryHandler
}

// ServerHandlers bundles the use case handlers the server dispatches to.
type ServerHandlers struct {
	CreateOrder         commands.CreateOrderCommandHandler
	EditOrder           commands.EditOrderCommandHandler
	CancelOrder         commands.CancelOrderCommandHandler
	UpdateOrderStatus   commands.UpdateOrderStatusCommandHandler
	GenerateDeliveryJob commands.GenerateDeliveryJobCommandHandler
	UpdateDelivery      commands.UpdateDeliveryStatusCommandHandler
	ReassignDelivery    commands.ReassignDeliveryCommandHandler
	ConfirmCOD          commands.ConfirmCODPaymentCommandHandler
	MarkCardPaid        commands.MarkCardPaidCommandHandler
	MarkPaymentFailed   commands.MarkPaymentFailedCommandHandler
	UpdatePayment       commands.UpdatePaymentStatusCommandHandler
	GenerateInvoice     commands.GenerateInvoiceCommandHandler
	SetPressingPrice    commands.SetPressingPriceCommandHandler

	GetCustomerOrders queries.GetCustomerOrdersQueryHandler
	GetOrdersByStatus queries.GetOrdersByStatusQueryHandler
	GetDeliveries     queries.GetDeliveriesForAssigneeQueryHandler
	GetFinanceStats   queries.GetFinanceStatsQueryHandler
	GetPressingPrices queries.GetPressingPricesQueryHandler
}

// NewServer creates the HTTP server over the given use case handlers.
func NewServer(handlers ServerHandlers) *Server {
	return &Server{
		createOrderHandler:         handlers.CreateOrder,
		editOrderHandler:           handlers.EditOrder,
		cancelOrderHandler:         handlers.CancelOrder,
		updateOrderStatusHandler:   handlers.UpdateOrderStatus,
		generateDeliveryJobHandler: handlers.GenerateDeliveryJob,
		updateDeliveryHandler:      handlers.UpdateDelivery,
		reassignDeliveryHandler:    handlers.ReassignDelivery,
		confirmCODHandler:          handlers.ConfirmCOD,
		markCardPaidHandler:        handlers.MarkCardPaid,
		markPaymentFailedHandler:   handlers.MarkPaymentFailed,
		updatePaymentHandler:       handlers.UpdatePayment,
		generateInvoiceHandler:     handlers.GenerateInvoice,
		setPressingPriceHandler:    handlers.SetPressingPrice,
		getCustomerOrdersHandler:   handlers.GetCustomerOrders,
		getOrdersByStatusHandler:   handlers.GetOrdersByStatus,
		getDeliveriesHandler:       handlers.GetDeliveries,
		getFinanceStatsHandler:     handlers.GetFinanceStats,
		getPressingPricesHandler:   handlers.GetPressingPrices,
	}
}

// RegisterRoutes wires the API routes onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrdersByStatus)
	api.PUT("/orders/:orderID", s.EditOrder)
	api.POST("/orders/:orderID/cancel", s.CancelOrder)
	api.PUT("/orders/:orderID/status", s.UpdateOrderStatus)
	api.GET("/customers/:customerID/orders", s.GetCustomerOrders)

	api.POST("/orders/:orderID/delivery-job", s.GenerateDeliveryJob)
	api.PUT("/delivery-jobs/:jobID/status", s.UpdateDeliveryStatus)
	api.PUT("/delivery-jobs/:jobID/assignee", s.ReassignDelivery)
	api.GET("/assignees/:assigneeID/delivery-jobs", s.GetDeliveriesForAssignee)

	api.POST("/orders/:orderID/payments/cod", s.ConfirmCODPayment)
	api.POST("/orders/:orderID/payments/card", s.MarkCardPaid)
	api.POST("/orders/:orderID/payments/failed", s.MarkPaymentFailed)
	api.PUT("/orders/:orderID/payments/status", s.UpdatePaymentStatus)

	api.POST("/orders/:orderID/invoice", s.GenerateInvoice)
	api.GET("/finance/stats", s.GetFinanceStats)

	api.GET("/prices", s.GetPressingPrices)
	api.PUT("/prices/:category", s.SetPressingPrice)
}

func actorID(ctx echo.Context) (kernel.UUID, error) {
	return parseUUID("actor id", ctx.Request().Header.Get(actorHeader))
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	act, err := actorID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	customerID, err := parseUUID("customer_id", req.CustomerID)
	if err != nil {
		return respondError(ctx, err)
	}
	selections, err := toSelections(req.Selections)
	if err != nil {
		return respondError(ctx, err)
	}
	pickupDate, err := parseDate("pickup_date", req.PickupDate)
	if err != nil {
		return respondError(ctx, err)
	}
	deliveryDate, err := parseDate("delivery_date", req.DeliveryDate)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, customerID, act,
		selections, req.Express, req.Premium,
		pickupDate, deliveryDate, req.Notes,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// EditOrder handles PUT /api/v1/orders/:orderID.
func (s *Server) EditOrder(ctx echo.Context) error {
	act, err := actorID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	orderID, err := parseUUID("orderID", ctx.Param("orderID"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req EditOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	selections, err := toSelections(req.Selections)
	if err != nil {
		return respondError(ctx, err)
	}
	pickupDate, err := parseDate("pickup_date", req.PickupDate)
	if err != nil {
		return respondError(ctx, err)
	}
	deliveryDate, err := parseDate("delivery_date", req.DeliveryDate)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewEditOrderCommand(
		orderID, act,
		selections, req.Express, req.Premium,
		pickupDate, deliveryDate, req.Notes,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.editOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:orderID/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	act, err := actorID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	orderID, err := parseUUID("orderID", ctx.Param("orderID"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req CancelOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, act, req.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderStatus handles PUT /api/v1/orders/:orderID/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	act, err := actorID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	orderID, err := parseUUID("orderID", ctx.Param("orderID"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdateStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	next, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, act, next)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetCustomerOrders handles GET /api/v1/customers/:customerID/orders.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	customerID, err := parseUUID("customerID", ctx.Param("customerID"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderViews(orders))
}

// GetOrdersByStatus handles GET /api/v1/orders?status=PENDING.
func (s *Server) GetOrdersByStatus(ctx echo.Context) error {
	status, err := order.StatusFromString(ctx.QueryParam("status"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrdersByStatusQuery(status)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getOrdersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderViews(orders))
}

// GenerateDeliveryJob handles POST /api/v1/orders/:orderID/delivery-job.
func (s *Server) GenerateDeliveryJob(ctx echo.Context) error {
	act, err := actorID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	orderID, err := parseUUID("orderID", ctx.Param("orderID"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req GenerateDeliveryJobRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	var assigneeID *kernel.UUID
	if req.AssigneeID != "" {
		id, idErr := parseUUID("assignee_id", req.AssigneeID)
		if idErr != nil {
			return respondError(ctx, idErr)
		}
		assigneeID = &id
	}

	jobID := kernel.NewUUID()
	cmd, err := commands.NewGenerateDeliveryJobCommand(jobID, orderID, act, assigneeID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.generateDeliveryJobHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, map[string]string{"id": jobID.String()})
}

// UpdateDeliveryStatus handles PUT /api/v1/delivery-jobs/:jobID/status.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context) error {
	act, err := actorID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	jobID, err := parseUUID("jobID", ctx.Param("jobID"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdateStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	next, err := delivery.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(jobID, act, next)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ReassignDelivery handles PUT /api/v1/delivery-jobs/:jobID/assignee.
func (s *Server) ReassignDelivery(ctx echo.Context) error {
	act, err := actorID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	jobID, err := parseUUID("jobID", ctx.Param("jobID"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req ReassignDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	assigneeID, err := parseUUID("assignee_id", req.AssigneeID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewReassignDeliveryCommand(jobID, act, assigneeID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.reassignDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetDeliveriesForAssignee handles GET /api/v1/assignees/:assigneeID/delivery-jobs.
func (s *Server) GetDeliveriesForAssignee(ctx echo.Context) error {
	assigneeID, err := parseUUID("assigneeID", ctx.Param("assigneeID"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetDeliveriesForAssigneeQuery(assigneeID)
	if err != nil {
		return respondError(ctx, err)
	}

	jobs, err := s.getDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toDeliveryJobViews(jobs))
}

// ConfirmCODPayment handles POST /api/v1/orders/:orderID/payments/cod.
func (s *Server) ConfirmCODPayment(ctx echo.Context) error {
	act, err := actorID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	orderID, err := parseUUID("orderID", ctx.Param("orderID"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewConfirmCODPaymentCommand(orderID, act)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.confirmCODHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// MarkCardPaid handles POST /api/v1/orders/:orderID/payments/card.
func (s *Server) MarkCardPaid(ctx echo.Context) error {
	act, err := actorID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	orderID, err := parseUUID("orderID", ctx.Param("orderID"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req MarkCardPaidRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewMarkCardPaidCommand(orderID, act, req.ProviderRef)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.markCardPaidHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// MarkPaymentFailed handles POST /api/v1/orders/:orderID/payments/failed.
func (s *Server) MarkPaymentFailed(ctx echo.Context) error {
	act, err := actorID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	orderID, err := parseUUID("orderID", ctx.Param("orderID"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req MarkPaymentFailedRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewMarkPaymentFailedCommand(orderID, act, req.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.markPaymentFailedHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// UpdatePaymentStatus handles PUT /api/v1/orders/:orderID/payments/status.
func (s *Server) UpdatePaymentStatus(ctx echo.Context) error {
	act, err := actorID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	orderID, err := parseUUID("orderID", ctx.Param("orderID"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdateStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	next, err := payment.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdatePaymentStatusCommand(orderID, act, next)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updatePaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GenerateInvoice handles POST /api/v1/orders/:orderID/invoice.
func (s *Server) GenerateInvoice(ctx echo.Context) error {
	act, err := actorID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	orderID, err := parseUUID("orderID", ctx.Param("orderID"))
	if err != nil {
		return respondError(ctx, err)
	}

	invoiceID := kernel.NewUUID()
	cmd, err := commands.NewGenerateInvoiceCommand(invoiceID, orderID, act)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.generateInvoiceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, map[string]string{"id": invoiceID.String()})
}

// GetFinanceStats handles GET /api/v1/finance/stats?from=2026-03-01&to=2026-04-01.
// The period is half-open: from inclusive, to exclusive.
func (s *Server) GetFinanceStats(ctx echo.Context) error {
	from, err := parseDate("from", ctx.QueryParam("from"))
	if err != nil {
		return respondError(ctx, err)
	}
	to, err := parseDate("to", ctx.QueryParam("to"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetFinanceStatsQuery(from, to)
	if err != nil {
		return respondError(ctx, err)
	}

	stats, err := s.getFinanceStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, FinanceStatsView{
		TotalRevenue:    stats.TotalRevenue.String(),
		PendingAmount:   stats.PendingAmount.String(),
		PaidPayments:    stats.PaidPayments,
		PendingPayments: stats.PendingPayments,
		TotalOrders:     stats.TotalOrders,
		CancelledOrders: stats.CancelledOrders,
		InvoicesIssued:  stats.InvoicesIssued,
	})
}

// GetPressingPrices handles GET /api/v1/prices.
func (s *Server) GetPressingPrices(ctx echo.Context) error {
	query := queries.NewGetPressingPricesQuery()

	prices, err := s.getPressingPricesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toPressingPriceViews(prices))
}

// SetPressingPrice handles PUT /api/v1/prices/:category.
func (s *Server) SetPressingPrice(ctx echo.Context) error {
	act, err := actorID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	category := pricing.PressingCategory(ctx.Param("category"))
	if err := category.Validate(); err != nil {
		return respondError(ctx, err)
	}

	var req SetPressingPriceRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	price, err := kernel.NewMoneyFromString(req.PricePerItem)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewSetPressingPriceCommand(act, category, price, req.Active)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.setPressingPriceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
