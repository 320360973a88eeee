// Package http provides the inbound HTTP adapter: an echo server exposing the
// order lifecycle and the order views as a JSON API. Authentication happens
// upstream at the platform gateway, which forwards the authenticated user in
// the X-User-Id header.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"deliverus/internal/core/application/usecases/commands"
	"deliverus/internal/core/application/usecases/queries"
	"deliverus/internal/core/application/validation"
	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/core/domain/model/order"
	"deliverus/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler  commands.CreateOrderCommandHandler
	updateOrderHandler  commands.UpdateOrderCommandHandler
	deleteOrderHandler  commands.DeleteOrderCommandHandler
	confirmOrderHandler commands.ConfirmOrderCommandHandler
	sendOrderHandler    commands.SendOrderCommandHandler
	deliverOrderHandler commands.DeliverOrderCommandHandler

	// Query handlers
	getRestaurantOrdersHandler    queries.GetRestaurantOrdersQueryHandler
	getCustomerOrdersHandler      queries.GetCustomerOrdersQueryHandler
	getOrderHandler               queries.GetOrderQueryHandler
	getRestaurantAnalyticsHandler queries.GetRestaurantAnalyticsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	sendOrderHandler commands.SendOrderCommandHandler,
	deliverOrderHandler commands.DeliverOrderCommandHandler,
	getRestaurantOrdersHandler queries.GetRestaurantOrdersQueryHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getRestaurantAnalyticsHandler queries.GetRestaurantAnalyticsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:            createOrderHandler,
		updateOrderHandler:            updateOrderHandler,
		deleteOrderHandler:            deleteOrderHandler,
		confirmOrderHandler:           confirmOrderHandler,
		sendOrderHandler:              sendOrderHandler,
		deliverOrderHandler:           deliverOrderHandler,
		getRestaurantOrdersHandler:    getRestaurantOrdersHandler,
		getCustomerOrdersHandler:      getCustomerOrdersHandler,
		getOrderHandler:               getOrderHandler,
		getRestaurantAnalyticsHandler: getRestaurantAnalyticsHandler,
	}
}

// RegisterRoutes mounts the API on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetMyOrders)
	api.GET("/orders/:orderId", s.GetOrder)
	api.PUT("/orders/:orderId", s.UpdateOrder)
	api.DELETE("/orders/:orderId", s.DeleteOrder)
	api.PATCH("/orders/:orderId/confirm", s.ConfirmOrder)
	api.PATCH("/orders/:orderId/send", s.SendOrder)
	api.PATCH("/orders/:orderId/deliver", s.DeliverOrder)

	api.GET("/restaurants/:restaurantId/orders", s.GetRestaurantOrders)
	api.GET("/restaurants/:restaurantId/analytics", s.GetRestaurantAnalytics)
}

// CreateOrder handles POST /api/v1/orders - places a new order for the
// authenticated customer.
func (s *Server) CreateOrder(ctx echo.Context) error {
	customerID, err := actorID(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	var request createOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateOrderCommand(
		customerID,
		request.RestaurantID,
		toLineInputs(request.Products),
		request.Address,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	placedOrder, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(placedOrder))
}

// GetMyOrders handles GET /api/v1/orders - the authenticated customer's order
// history, newest first.
func (s *Server) GetMyOrders(ctx echo.Context) error {
	customerID, err := actorID(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orders, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]customerOrderResponse, len(orders))
	for i, entry := range orders {
		response[i] = toCustomerOrderResponse(entry)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:orderId - the full detail view of one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "orderId must be a positive integer")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderDetailResponse(detail))
}

// UpdateOrder handles PUT /api/v1/orders/:orderId - replaces the lines and
// address of a pending order.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "orderId must be a positive integer")
	}

	var request updateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateOrderCommand(
		orderID,
		toLineInputs(request.Products),
		request.Address,
		request.RestaurantID != nil,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	editedOrder, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(editedOrder))
}

// DeleteOrder handles DELETE /api/v1/orders/:orderId - removes a pending order.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "orderId must be a positive integer")
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmOrder handles PATCH /api/v1/orders/:orderId/confirm - the restaurant
// owner confirms a pending order.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "orderId must be a positive integer")
	}

	cmd, err := commands.NewConfirmOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	confirmedOrder, err := s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(confirmedOrder))
}

// SendOrder handles PATCH /api/v1/orders/:orderId/send - dispatches a
// confirmed order for delivery.
func (s *Server) SendOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "orderId must be a positive integer")
	}

	cmd, err := commands.NewSendOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	sentOrder, err := s.sendOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(sentOrder))
}

// DeliverOrder handles PATCH /api/v1/orders/:orderId/deliver - marks a sent
// order as delivered and refreshes the restaurant's service-time metric.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "orderId must be a positive integer")
	}

	cmd, err := commands.NewDeliverOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	deliveredOrder, err := s.deliverOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(deliveredOrder))
}

// GetRestaurantOrders handles GET /api/v1/restaurants/:restaurantId/orders -
// the restaurant owner's order board, with optional status and date filters.
func (s *Server) GetRestaurantOrders(ctx echo.Context) error {
	restaurantID, err := pathID(ctx, "restaurantId")
	if err != nil {
		return badRequest(ctx, "restaurantId must be a positive integer")
	}

	from, err := queryDate(ctx, "from")
	if err != nil {
		return badRequest(ctx, "from must be a date in YYYY-MM-DD format")
	}
	to, err := queryDate(ctx, "to")
	if err != nil {
		return badRequest(ctx, "to must be a date in YYYY-MM-DD format")
	}

	query, err := queries.NewGetRestaurantOrdersQuery(
		restaurantID,
		ctx.QueryParam("status"),
		from,
		to,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orders, err := s.getRestaurantOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]restaurantOrderResponse, len(orders))
	for i, entry := range orders {
		response[i] = toRestaurantOrderResponse(entry)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetRestaurantAnalytics handles GET /api/v1/restaurants/:restaurantId/analytics -
// the owner dashboard metrics.
func (s *Server) GetRestaurantAnalytics(ctx echo.Context) error {
	restaurantID, err := pathID(ctx, "restaurantId")
	if err != nil {
		return badRequest(ctx, "restaurantId must be a positive integer")
	}

	query, err := queries.NewGetRestaurantAnalyticsQuery(restaurantID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	analytics, err := s.getRestaurantAnalyticsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, analyticsResponse{
		RestaurantID:            analytics.RestaurantID,
		NumYesterdayOrders:      analytics.NumYesterdayOrders,
		NumPendingOrders:        analytics.NumPendingOrders,
		NumDeliveredTodayOrders: analytics.NumDeliveredTodayOrders,
		InvoicedToday:           analytics.InvoicedToday,
	})
}

// actorID extracts the authenticated user forwarded by the gateway.
func actorID(ctx echo.Context) (kernel.ID, error) {
	header := ctx.Request().Header.Get("X-User-Id")
	if header == "" {
		return 0, errors.New("missing X-User-Id header")
	}

	value, err := strconv.ParseInt(header, 10, 64)
	if err != nil {
		return 0, errors.New("invalid X-User-Id header")
	}

	id, err := kernel.NewID(value)
	if err != nil {
		return 0, errors.New("invalid X-User-Id header")
	}

	return id, nil
}

func unauthorized(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusUnauthorized, errorResponse{
		Code:    http.StatusUnauthorized,
		Message: err.Error(),
	})
}

func pathID(ctx echo.Context, name string) (kernel.ID, error) {
	value, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, err
	}
	return kernel.NewID(value)
}

// queryDate parses an optional YYYY-MM-DD query parameter in the server's
// local time zone.
func queryDate(ctx echo.Context, name string) (*time.Time, error) {
	value := ctx.QueryParam(name)
	if value == "" {
		return nil, nil
	}

	parsed, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func toLineInputs(products []orderLineRequest) []validation.LineInput {
	lines := make([]validation.LineInput, len(products))
	for i, product := range products {
		lines[i] = validation.LineInput{
			ProductID: product.ProductID,
			Quantity:  product.Quantity,
		}
	}
	return lines
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps application errors to HTTP responses: collected validation
// failures become 422 with one message per failing rule, missing objects 404.
func writeError(ctx echo.Context, err error) error {
	var validationErr *errs.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return ctx.JSON(http.StatusUnprocessableEntity, errorResponse{
			Code:    http.StatusUnprocessableEntity,
			Message: "validation failed",
			Errors:  validationErr.Messages(),
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, errorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, errorResponse{
			Code:    http.StatusInternalServerError,
			Message: "internal server error",
		})
	}
}

func toOrderResponse(o *order.Order) orderResponse {
	lines := make([]orderLineResponse, len(o.Lines()))
	for i, line := range o.Lines() {
		lines[i] = orderLineResponse{
			ProductID: line.ProductID().Int64(),
			Quantity:  line.Quantity(),
			UnitPrice: line.UnitPrice(),
		}
	}

	return orderResponse{
		ID:           o.ID().Int64(),
		CustomerID:   o.CustomerID().Int64(),
		RestaurantID: o.RestaurantID().Int64(),
		Address:      o.Address(),
		Price:        o.Price(),
		ShippingCost: o.ShippingCost(),
		Status:       o.Status().String(),
		CreatedAt:    o.CreatedAt(),
		StartedAt:    o.StartedAt(),
		SentAt:       o.SentAt(),
		DeliveredAt:  o.DeliveredAt(),
		Products:     lines,
	}
}

func toQueryLines(lines []queries.OrderLineResponse) []queryLineResponse {
	response := make([]queryLineResponse, len(lines))
	for i, line := range lines {
		response[i] = queryLineResponse{
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
		}
	}
	return response
}

func toRestaurantResponse(r queries.RestaurantResponse) restaurantResponse {
	return restaurantResponse{
		ID:                    r.ID,
		Name:                  r.Name,
		ShippingCost:          r.ShippingCost,
		AverageServiceMinutes: r.AverageServiceMinutes,
		CategoryName:          r.CategoryName,
	}
}

func toCustomerOrderResponse(entry queries.GetCustomerOrdersQueryResponse) customerOrderResponse {
	return customerOrderResponse{
		ID:           entry.ID,
		Address:      entry.Address,
		Price:        entry.Price,
		ShippingCost: entry.ShippingCost,
		Status:       entry.Status,
		CreatedAt:    entry.CreatedAt,
		StartedAt:    entry.StartedAt,
		SentAt:       entry.SentAt,
		DeliveredAt:  entry.DeliveredAt,
		Restaurant:   toRestaurantResponse(entry.Restaurant),
		Products:     toQueryLines(entry.Lines),
	}
}

func toRestaurantOrderResponse(entry queries.GetRestaurantOrdersQueryResponse) restaurantOrderResponse {
	return restaurantOrderResponse{
		ID:           entry.ID,
		CustomerID:   entry.CustomerID,
		Address:      entry.Address,
		Price:        entry.Price,
		ShippingCost: entry.ShippingCost,
		Status:       entry.Status,
		CreatedAt:    entry.CreatedAt,
		StartedAt:    entry.StartedAt,
		SentAt:       entry.SentAt,
		DeliveredAt:  entry.DeliveredAt,
		Products:     toQueryLines(entry.Lines),
	}
}

func toOrderDetailResponse(detail *queries.GetOrderQueryResponse) orderDetailResponse {
	return orderDetailResponse{
		ID:           detail.ID,
		Address:      detail.Address,
		Price:        detail.Price,
		ShippingCost: detail.ShippingCost,
		Status:       detail.Status,
		CreatedAt:    detail.CreatedAt,
		StartedAt:    detail.StartedAt,
		SentAt:       detail.SentAt,
		DeliveredAt:  detail.DeliveredAt,
		Restaurant:   toRestaurantResponse(detail.Restaurant),
		Customer: customerResponse{
			ID:    detail.Customer.ID,
			Name:  detail.Customer.Name,
			Email: detail.Customer.Email,
		},
		Products: toQueryLines(detail.Lines),
	}
}
