package http

import "time"

// Request bodies.

type orderLineRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

type createOrderRequest struct {
	RestaurantID int64              `json:"restaurantId"`
	Address      string             `json:"address"`
	Products     []orderLineRequest `json:"products"`
}

// updateOrderRequest carries a pointer restaurantId so the handler can tell
// "field absent" from "field present": the restaurant of an order is
// immutable and supplying one is rejected.
type updateOrderRequest struct {
	RestaurantID *int64             `json:"restaurantId"`
	Address      string             `json:"address"`
	Products     []orderLineRequest `json:"products"`
}

// Response bodies.

type errorResponse struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

type orderLineResponse struct {
	ProductID int64   `json:"productId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// orderResponse is the representation of an order returned by the lifecycle
// endpoints, built from the aggregate the command handler returns.
type orderResponse struct {
	ID           int64               `json:"id"`
	CustomerID   int64               `json:"customerId"`
	RestaurantID int64               `json:"restaurantId"`
	Address      string              `json:"address"`
	Price        float64             `json:"price"`
	ShippingCost float64             `json:"shippingCost"`
	Status       string              `json:"status"`
	CreatedAt    time.Time           `json:"createdAt"`
	StartedAt    *time.Time          `json:"startedAt,omitempty"`
	SentAt       *time.Time          `json:"sentAt,omitempty"`
	DeliveredAt  *time.Time          `json:"deliveredAt,omitempty"`
	Products     []orderLineResponse `json:"products"`
}

type queryLineResponse struct {
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

type restaurantResponse struct {
	ID                    int64    `json:"id"`
	Name                  string   `json:"name"`
	ShippingCost          float64  `json:"shippingCost"`
	AverageServiceMinutes *float64 `json:"averageServiceMinutes,omitempty"`
	CategoryName          string   `json:"categoryName,omitempty"`
}

type customerResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type restaurantOrderResponse struct {
	ID           int64               `json:"id"`
	CustomerID   int64               `json:"customerId"`
	Address      string              `json:"address"`
	Price        float64             `json:"price"`
	ShippingCost float64             `json:"shippingCost"`
	Status       string              `json:"status"`
	CreatedAt    time.Time           `json:"createdAt"`
	StartedAt    *time.Time          `json:"startedAt,omitempty"`
	SentAt       *time.Time          `json:"sentAt,omitempty"`
	DeliveredAt  *time.Time          `json:"deliveredAt,omitempty"`
	Products     []queryLineResponse `json:"products"`
}

type customerOrderResponse struct {
	ID           int64               `json:"id"`
	Address      string              `json:"address"`
	Price        float64             `json:"price"`
	ShippingCost float64             `json:"shippingCost"`
	Status       string              `json:"status"`
	CreatedAt    time.Time           `json:"createdAt"`
	StartedAt    *time.Time          `json:"startedAt,omitempty"`
	SentAt       *time.Time          `json:"sentAt,omitempty"`
	DeliveredAt  *time.Time          `json:"deliveredAt,omitempty"`
	Restaurant   restaurantResponse  `json:"restaurant"`
	Products     []queryLineResponse `json:"products"`
}

type orderDetailResponse struct {
	ID           int64               `json:"id"`
	Address      string              `json:"address"`
	Price        float64             `json:"price"`
	ShippingCost float64             `json:"shippingCost"`
	Status       string              `json:"status"`
	CreatedAt    time.Time           `json:"createdAt"`
	StartedAt    *time.Time          `json:"startedAt,omitempty"`
	SentAt       *time.Time          `json:"sentAt,omitempty"`
	DeliveredAt  *time.Time          `json:"deliveredAt,omitempty"`
	Restaurant   restaurantResponse  `json:"restaurant"`
	Customer     customerResponse    `json:"customer"`
	Products     []queryLineResponse `json:"products"`
}

type analyticsResponse struct {
	RestaurantID            int64   `json:"restaurantId"`
	NumYesterdayOrders      int64   `json:"numYesterdayOrders"`
	NumPendingOrders        int64   `json:"numPendingOrders"`
	NumDeliveredTodayOrders int64   `json:"numDeliveredTodayOrders"`
	InvoicedToday           float64 `json:"invoicedToday"`
}
