package domain

// OrderStatus represents the current state of an order.
type OrderStatus string

const (
	// OrderStatusProcessing indicates the order has been placed but not yet shipped.
	OrderStatusProcessing OrderStatus = "Processing"
	// OrderStatusShipped indicates the order has been handed to the carrier.
	OrderStatusShipped OrderStatus = "Shipped"
	// OrderStatusInTransit indicates the carrier is moving the parcel.
	OrderStatusInTransit OrderStatus = "In Transit"
	// OrderStatusDelivered indicates the order reached the customer.
	OrderStatusDelivered OrderStatus = "Delivered"
	// OrderStatusCancelled indicates the order was cancelled before fulfilment.
	OrderStatusCancelled OrderStatus = "Cancelled"
	// OrderStatusReturned indicates the customer sent the order back.
	OrderStatusReturned OrderStatus = "Returned"
)

// Statuses lists every status an order may carry.
var Statuses = []OrderStatus{
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusInTransit,
	OrderStatusDelivered,
	OrderStatusCancelled,
	OrderStatusReturned,
}

// IsValid reports whether s is one of the known statuses.
func (s OrderStatus) IsValid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// RealizesSale reports whether orders in this status count as demand.
// Only Delivered and Shipped orders have turned into a sale.
func (s OrderStatus) RealizesSale() bool {
	return s == OrderStatusDelivered || s == OrderStatusShipped
}

// Order represents a customer order from the feed.
type Order struct {
	// ID is the unique identifier for the order.
	ID string `json:"id" validate:"required"`
	// CustomerName is the name of the buyer.
	CustomerName string `json:"customerName" validate:"required"`
	// OrderDate is the day the order was placed (YYYY-MM-DD).
	OrderDate string `json:"orderDate" validate:"ymd"`
	// Status is the fulfilment state.
	Status OrderStatus `json:"status" validate:"orderstatus"`
	// Items contains the products included in the order.
	Items []OrderItem `json:"items" validate:"min=1,dive"`
	// EstimatedDelivery is the expected delivery day (YYYY-MM-DD).
	EstimatedDelivery string `json:"estimatedDelivery" validate:"ymd"`
	// TotalOrderValue is the order total as reported by the feed.
	TotalOrderValue float64 `json:"totalOrderValue"`
	// ReturnPolicy is the policy text shown to the customer.
	ReturnPolicy string `json:"returnPolicy" validate:"required"`
}

// Month returns the YYYY-MM part of the order date.
func (o Order) Month() string {
	if len(o.OrderDate) < 7 {
		return o.OrderDate
	}
	return o.OrderDate[:7]
}

// OrderItem represents an individual line within an order.
type OrderItem struct {
	// Name is the product name.
	Name string `json:"name" validate:"required"`
	// Category is the product category.
	Category string `json:"category" validate:"required"`
	// UnitPrice is the price of one unit.
	UnitPrice float64 `json:"unitPrice"`
	// Quantity is the number of units purchased.
	Quantity int `json:"quantity"`
	// Total is the line total as reported by the feed.
	Total float64 `json:"total"`
}
