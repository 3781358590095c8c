package domain

// SalesKey identifies one product in one month.
type SalesKey struct {
	ProductName string
	Month       string
}

// SalesRecord is the demand observed for one product in one month.
type SalesRecord struct {
	// ProductName is the item name as it appears on orders.
	ProductName string `json:"productName"`
	// Month is the calendar month (YYYY-MM).
	Month string `json:"month"`
	// UnitsSold is the sum of quantities across matching order lines.
	UnitsSold int `json:"unitsSold"`
	// Price is the mean unit price of those lines, rounded to cents.
	Price float64 `json:"price"`
}
