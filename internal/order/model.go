package order

import "time"

// Status is one of the five fulfillment lifecycle labels. The Japanese
// strings are persisted data shared with the storefront UI.
type Status string

const (
	StatusReceived    Status = "注文確認中"
	StatusProcessing  Status = "手配中"
	StatusBackordered Status = "欠品中"
	StatusShipped     Status = "出荷済"
	StatusDelivered   Status = "納品済"
)

var AllStatuses = []Status{
	StatusReceived,
	StatusProcessing,
	StatusBackordered,
	StatusShipped,
	StatusDelivered,
}

func (s Status) Valid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// LineItem is a point-in-time copy of product data taken at order creation.
// Price is the catalog price at that moment, not the price shown when the
// item entered the cart; historical invoices never change when the catalog
// does.
type LineItem struct {
	ProductID     string `json:"product_id"`
	Name          string `json:"name"`
	Quantity      int    `json:"quantity"`
	Price         int    `json:"price"`
	Supplier      string `json:"supplier"`
	SupplierPrice int    `json:"supplier_price"`
}

// Order is immutable after creation except for Status.
type Order struct {
	ID               string     `json:"id"`
	CompanyName      string     `json:"company_name"`
	UserID           string     `json:"user_id"`
	DeliveryLocation string     `json:"delivery_location"`
	SiteName         string     `json:"site_name"`
	PersonName       string     `json:"person_name"`
	Items            []LineItem `json:"items"`
	OrderedAt        time.Time  `json:"ordered_at"`
	Status           Status     `json:"status"`
}

// Total is always recomputed from items, never stored, so it cannot drift.
func (o *Order) Total() int {
	total := 0
	for _, it := range o.Items {
		total += it.Price * it.Quantity
	}
	return total
}
