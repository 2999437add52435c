package catalog

// Stock status semantics carried in a plain int on the product record:
// >=1 in stock, 0 backorder, <0 out of stock.
type Availability string

const (
	InStock    Availability = "IN_STOCK"
	Backorder  Availability = "BACKORDER"
	OutOfStock Availability = "OUT_OF_STOCK"
)

// Category on a product is the name of a node from the category tree,
// parent or child; filtering compares it verbatim.
type Product struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Price         int    `json:"price"`
	Category      string `json:"category"`
	Supplier      string `json:"supplier"`
	SupplierPrice int    `json:"supplier_price"`
	StockStatus   int    `json:"stock_status"`
}

func (p Product) Availability() Availability {
	switch {
	case p.StockStatus >= 1:
		return InStock
	case p.StockStatus == 0:
		return Backorder
	default:
		return OutOfStock
	}
}
