package catalog

import "strings"

type Predicate func(Product) bool

// Filter returns the products matching the predicate, in input order.
// Linear scan on purpose; the catalog is small.
func Filter(products []Product, pred Predicate) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}

func And(preds ...Predicate) Predicate {
	return func(p Product) bool {
		for _, pred := range preds {
			if !pred(p) {
				return false
			}
		}
		return true
	}
}

// SearchQuery is the storefront's product filter form. Zero values mean
// "no constraint" for every field.
type SearchQuery struct {
	Keyword  string
	Category string
	PriceMin *int
	PriceMax *int
}

func (q SearchQuery) Predicate() Predicate {
	return And(
		MatchKeyword(q.Keyword),
		MatchCategory(q.Category),
		MatchPriceBetween(q.PriceMin, q.PriceMax),
	)
}

// MatchKeyword matches a substring of the product name or supplier.
// Empty keyword matches everything.
func MatchKeyword(keyword string) Predicate {
	keyword = strings.TrimSpace(keyword)
	return func(p Product) bool {
		return keyword == "" ||
			strings.Contains(p.Name, keyword) ||
			strings.Contains(p.Supplier, keyword)
	}
}

// MatchCategory matches the product's category name exactly. Empty matches
// everything.
func MatchCategory(category string) Predicate {
	return func(p Product) bool {
		return category == "" || p.Category == category
	}
}

// MatchPriceBetween bounds the price inclusively; a nil bound is open.
func MatchPriceBetween(min, max *int) Predicate {
	return func(p Product) bool {
		if min != nil && p.Price < *min {
			return false
		}
		if max != nil && p.Price > *max {
			return false
		}
		return true
	}
}
