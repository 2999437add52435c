package order

import (
	"strings"
	"time"
)

type Predicate func(Order) bool

// Filter returns the orders matching the predicate, preserving input order.
// Linear scans are deliberate; order lists are small enough that an index
// buys nothing.
func Filter(orders []Order, pred Predicate) []Order {
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		if pred(o) {
			out = append(out, o)
		}
	}
	return out
}

func And(preds ...Predicate) Predicate {
	return func(o Order) bool {
		for _, p := range preds {
			if !p(o) {
				return false
			}
		}
		return true
	}
}

// SearchQuery collects the storefront and admin search fields. Zero values
// match everything.
type SearchQuery struct {
	Keyword     string // order id, site name or delivery location
	ProductName string // any item name
	Person      string
	Status      Status
	From        *time.Time
	To          *time.Time
}

func (q SearchQuery) Predicate() Predicate {
	return And(
		MatchKeyword(q.Keyword),
		MatchProductName(q.ProductName),
		MatchPerson(q.Person),
		MatchStatus(q.Status),
		MatchOrderedBetween(q.From, q.To),
	)
}

func MatchKeyword(keyword string) Predicate {
	keyword = strings.TrimSpace(keyword)
	return func(o Order) bool {
		return keyword == "" ||
			strings.Contains(o.ID, keyword) ||
			strings.Contains(o.SiteName, keyword) ||
			strings.Contains(o.DeliveryLocation, keyword)
	}
}

func MatchProductName(keyword string) Predicate {
	keyword = strings.TrimSpace(keyword)
	return func(o Order) bool {
		if keyword == "" {
			return true
		}
		for _, it := range o.Items {
			if strings.Contains(it.Name, keyword) {
				return true
			}
		}
		return false
	}
}

func MatchPerson(name string) Predicate {
	name = strings.TrimSpace(name)
	return func(o Order) bool {
		return name == "" || strings.Contains(o.PersonName, name)
	}
}

// MatchStatus treats an order with a blank status as freshly received,
// matching how legacy records without the field behave in the UI.
func MatchStatus(status Status) Predicate {
	return func(o Order) bool {
		if status == "" {
			return true
		}
		current := o.Status
		if current == "" {
			current = StatusReceived
		}
		return current == status
	}
}

// MatchOrderedBetween bounds are inclusive; nil means unbounded.
func MatchOrderedBetween(from, to *time.Time) Predicate {
	return func(o Order) bool {
		if from != nil && o.OrderedAt.Before(*from) {
			return false
		}
		if to != nil && o.OrderedAt.After(*to) {
			return false
		}
		return true
	}
}
