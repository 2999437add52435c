package cart

// Session is the per-device UI state: the pending cart, favorite product
// ids, and lines parked for later. It replaces ambient browser-local state
// with an explicit record loaded at session start and written back on every
// mutation.
type Session struct {
	UserID    string          `json:"user_id"`
	Cart      Cart            `json:"cart"`
	Favorites map[string]bool `json:"favorites"`
	BuyLater  []Line          `json:"buy_later"`
}

func NewSession(userID string) *Session {
	return &Session{
		UserID:    userID,
		Favorites: make(map[string]bool),
	}
}

// ToggleFavorite flips membership and reports the new state.
func (s *Session) ToggleFavorite(productID string) bool {
	if s.Favorites == nil {
		s.Favorites = make(map[string]bool)
	}
	if s.Favorites[productID] {
		delete(s.Favorites, productID)
		return false
	}
	s.Favorites[productID] = true
	return true
}

// SaveForLater moves a cart line into the buy-later list; no-op when the
// line is not in the cart.
func (s *Session) SaveForLater(productID string) {
	line := s.Cart.find(productID)
	if line == nil {
		return
	}
	saved := *line
	s.Cart.Remove(productID)

	for i := range s.BuyLater {
		if s.BuyLater[i].ProductID == productID {
			s.BuyLater[i] = saved
			return
		}
	}
	s.BuyLater = append(s.BuyLater, saved)
}

// MoveToCart restores a buy-later line into the cart; no-op when absent.
func (s *Session) MoveToCart(productID string) {
	for i := range s.BuyLater {
		if s.BuyLater[i].ProductID == productID {
			line := s.BuyLater[i]
			s.BuyLater = append(s.BuyLater[:i], s.BuyLater[i+1:]...)

			if existing := s.Cart.find(line.ProductID); existing != nil {
				existing.Quantity += line.Quantity
				return
			}
			s.Cart.Lines = append(s.Cart.Lines, line)
			return
		}
	}
}
