package session

import "github.com/jask/themenu/internal/order"

// Summary is what the thank-you screen shows.
type Summary struct {
	Lines     []order.CartLine
	ItemCount int
	Total     string
	Guests    string
	Date      string
	Location  string
	Requests  string
	Dietary   []string
	Note      string
	Reference string
}

// Summary collects the cart, booking and dietary details of the session.
func (s *Session) Summary() Summary {
	return Summary{
		Lines:     s.cart.Lines(),
		ItemCount: s.cart.ItemCount(),
		Total:     s.prices.Format(s.cart.Total()),
		Guests:    s.booking.Guests,
		Date:      s.booking.Date,
		Location:  s.booking.Location,
		Requests:  s.booking.SpecialRequests,
		Dietary:   s.dietary.Selected(),
		Note:      s.dietary.TellMeMore,
		Reference: s.reference,
	}
}
