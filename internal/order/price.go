package order

import "strconv"

// DefaultCurrency is the rand prefix used by the restaurant.
const DefaultCurrency = "R"

// PriceFormatter renders whole-unit amounts behind a fixed prefix. There is
// no decimal or locale handling.
type PriceFormatter struct {
	Prefix string
}

func (f PriceFormatter) Format(amount int) string {
	return f.Prefix + strconv.Itoa(amount)
}

// FormatPrice formats with DefaultCurrency, e.g. 220 -> "R220".
func FormatPrice(amount int) string {
	return PriceFormatter{Prefix: DefaultCurrency}.Format(amount)
}
