package domain

// DefaultPricePerDay is applied when a loaded inventory row carries no price.
const DefaultPricePerDay int32 = 1000

type Vehicle struct {
	ID          string `json:"id"`
	Make        string `json:"make"`
	Model       string `json:"model"`
	Year        int32  `json:"year"`
	PricePerDay int32  `json:"price_per_day"`
	Available   bool   `json:"available"`
}

// StatusLabel renders the availability flag for operator-facing listings.
func (v *Vehicle) StatusLabel() string {
	if v.Available {
		return "Available"
	}
	return "Rented"
}
