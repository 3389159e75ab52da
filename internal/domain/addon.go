package domain

// Addon is decorative metadata attached to an agreement, e.g. a curated
// music playlist for the trip. It never affects pricing.
type Addon struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Link string `json:"link"`
}
