package service

import (
	"strings"

	"carrental-backend/internal/domain"
)

// staticAddonCatalog is the built-in playlist catalog. It is a plain lookup
// table with no dynamic behavior.
type staticAddonCatalog struct {
	byKey map[string]domain.Addon
	order []string
}

func NewStaticAddonCatalog() AddonCatalog {
	addons := []domain.Addon{
		{Key: "roadtrip", Name: "Road Trip Classics", Link: "https://music.example.com/playlists/road-trip-classics"},
		{Key: "rock", Name: "Rock Anthems", Link: "https://music.example.com/playlists/rock-anthems"},
		{Key: "pop", Name: "Pop Hits", Link: "https://music.example.com/playlists/pop-hits"},
		{Key: "jazz", Name: "Smooth Jazz Drive", Link: "https://music.example.com/playlists/smooth-jazz-drive"},
		{Key: "chill", Name: "Chill Cruise", Link: "https://music.example.com/playlists/chill-cruise"},
		{Key: "kids", Name: "Backseat Singalong", Link: "https://music.example.com/playlists/backseat-singalong"},
	}

	c := &staticAddonCatalog{byKey: make(map[string]domain.Addon, len(addons))}
	for _, a := range addons {
		c.byKey[a.Key] = a
		c.order = append(c.order, a.Key)
	}
	return c
}

func (c *staticAddonCatalog) Resolve(key string) (*domain.Addon, bool) {
	a, ok := c.byKey[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return nil, false
	}
	return &a, true
}

func (c *staticAddonCatalog) List() []domain.Addon {
	addons := make([]domain.Addon, 0, len(c.order))
	for _, key := range c.order {
		addons = append(addons, c.byKey[key])
	}
	return addons
}
