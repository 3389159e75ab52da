package service_test

import (
	"testing"

	"carrental-backend/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestStaticAddonCatalog(t *testing.T) {
	catalog := service.NewStaticAddonCatalog()

	addon, ok := catalog.Resolve("roadtrip")
	assert.True(t, ok)
	assert.Equal(t, "Road Trip Classics", addon.Name)
	assert.NotEmpty(t, addon.Link)

	// Key matching tolerates case and whitespace.
	addon, ok = catalog.Resolve("  RoadTrip ")
	assert.True(t, ok)
	assert.Equal(t, "roadtrip", addon.Key)

	_, ok = catalog.Resolve("polka")
	assert.False(t, ok)

	addons := catalog.List()
	assert.NotEmpty(t, addons)
	assert.Equal(t, "roadtrip", addons[0].Key)
}
