package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Skotchmaster/market_items/internal/models"
)

func TestMarketItem_ToModel_KeepsFirstImage(t *testing.T) {
	t.Parallel()

	item := MarketItem{
		ID:       99,
		Title:    "Phone",
		Price:    500,
		Category: "electronics",
		Images:   []string{"a.png", "b.png"},
	}

	row := item.ToModel()
	assert.Zero(t, row.ID, "id is assigned by the store")
	assert.Equal(t, "a.png", row.Image)
	assert.Equal(t, "Phone", row.Title)

	back := FromModel(row)
	assert.Equal(t, []string{"a.png"}, back.Images)
}

func TestMarketItem_ToModel_NoImages(t *testing.T) {
	t.Parallel()

	row := MarketItem{Title: "Empty"}.ToModel()
	assert.Equal(t, "", row.Image)
	assert.Equal(t, []string{""}, FromModel(row).Images)
}

func TestFromModels_EmptyIsNotNil(t *testing.T) {
	t.Parallel()

	out := FromModels(nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)

	out = FromModels([]models.MarketItem{{ID: 1}, {ID: 2}})
	assert.Len(t, out, 2)
	assert.Equal(t, 2, out[1].ID)
}
