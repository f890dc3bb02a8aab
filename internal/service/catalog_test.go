package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/market_items/internal/events"
	"github.com/Skotchmaster/market_items/internal/repo"
	"github.com/Skotchmaster/market_items/internal/transport"
)

func TestCatalogService_CreateItems(t *testing.T) {
	pub := &recordingPublisher{}
	idx := newFakeIndex()
	svc := NewCatalogService(newTestRepo(t), pub, idx)
	ctx := context.Background()

	ids, err := svc.CreateItems(ctx, []transport.MarketItem{
		{ID: 99, Title: "Phone", Category: "electronics", Images: []string{"a.png", "b.png"}},
		{Title: "Shirt", Category: "clothes"},
	})
	require.NoError(t, err)
	require.Len(t, ids, 2)
	assert.Less(t, ids[0], ids[1])

	got, err := svc.GetItem(ctx, ids[0])
	require.NoError(t, err)
	assert.Equal(t, ids[0], got.ID)
	assert.Equal(t, []string{"a.png"}, got.Images, "only the first image is kept")

	got, err = svc.GetItem(ctx, ids[1])
	require.NoError(t, err)
	assert.Equal(t, []string{""}, got.Images)

	assert.Equal(t, []string{events.ItemCreated, events.ItemCreated}, pub.types())
	assert.Len(t, idx.docs, 2)
}

func TestCatalogService_CreateItems_Empty(t *testing.T) {
	svc := NewCatalogService(newTestRepo(t), events.Nop{}, nil)

	ids, err := svc.CreateItems(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, ids)
	assert.Empty(t, ids)
}

func TestCatalogService_CategoryScenario(t *testing.T) {
	svc := NewCatalogService(newTestRepo(t), events.Nop{}, nil)
	ctx := context.Background()

	_, err := svc.CreateItems(ctx, []transport.MarketItem{
		{Title: "A", Category: "x"},
		{Title: "B", Category: "y"},
		{Title: "C", Category: "x"},
	})
	require.NoError(t, err)

	cats, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"x", "y"}, cats)

	items, err := svc.ListByCategory(ctx, "x")
	require.NoError(t, err)
	titles := []string{}
	for _, it := range items {
		titles = append(titles, it.Title)
	}
	assert.ElementsMatch(t, []string{"A", "C"}, titles)
}

func TestCatalogService_UpdateDelete(t *testing.T) {
	pub := &recordingPublisher{}
	idx := newFakeIndex()
	svc := NewCatalogService(newTestRepo(t), pub, idx)
	ctx := context.Background()

	id, err := svc.CreateItem(ctx, transport.MarketItem{Title: "Old", Price: 1})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateItem(ctx, id, transport.MarketItem{ID: 555, Title: "New", Price: 2}))
	got, err := svc.GetItem(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "New", got.Title)
	assert.Equal(t, 2, got.Price)
	assert.Equal(t, "New", idx.docs[id].Title)

	require.NoError(t, svc.DeleteItem(ctx, id))
	require.NoError(t, svc.DeleteItem(ctx, id), "second delete is a no-op")

	_, err = svc.GetItem(ctx, id)
	assert.ErrorIs(t, err, repo.ErrNotFound)
	assert.NotContains(t, idx.docs, id)

	assert.Equal(t, []string{events.ItemCreated, events.ItemUpdated, events.ItemDeleted, events.ItemDeleted}, pub.types())
}

func TestCatalogService_SideEffectFailuresAreIgnored(t *testing.T) {
	pub := &recordingPublisher{err: assert.AnError}
	idx := newFakeIndex()
	idx.failAll = true
	svc := NewCatalogService(newTestRepo(t), pub, idx)
	ctx := context.Background()

	id, err := svc.CreateItem(ctx, transport.MarketItem{Title: "Phone"})
	require.NoError(t, err)
	require.NoError(t, svc.UpdateItem(ctx, id, transport.MarketItem{Title: "Phone 2"}))
	require.NoError(t, svc.DeleteItem(ctx, id))
}

func TestCatalogService_ListItems(t *testing.T) {
	svc := NewCatalogService(newTestRepo(t), events.Nop{}, nil)
	ctx := context.Background()

	_, err := svc.CreateItems(ctx, []transport.MarketItem{{Title: "a"}, {Title: "b"}, {Title: "c"}})
	require.NoError(t, err)

	items, err := svc.ListItems(ctx, 2, 1)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "b", items[0].Title)

	_, err = svc.ListItems(ctx, -1, 0)
	assert.ErrorIs(t, err, ErrValidation)
	_, err = svc.ListItems(ctx, 1, -1)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCatalogService_SearchItems(t *testing.T) {
	svc := NewCatalogService(newTestRepo(t), events.Nop{}, nil)
	ctx := context.Background()

	_, err := svc.CreateItems(ctx, []transport.MarketItem{{Title: "ABCdef"}, {Title: "xABC"}})
	require.NoError(t, err)

	items, err := svc.SearchItems(ctx, "abc")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "ABCdef", items[0].Title)
}

func TestCatalogService_FullTextSearch(t *testing.T) {
	ctx := context.Background()

	disabled := NewCatalogService(newTestRepo(t), events.Nop{}, nil)
	_, err := disabled.FullTextSearch(ctx, "phone", 10, 0)
	assert.ErrorIs(t, err, ErrSearchUnavailable)

	idx := newFakeIndex()
	svc := NewCatalogService(newTestRepo(t), events.Nop{}, idx)
	_, err = svc.CreateItems(ctx, []transport.MarketItem{
		{Title: "Phone", Description: "smart"},
		{Title: "Case", Description: "for a phone"},
		{Title: "Shirt"},
	})
	require.NoError(t, err)

	res, err := svc.FullTextSearch(ctx, "phone", 1, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 2, res.Total)
	require.Len(t, res.Products, 1)
	assert.Equal(t, "Case", res.Products[0].Title)

	_, err = svc.FullTextSearch(ctx, "phone", -1, 0)
	assert.ErrorIs(t, err, ErrValidation)

	idx.failAll = true
	_, err = svc.FullTextSearch(ctx, "phone", 1, 0)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrSearchUnavailable)
}

func TestCatalogService_UpdateMissingItem(t *testing.T) {
	pub := &recordingPublisher{}
	idx := newFakeIndex()
	svc := NewCatalogService(newTestRepo(t), pub, idx)
	ctx := context.Background()

	require.NoError(t, svc.UpdateItem(ctx, 999, transport.MarketItem{Title: "ghost"}))

	assert.NotContains(t, idx.docs, 999)
	assert.Empty(t, pub.types())

	_, err := svc.GetItem(ctx, 999)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}
