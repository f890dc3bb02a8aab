package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Skotchmaster/market_items/internal/events"
	"github.com/Skotchmaster/market_items/internal/logging"
	"github.com/Skotchmaster/market_items/internal/models"
	"github.com/Skotchmaster/market_items/internal/transport"
)

type CatalogService struct {
	Store  CatalogStore
	Events events.Publisher
	// Index may be nil when full-text search is disabled.
	Index ItemIndex
}

func NewCatalogService(store CatalogStore, publisher events.Publisher, index ItemIndex) *CatalogService {
	return &CatalogService{Store: store, Events: publisher, Index: index}
}

// CreateItems stores each item and returns the new ids in input order.
func (s *CatalogService) CreateItems(ctx context.Context, items []transport.MarketItem) ([]int, error) {
	ids := make([]int, 0, len(items))
	for _, it := range items {
		id, err := s.CreateItem(ctx, it)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *CatalogService) CreateItem(ctx context.Context, item transport.MarketItem) (int, error) {
	row := item.ToModel()
	if err := s.Store.CreateItem(ctx, &row); err != nil {
		return 0, fmt.Errorf("create item: %w", err)
	}

	s.index(ctx, row)
	publish(ctx, s.Events, events.TopicItems, strconv.Itoa(row.ID), events.Event{
		Type:   events.ItemCreated,
		ItemID: row.ID,
		Title:  row.Title,
	})
	return row.ID, nil
}

func (s *CatalogService) GetItem(ctx context.Context, id int) (transport.MarketItem, error) {
	row, err := s.Store.GetItem(ctx, id)
	if err != nil {
		return transport.MarketItem{}, fmt.Errorf("get item %d: %w", id, err)
	}
	return transport.FromModel(*row), nil
}

// UpdateItem replaces the stored item. Updating an absent id is a no-op and
// touches neither the index nor the event stream.
func (s *CatalogService) UpdateItem(ctx context.Context, id int, item transport.MarketItem) error {
	row := item.ToModel()
	found, err := s.Store.UpdateItem(ctx, id, &row)
	if err != nil {
		return fmt.Errorf("update item %d: %w", id, err)
	}
	if !found {
		return nil
	}

	row.ID = id
	s.index(ctx, row)
	publish(ctx, s.Events, events.TopicItems, strconv.Itoa(id), events.Event{
		Type:   events.ItemUpdated,
		ItemID: id,
		Title:  row.Title,
	})
	return nil
}

// DeleteItem removes the item. Deleting an absent id is a no-op.
func (s *CatalogService) DeleteItem(ctx context.Context, id int) error {
	if err := s.Store.DeleteItem(ctx, id); err != nil {
		return fmt.Errorf("delete item %d: %w", id, err)
	}

	if s.Index != nil {
		if err := s.Index.DeleteItem(ctx, id); err != nil {
			logging.FromContext(ctx).Warn("search_index_delete_failed", "item_id", id, "error", err)
		}
	}
	publish(ctx, s.Events, events.TopicItems, strconv.Itoa(id), events.Event{
		Type:   events.ItemDeleted,
		ItemID: id,
	})
	return nil
}

func (s *CatalogService) ListItems(ctx context.Context, limit, skip int) ([]transport.MarketItem, error) {
	if limit < 0 || skip < 0 {
		return nil, fmt.Errorf("%w: limit and skip must be non-negative", ErrValidation)
	}
	rows, err := s.Store.ListItems(ctx, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return transport.FromModels(rows), nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]string, error) {
	cats, err := s.Store.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return cats, nil
}

func (s *CatalogService) ListByCategory(ctx context.Context, category string) ([]transport.MarketItem, error) {
	rows, err := s.Store.ListByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("list category %q: %w", category, err)
	}
	return transport.FromModels(rows), nil
}

func (s *CatalogService) SearchItems(ctx context.Context, q string) ([]transport.MarketItem, error) {
	rows, err := s.Store.SearchItems(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("search items: %w", err)
	}
	return transport.FromModels(rows), nil
}

func (s *CatalogService) FullTextSearch(ctx context.Context, q string, limit, skip int) (transport.SearchResult, error) {
	if s.Index == nil {
		return transport.SearchResult{}, ErrSearchUnavailable
	}
	if limit < 0 || skip < 0 {
		return transport.SearchResult{}, fmt.Errorf("%w: limit and skip must be non-negative", ErrValidation)
	}

	total, rows, err := s.Index.Search(ctx, q, skip, limit)
	if err != nil {
		return transport.SearchResult{}, fmt.Errorf("full-text search: %w", err)
	}
	return transport.SearchResult{Total: total, Products: transport.FromModels(rows)}, nil
}

func (s *CatalogService) index(ctx context.Context, row models.MarketItem) {
	if s.Index == nil {
		return
	}
	if err := s.Index.IndexItem(ctx, row); err != nil {
		logging.FromContext(ctx).Warn("search_index_failed", "item_id", row.ID, "error", err)
	}
}
