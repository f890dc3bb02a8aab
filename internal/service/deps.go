package service

import (
	"context"
	"time"

	"github.com/Skotchmaster/market_items/internal/events"
	"github.com/Skotchmaster/market_items/internal/logging"
	"github.com/Skotchmaster/market_items/internal/models"
)

type CatalogStore interface {
	CreateItem(ctx context.Context, item *models.MarketItem) error
	GetItem(ctx context.Context, id int) (*models.MarketItem, error)
	UpdateItem(ctx context.Context, id int, item *models.MarketItem) (bool, error)
	DeleteItem(ctx context.Context, id int) error
	ListItems(ctx context.Context, limit, skip int) ([]models.MarketItem, error)
	ListCategories(ctx context.Context) ([]string, error)
	ListByCategory(ctx context.Context, category string) ([]models.MarketItem, error)
	SearchItems(ctx context.Context, q string) ([]models.MarketItem, error)
}

type UserStore interface {
	CreateUser(ctx context.Context, u *models.User) error
	GetUserByID(ctx context.Context, id int) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUser(ctx context.Context, id int, u *models.User) error
	DeleteUser(ctx context.Context, id int) error
}

// ItemIndex is the optional full-text index kept in sync with the catalog.
type ItemIndex interface {
	IndexItem(ctx context.Context, item models.MarketItem) error
	DeleteItem(ctx context.Context, id int) error
	Search(ctx context.Context, query string, from, size int) (int64, []models.MarketItem, error)
}

const publishTimeout = 5 * time.Second

// publish never fails the caller; delivery problems are only logged.
func publish(ctx context.Context, p events.Publisher, topic, key string, ev events.Event) {
	if p == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	ev.At = time.Now().UTC()
	if err := p.PublishEvent(ctx, topic, key, ev); err != nil {
		logging.FromContext(ctx).Warn("event_publish_failed", "topic", topic, "type", ev.Type, "error", err)
	}
}
