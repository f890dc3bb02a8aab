package repo

import (
	"context"
	"strings"

	"github.com/Skotchmaster/market_items/internal/models"
)

func (r *GormRepo) CreateItem(ctx context.Context, item *models.MarketItem) error {
	item.ID = 0
	return r.DB.WithContext(ctx).Create(item).Error
}

func (r *GormRepo) GetItem(ctx context.Context, id int) (*models.MarketItem, error) {
	var item models.MarketItem
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, notFound(err)
	}
	return &item, nil
}

// UpdateItem replaces every column but id and reports whether a row matched.
// A missing id is not an error.
func (r *GormRepo) UpdateItem(ctx context.Context, id int, item *models.MarketItem) (bool, error) {
	row := *item
	row.ID = 0
	res := r.DB.WithContext(ctx).
		Model(&models.MarketItem{}).
		Where("id = ?", id).
		Select("title", "description", "price", "discount_percentage", "rating", "stock", "brand", "category", "thumbnail", "image").
		Updates(&row)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *GormRepo) DeleteItem(ctx context.Context, id int) error {
	return r.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.MarketItem{}).Error
}

// ListItems returns a window of the table in storage order.
func (r *GormRepo) ListItems(ctx context.Context, limit, skip int) ([]models.MarketItem, error) {
	items := []models.MarketItem{}
	if limit == 0 {
		return items, nil
	}
	if err := r.DB.WithContext(ctx).Limit(limit).Offset(skip).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) ListCategories(ctx context.Context) ([]string, error) {
	categories := []string{}
	if err := r.DB.WithContext(ctx).
		Model(&models.MarketItem{}).
		Distinct().
		Pluck("category", &categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *GormRepo) ListByCategory(ctx context.Context, category string) ([]models.MarketItem, error) {
	items := []models.MarketItem{}
	if err := r.DB.WithContext(ctx).Where("category = ?", category).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// SearchItems matches titles that start with q, ignoring case.
func (r *GormRepo) SearchItems(ctx context.Context, q string) ([]models.MarketItem, error) {
	pattern := escapeLike(q) + "%"

	tx := r.DB.WithContext(ctx).Model(&models.MarketItem{})
	if strings.EqualFold(r.DB.Name(), "postgres") {
		tx = tx.Where(`title ILIKE ? ESCAPE '\'`, pattern)
	} else {
		tx = tx.Where(`LOWER(title) LIKE ? ESCAPE '\'`, strings.ToLower(pattern))
	}

	items := []models.MarketItem{}
	if err := tx.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
