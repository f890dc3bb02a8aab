package models

type MarketItem struct {
	ID                 int     `gorm:"primaryKey;autoIncrement"  json:"id"`
	Title              string  `gorm:"size:255;not null"         json:"title"`
	Description        string  `gorm:"type:text;not null"        json:"description"`
	Price              int     `gorm:"not null"                  json:"price"`
	DiscountPercentage float64 `gorm:"not null"                  json:"discountPercentage"`
	Rating             float64 `gorm:"not null"                  json:"rating"`
	Stock              int     `gorm:"not null"                  json:"stock"`
	Brand              string  `gorm:"size:255;not null"         json:"brand"`
	Category           string  `gorm:"size:255;not null;index"   json:"category"`
	Thumbnail          string  `gorm:"type:text;not null"        json:"thumbnail"`
	// Only the first image of an item is persisted.
	Image string `gorm:"type:text;not null" json:"image"`
}

func (MarketItem) TableName() string { return "market_items" }

type User struct {
	ID           int    `gorm:"primaryKey;autoIncrement"  json:"id"`
	Name         string `gorm:"size:255;not null"         json:"name"`
	Email        string `gorm:"size:255;not null;unique"  json:"email"`
	PasswordHash string `gorm:"size:255;not null"         json:"-"`
}

func (User) TableName() string { return "users" }
