package transport

import "github.com/Skotchmaster/market_items/internal/models"

type MarketItem struct {
	ID                 int      `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Price              int      `json:"price"`
	DiscountPercentage float64  `json:"discountPercentage"`
	Rating             float64  `json:"rating"`
	Stock              int      `json:"stock"`
	Brand              string   `json:"brand"`
	Category           string   `json:"category"`
	Thumbnail          string   `json:"thumbnail"`
	Images             []string `json:"images"`
}

type MarketItemsContainer struct {
	Products []MarketItem `json:"products"`
}

type SearchResult struct {
	Total    int64        `json:"total"`
	Products []MarketItem `json:"products"`
}

type UserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

// ToModel drops every image but the first; the id is left to the store.
func (m MarketItem) ToModel() models.MarketItem {
	image := ""
	if len(m.Images) > 0 {
		image = m.Images[0]
	}
	return models.MarketItem{
		Title:              m.Title,
		Description:        m.Description,
		Price:              m.Price,
		DiscountPercentage: m.DiscountPercentage,
		Rating:             m.Rating,
		Stock:              m.Stock,
		Brand:              m.Brand,
		Category:           m.Category,
		Thumbnail:          m.Thumbnail,
		Image:              image,
	}
}

func FromModel(row models.MarketItem) MarketItem {
	return MarketItem{
		ID:                 row.ID,
		Title:              row.Title,
		Description:        row.Description,
		Price:              row.Price,
		DiscountPercentage: row.DiscountPercentage,
		Rating:             row.Rating,
		Stock:              row.Stock,
		Brand:              row.Brand,
		Category:           row.Category,
		Thumbnail:          row.Thumbnail,
		Images:             []string{row.Image},
	}
}

func FromModels(rows []models.MarketItem) []MarketItem {
	out := make([]MarketItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}

func UserFromModel(u models.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}
