package response

import "github.com/fsnd-projects/fsnd-api/internal/domain"

type ShortDrinksResponse struct {
	Success bool                `json:"success"`
	Drinks  []domain.ShortDrink `json:"drinks"`
}

type DrinksResponse struct {
	Success bool           `json:"success"`
	Drinks  []domain.Drink `json:"drinks"`
}

type DrinkDeletedResponse struct {
	Success bool `json:"success"`
	Delete  uint `json:"delete"`
}

type MenusResponse struct {
	Success bool          `json:"success"`
	Menus   []domain.Menu `json:"menus"`
}

func NewShortDrinks(drinks []domain.Drink) []domain.ShortDrink {
	out := make([]domain.ShortDrink, len(drinks))
	for i, d := range drinks {
		out[i] = d.Short()
	}

	return out
}
