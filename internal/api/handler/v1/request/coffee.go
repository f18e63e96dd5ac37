package request

import (
	"bytes"
	"encoding/json"
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/fsnd-projects/fsnd-api/internal/domain"
)

var errRecipeRequired = errors.New("recipe: cannot be blank")

// Recipe decodes either a single ingredient object or a list of them.
type Recipe []domain.Ingredient

func (r *Recipe) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*r = nil
		return nil
	}

	if len(data) > 0 && data[0] == '{' {
		var one domain.Ingredient
		if err := json.Unmarshal(data, &one); err != nil {
			return err
		}
		*r = Recipe{one}

		return nil
	}

	var many []domain.Ingredient
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	if many == nil {
		many = []domain.Ingredient{}
	}
	*r = many

	return nil
}

func validateIngredients(recipe Recipe) error {
	for i := range recipe {
		ing := &recipe[i]
		err := validation.ValidateStruct(
			ing,
			validation.Field(&ing.Name, validation.Required),
			validation.Field(&ing.Color, validation.Required),
			validation.Field(&ing.Parts, validation.Required, validation.Min(1)),
		)
		if err != nil {
			return err
		}
	}

	return nil
}

type CreateDrinkRequest struct {
	Title  string `json:"title"`
	Recipe Recipe `json:"recipe"`
}

func (req *CreateDrinkRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 80)),
	)
	if err != nil {
		return err
	}

	if len(req.Recipe) == 0 {
		return errRecipeRequired
	}

	return validateIngredients(req.Recipe)
}

// UpdateDrinkRequest leaves a field nil when the client did not send it.
type UpdateDrinkRequest struct {
	Title  *string `json:"title"`
	Recipe Recipe  `json:"recipe"`
}

func (req *UpdateDrinkRequest) Validate() error {
	if req.Title != nil {
		if err := validation.Validate(*req.Title, validation.Required, validation.Length(1, 80)); err != nil {
			return errors.New("title: " + err.Error())
		}
	}

	if req.Recipe != nil && len(req.Recipe) == 0 {
		return errRecipeRequired
	}

	return validateIngredients(req.Recipe)
}

func (req *UpdateDrinkRequest) RecipeOrNil() []domain.Ingredient {
	if req.Recipe == nil {
		return nil
	}

	return []domain.Ingredient(req.Recipe)
}

type CreateMenuRequest struct {
	Title string `json:"title"`
}

func (req *CreateMenuRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 80)),
	)
}
