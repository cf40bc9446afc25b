package entity

import "github.com/shopspring/decimal"

// RecipeIngredient es una línea de receta: referencia al ingrediente y cantidad.
type RecipeIngredient struct {
	IngredientID   string
	IngredientName string
	Quantity       decimal.Decimal
}

// Recipe representa una receta del catálogo con su escandallo teórico
// precalculado (CostoReceta). El motor la lee, nunca la modifica.
type Recipe struct {
	ID          string
	Name        string
	Ingredients []RecipeIngredient
	CostoReceta decimal.Decimal // costo teórico de la receta según catálogo
}
