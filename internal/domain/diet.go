package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrFoodQuantityMismatch is returned when foods and quantities differ in length.
var ErrFoodQuantityMismatch = errors.New("foods and quantities must have the same length")

// DietRecord describes one meal. Foods and Quantities are parallel: the
// quantity at index i belongs to the food at index i.
type DietRecord struct {
	Record        `yaml:",inline"`
	MealType      string    `json:"meal_type"      yaml:"meal_type"      validate:"required"`
	Foods         []string  `json:"foods"          yaml:"foods"`
	Quantities    []float64 `json:"quantities"     yaml:"quantities"     validate:"dive,gte=0"`
	TotalCalories float64   `json:"total_calories" yaml:"total_calories" validate:"gte=0"`
}

// NewDietRecord creates a validated DietRecord.
func NewDietRecord(
	id int,
	date time.Time,
	mealType string,
	foods []string,
	quantities []float64,
	totalCalories float64,
) (*DietRecord, error) {
	r := &DietRecord{
		Record:        Record{ID: id, Date: date},
		MealType:      mealType,
		Foods:         foods,
		Quantities:    quantities,
		TotalCalories: totalCalories,
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate checks if the DietRecord has valid data.
func (r *DietRecord) Validate() error {
	if err := r.Record.validate(); err != nil {
		return err
	}

	if len(r.Foods) != len(r.Quantities) {
		return ErrFoodQuantityMismatch
	}

	return validateStruct(r)
}

// UpdateFoods replaces the meal contents. The record is left unchanged when
// the new values are invalid.
func (r *DietRecord) UpdateFoods(foods []string, quantities []float64, totalCalories float64) error {
	updated := *r
	updated.Foods = foods
	updated.Quantities = quantities
	updated.TotalCalories = totalCalories

	if err := updated.Validate(); err != nil {
		return err
	}

	*r = updated
	return nil
}

// Details returns a multi-line description of the meal.
func (r *DietRecord) Details() string {
	var foods strings.Builder
	for i, food := range r.Foods {
		fmt.Fprintf(&foods, "%s: %s ", food, FormatNumber(r.Quantities[i]))
	}

	return fmt.Sprintf("%s\n"+
		"Meal Type: %s\n"+
		"Foods and Quantities: %s\n"+
		"Total Calories: %s",
		r.BasicInfo(),
		r.MealType,
		foods.String(),
		FormatNumber(r.TotalCalories))
}
