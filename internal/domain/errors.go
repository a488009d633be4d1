package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrConflict            = errors.New("resource conflict")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidProfile      = errors.New("invalid profile")
	ErrProfileRequired     = errors.New("profile required")
	ErrMissingNutrientData = errors.New("missing nutrient data")
)
