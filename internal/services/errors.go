package services

import "github.com/h4ks-com/farmstand/internal/apperror"

var (
	ErrFarmNotFound    = apperror.NotFound("Farm not found")
	ErrProductNotFound = apperror.NotFound("Product not found")
)
