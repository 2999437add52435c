package catalog

import "errors"

var (
	ErrProductNotFound     = errors.New("product not found")
	ErrFailedCreateProduct = errors.New("failed to create product")
	ErrFailedUpdateProduct = errors.New("failed to update product")
	ErrFailedDeleteProduct = errors.New("failed to delete product")
)
