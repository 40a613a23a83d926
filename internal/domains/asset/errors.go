package asset

import "errors"

var (
	// ErrNotFound - không có row cho id
	ErrNotFound = errors.New("asset not found")

	// ErrStorage - upload/delete object thất bại
	// Khi create/update: fatal, không được ghi row mà không có object URL
	ErrStorage = errors.New("object storage operation failed")
)
