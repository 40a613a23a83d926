package design

import "errors"

var (
	// ErrNotFound - không có row cho id
	ErrNotFound = errors.New("design not found")
)
