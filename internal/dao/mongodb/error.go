package mongodb

import "errors"

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("document already exists")
)
