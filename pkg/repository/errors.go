package repository

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors shared by all binding repository backends
var (
	ErrBindingNotFound = goerr.New("binding not found")
)
