package store

import "errors"

var (
	// ErrNotFound is returned when a record with the given id or name does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrAdminExists is returned when creating an admin with a taken username.
	ErrAdminExists = errors.New("admin already exists")

	// ErrDBNil is returned when a relational store is built without a database.
	ErrDBNil = errors.New("database is nil")
)
