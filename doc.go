// Package main is the entry point of the Xcelliti website backend.
// It serves a JSON API for the marketing site content using the Fiber
// framework, keeps content in memory or in a relational database through
// gorm, and guards every write behind an admin session cookie.
package main
