// Package auth authenticates admins of the website.
//
// Admins log in with a username and password. Passwords are stored as
// Argon2id hashes and compared in constant time. Every failed login yields
// ErrInvalidCredentials, callers can not tell an unknown username from a
// wrong password.
//
// # Provisioning
//
// Accounts are created from the start up seed, the "admin create" command
// or Service.CreateAdmin. There is no registration endpoint.
package auth
