// Package auth provides authentication middleware for the web application.
//
// Attach resolves the session cookie once per request and stores the admin
// projection in the request locals. RequireAdmin rejects requests without
// an attached admin with 401 and passes the rest through unmodified.
//
// Usage:
//
//	app.Use(authmiddleware.Attach(sessions))
//	api.Post("/services", authmiddleware.RequireAdmin, handler)
package auth
