package models

// User is the viewer's own account record as editable on the settings page.
// The authentication token that accompanies it on the wire is deliberately
// not part of this type; it lives inside api.Credential and never leaves
// the transport boundary.
type User struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
}

// Registration is the payload of a sign-up request.
type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login is the payload of a sign-in request.
type Login struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
