package models

// Author is a Conduit profile. Following is relative to the viewer the
// request was made as.
type Author struct {
	Username  string `json:"username"`
	Bio       string `json:"bio"`
	Image     string `json:"image"`
	Following bool   `json:"following"`
}
