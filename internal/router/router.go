// Package router maps between path-like routing tokens and page
// identifiers, and owns the in-app navigation history.
package router

import "strings"

// Kind identifies a page.
type Kind int

const (
	KindHome Kind = iota
	KindLogin
	KindLogout
	KindRegister
	KindSettings
	KindNewArticle
	KindEditArticle
	KindArticle
	KindProfile
)

// Route is a parsed routing token: a page kind plus its parameter, if any.
type Route struct {
	Kind     Kind
	Slug     string // article and editor targets
	Username string // profile target
}

// Home is the route of the feed page.
func Home() Route { return Route{Kind: KindHome} }

// Login is the route of the sign-in page.
func Login() Route { return Route{Kind: KindLogin} }

// Logout is the transient route that clears the session.
func Logout() Route { return Route{Kind: KindLogout} }

// Register is the route of the sign-up page.
func Register() Route { return Route{Kind: KindRegister} }

// Settings is the route of the settings page.
func Settings() Route { return Route{Kind: KindSettings} }

// NewArticle is the route of the editor with an empty draft.
func NewArticle() Route { return Route{Kind: KindNewArticle} }

// EditArticle is the route of the editor prefilled with slug's article.
func EditArticle(slug string) Route { return Route{Kind: KindEditArticle, Slug: slug} }

// Article is the route of a single article view.
func Article(slug string) Route { return Route{Kind: KindArticle, Slug: slug} }

// Profile is the route of an author's profile.
func Profile(username string) Route { return Route{Kind: KindProfile, Username: username} }

// Parse maps a path token to its Route. The second return value is false
// for unknown paths.
func Parse(path string) (Route, bool) {
	path = strings.Trim(path, "/")

	switch path {
	case "":
		return Home(), true
	case "login":
		return Login(), true
	case "logout":
		return Logout(), true
	case "register":
		return Register(), true
	case "settings":
		return Settings(), true
	case "editor":
		return NewArticle(), true
	}

	parts := strings.SplitN(path, "/", 2)
	if len(parts) != 2 || parts[1] == "" {
		return Route{}, false
	}

	switch parts[0] {
	case "editor":
		return EditArticle(parts[1]), true
	case "article":
		return Article(parts[1]), true
	case "profile":
		return Profile(parts[1]), true
	}

	return Route{}, false
}

// Path returns the canonical path token of r.
func (r Route) Path() string {
	switch r.Kind {
	case KindHome:
		return "/"
	case KindLogin:
		return "/login"
	case KindLogout:
		return "/logout"
	case KindRegister:
		return "/register"
	case KindSettings:
		return "/settings"
	case KindNewArticle:
		return "/editor"
	case KindEditArticle:
		return "/editor/" + r.Slug
	case KindArticle:
		return "/article/" + r.Slug
	case KindProfile:
		return "/profile/" + r.Username
	}
	return "/"
}
