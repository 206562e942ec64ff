// Package effect defines the closed set of side-effect descriptions a page
// may request. An Effect is passive data: constructing one does nothing.
// The dispatch package owns the sole interpreter that turns an Effect into
// navigation, storage, clipboard, or network work.
//
// Every result-producing variant carries exactly one continuation turning
// the outcome into a tea.Msg, so the interpreter always knows how to route
// a result back into the message loop. Variants whose request depends on
// who is signed in carry a request builder from session.Session instead of
// a ready descriptor; the builder is resolved at execution time, not at
// construction time.
package effect

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmy/realworld-tui/internal/api"
	"github.com/dmy/realworld-tui/internal/paginate"
	"github.com/dmy/realworld-tui/internal/router"
	"github.com/dmy/realworld-tui/internal/session"
	"github.com/dmy/realworld-tui/models"
)

// Effect is the sealed union of side-effect descriptions. A nil Effect is
// equivalent to None.
type Effect interface {
	isEffect()
}

// None requests nothing.
type None struct{}

// Batch requests every member effect. Members are initiated in order
// against the progressively updated model, but their asynchronous
// completions may interleave arbitrarily.
type Batch []Effect

// PushRoute requests appending a route to the navigation history.
type PushRoute struct {
	Route router.Route
}

// ReplaceRoute requests swapping the current history entry for a route.
type ReplaceRoute struct {
	Route router.Route
}

// Back requests popping the navigation history. At the bottom of the stack
// it is a no-op.
type Back struct{}

// LoadURL requests a full hand-off of an external URL to the system
// browser, abandoning in-app state for that interaction.
type LoadURL struct {
	URL string
}

// GetTimeZone requests the local time zone, delivered via Done.
type GetTimeZone struct {
	Done func(*time.Location) tea.Msg
}

// ScrollToTop requests a best-effort viewport reset. Failure is swallowed.
type ScrollToTop struct{}

// ReplaceSession requests the session-replacement bundle: store the new
// session in the model, navigate home, and persist it.
type ReplaceSession struct {
	Session session.Session
}

// Log requests recording a diagnostic line for an unexpected state. The
// external diagnostics sink is a stub; the line goes to the local log.
type Log struct {
	Message string
}

// CopyToClipboard requests placing text on the system clipboard.
type CopyToClipboard struct {
	Text string
}

// UpsertUser requests a login, registration, or settings-save call.
type UpsertUser struct {
	Request api.Descriptor
	Done    func(api.Viewer, api.Errors) tea.Msg
}

// FetchSettings requests the viewer's own account record. Requires
// authentication: dispatched as a guest it never reaches the network and
// redirects to the login route instead.
type FetchSettings struct {
	Request func(session.Session) api.Descriptor
	Done    func(api.Viewer, api.Errors) tea.Msg
}

// FetchTags requests the tag cloud.
type FetchTags struct {
	Request api.Descriptor
	Done    func([]string, api.Errors) tea.Msg
}

// UpsertArticle requests an article create or update call.
type UpsertArticle struct {
	Request api.Descriptor
	Done    func(models.Article, api.Errors) tea.Msg
}

// FetchArticle requests a single article, resolved against the current
// session so favorited/following flags reflect the viewer.
type FetchArticle struct {
	Request func(session.Session) api.Descriptor
	Done    func(models.Article, api.Errors) tea.Msg
}

// FavorArticle requests a favorite or unfavorite call.
type FavorArticle struct {
	Request api.Descriptor
	Done    func(models.Article, api.Errors) tea.Msg
}

// FetchFeed requests one page of an article listing, resolved against the
// current session.
type FetchFeed struct {
	Request func(session.Session) api.Descriptor
	Done    func(paginate.List[models.Article], api.Errors) tea.Msg
}

// FetchComments requests an article's comments, resolved against the
// current session.
type FetchComments struct {
	Request func(session.Session) api.Descriptor
	Done    func([]models.Comment, api.Errors) tea.Msg
}

// PostComment requests adding a comment.
type PostComment struct {
	Request api.Descriptor
	Done    func(models.Comment, api.Errors) tea.Msg
}

// FetchAuthor requests a profile, resolved against the current session.
type FetchAuthor struct {
	Request func(session.Session) api.Descriptor
	Done    func(models.Author, api.Errors) tea.Msg
}

// ChangeFollow requests a follow or unfollow call.
type ChangeFollow struct {
	Request api.Descriptor
	Done    func(models.Author, api.Errors) tea.Msg
}

// Delete requests a deletion call (article or comment). Only the error
// outcome is delivered.
type Delete struct {
	Request api.Descriptor
	Done    func(api.Errors) tea.Msg
}

func (None) isEffect()            {}
func (Batch) isEffect()           {}
func (PushRoute) isEffect()       {}
func (ReplaceRoute) isEffect()    {}
func (Back) isEffect()            {}
func (LoadURL) isEffect()         {}
func (GetTimeZone) isEffect()     {}
func (ScrollToTop) isEffect()     {}
func (ReplaceSession) isEffect()  {}
func (Log) isEffect()             {}
func (CopyToClipboard) isEffect() {}
func (UpsertUser) isEffect()      {}
func (FetchSettings) isEffect()   {}
func (FetchTags) isEffect()       {}
func (UpsertArticle) isEffect()   {}
func (FetchArticle) isEffect()    {}
func (FavorArticle) isEffect()    {}
func (FetchFeed) isEffect()       {}
func (FetchComments) isEffect()   {}
func (PostComment) isEffect()     {}
func (FetchAuthor) isEffect()     {}
func (ChangeFollow) isEffect()    {}
func (Delete) isEffect()          {}
