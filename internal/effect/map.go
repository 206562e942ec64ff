package effect

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmy/realworld-tui/internal/api"
	"github.com/dmy/realworld-tui/internal/paginate"
	"github.com/dmy/realworld-tui/models"
)

// Map rewrites every continuation inside eff (recursively, including
// members of a Batch) by composing transform after it, leaving carried
// request descriptors untouched. Pages produce effects whose continuations
// return page-local messages; the top-level controller uses Map to lift
// them into envelope messages without re-deriving the effects.
func Map(eff Effect, transform func(tea.Msg) tea.Msg) Effect {
	switch e := eff.(type) {
	case nil:
		return nil
	case Batch:
		mapped := make(Batch, len(e))
		for i, member := range e {
			mapped[i] = Map(member, transform)
		}
		return mapped
	case GetTimeZone:
		return GetTimeZone{Done: func(loc *time.Location) tea.Msg {
			return transform(e.Done(loc))
		}}
	case UpsertUser:
		return UpsertUser{Request: e.Request, Done: func(v api.Viewer, errs api.Errors) tea.Msg {
			return transform(e.Done(v, errs))
		}}
	case FetchSettings:
		return FetchSettings{Request: e.Request, Done: func(v api.Viewer, errs api.Errors) tea.Msg {
			return transform(e.Done(v, errs))
		}}
	case FetchTags:
		return FetchTags{Request: e.Request, Done: func(tags []string, errs api.Errors) tea.Msg {
			return transform(e.Done(tags, errs))
		}}
	case UpsertArticle:
		return UpsertArticle{Request: e.Request, Done: func(a models.Article, errs api.Errors) tea.Msg {
			return transform(e.Done(a, errs))
		}}
	case FetchArticle:
		return FetchArticle{Request: e.Request, Done: func(a models.Article, errs api.Errors) tea.Msg {
			return transform(e.Done(a, errs))
		}}
	case FavorArticle:
		return FavorArticle{Request: e.Request, Done: func(a models.Article, errs api.Errors) tea.Msg {
			return transform(e.Done(a, errs))
		}}
	case FetchFeed:
		return FetchFeed{Request: e.Request, Done: func(l paginate.List[models.Article], errs api.Errors) tea.Msg {
			return transform(e.Done(l, errs))
		}}
	case FetchComments:
		return FetchComments{Request: e.Request, Done: func(cs []models.Comment, errs api.Errors) tea.Msg {
			return transform(e.Done(cs, errs))
		}}
	case PostComment:
		return PostComment{Request: e.Request, Done: func(c models.Comment, errs api.Errors) tea.Msg {
			return transform(e.Done(c, errs))
		}}
	case FetchAuthor:
		return FetchAuthor{Request: e.Request, Done: func(a models.Author, errs api.Errors) tea.Msg {
			return transform(e.Done(a, errs))
		}}
	case ChangeFollow:
		return ChangeFollow{Request: e.Request, Done: func(a models.Author, errs api.Errors) tea.Msg {
			return transform(e.Done(a, errs))
		}}
	case Delete:
		return Delete{Request: e.Request, Done: func(errs api.Errors) tea.Msg {
			return transform(e.Done(errs))
		}}
	default:
		// Variants without continuations pass through unchanged.
		return eff
	}
}
