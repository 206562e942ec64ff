package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/dmy/realworld-tui/internal/api"
	"github.com/dmy/realworld-tui/internal/paginate"
	"github.com/dmy/realworld-tui/internal/session"
	"github.com/dmy/realworld-tui/models"
)

// pageMsg envelopes an asynchronous result for the page instance identified
// by id. The root model drops envelopes whose id no longer matches the
// current page, so a response started on one screen can never mutate the
// screen the user navigated to meanwhile.
type pageMsg struct {
	id  uuid.UUID
	msg tea.Msg
}

// sessionChangedMsg reports that another running instance changed the
// persisted session.
type sessionChangedMsg struct {
	session session.Session
}

type zoneMsg struct {
	loc *time.Location
}

type clearStatusMsg struct{}

type feedLoadedMsg struct {
	feed paginate.List[models.Article]
	errs api.Errors
}

type tagsLoadedMsg struct {
	tags []string
	errs api.Errors
}

type favoriteDoneMsg struct {
	article models.Article
	errs    api.Errors
}

type articleLoadedMsg struct {
	article models.Article
	errs    api.Errors
}

type commentsLoadedMsg struct {
	comments []models.Comment
	errs     api.Errors
}

type commentPostedMsg struct {
	comment models.Comment
	errs    api.Errors
}

type commentDeletedMsg struct {
	id   int64
	errs api.Errors
}

type articleDeletedMsg struct {
	errs api.Errors
}

type articleSavedMsg struct {
	article models.Article
	errs    api.Errors
}

type authorLoadedMsg struct {
	author models.Author
	errs   api.Errors
}

type followDoneMsg struct {
	author models.Author
	errs   api.Errors
}

type authedMsg struct {
	viewer api.Viewer
	errs   api.Errors
}

type settingsLoadedMsg struct {
	viewer api.Viewer
	errs   api.Errors
}
