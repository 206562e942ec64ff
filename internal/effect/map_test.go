package effect

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmy/realworld-tui/internal/api"
	"github.com/dmy/realworld-tui/models"
)

type pageMsg struct{ inner tea.Msg }

type tagsMsg struct{ tags []string }

type articleMsg struct{ article models.Article }

func wrap(msg tea.Msg) tea.Msg { return pageMsg{inner: msg} }

func TestMap_ComposesTransformAfterContinuation(t *testing.T) {
	eff := FetchTags{
		Request: api.Tags(),
		Done:    func(tags []string, _ api.Errors) tea.Msg { return tagsMsg{tags: tags} },
	}

	mapped, ok := Map(eff, wrap).(FetchTags)
	require.True(t, ok)

	got := mapped.Done([]string{"go"}, nil)
	assert.Equal(t, pageMsg{inner: tagsMsg{tags: []string{"go"}}}, got)
}

func TestMap_PreservesRequestDescriptor(t *testing.T) {
	eff := FetchTags{Request: api.Tags(), Done: func([]string, api.Errors) tea.Msg { return nil }}

	mapped := Map(eff, wrap).(FetchTags)

	assert.Equal(t, eff.Request.Method, mapped.Request.Method)
	assert.Equal(t, eff.Request.Path, mapped.Request.Path)
}

func TestMap_RecursesIntoBatch(t *testing.T) {
	eff := Batch{
		None{},
		FetchTags{Request: api.Tags(), Done: func(tags []string, _ api.Errors) tea.Msg { return tagsMsg{tags} }},
		Batch{
			UpsertArticle{Done: func(a models.Article, _ api.Errors) tea.Msg { return articleMsg{a} }},
		},
	}

	mapped := Map(eff, wrap).(Batch)
	require.Len(t, mapped, 3)

	tagsEff := mapped[1].(FetchTags)
	assert.Equal(t, pageMsg{inner: tagsMsg{tags: []string{"x"}}}, tagsEff.Done([]string{"x"}, nil))

	inner := mapped[2].(Batch)[0].(UpsertArticle)
	got := inner.Done(models.Article{Slug: "s"}, nil)
	assert.Equal(t, pageMsg{inner: articleMsg{article: models.Article{Slug: "s"}}}, got)
}

func TestMap_TimeZoneContinuation(t *testing.T) {
	type zoneMsg struct{ loc *time.Location }

	eff := GetTimeZone{Done: func(loc *time.Location) tea.Msg { return zoneMsg{loc} }}
	mapped := Map(eff, wrap).(GetTimeZone)

	got := mapped.Done(time.UTC)
	assert.Equal(t, pageMsg{inner: zoneMsg{loc: time.UTC}}, got)
}

func TestMap_PassesThroughContinuationFreeVariants(t *testing.T) {
	assert.Equal(t, None{}, Map(None{}, wrap))
	assert.Equal(t, ScrollToTop{}, Map(ScrollToTop{}, wrap))
	assert.Nil(t, Map(nil, wrap))
}
