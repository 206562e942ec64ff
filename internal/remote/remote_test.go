package remote

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStart_IsLoading(t *testing.T) {
	r := Start[int]("article list")

	assert.True(t, r.Loading())
	assert.False(t, r.Failed())
	assert.Equal(t, "article list", r.Label())

	_, ok := r.Peek()
	assert.False(t, ok)
}

func TestPeek_SomeIffLoaded(t *testing.T) {
	r := Start[string]("tags")

	_, ok := r.Peek()
	assert.False(t, ok, "loading must peek to nothing")

	loaded := r.Succeed("go")
	v, ok := loaded.Peek()
	assert.True(t, ok)
	assert.Equal(t, "go", v)

	_, ok = loaded.Fail().Peek()
	assert.False(t, ok, "failed must peek to nothing")
}

func TestTransitions_PreserveLabel(t *testing.T) {
	r := Start[int]("comments")

	assert.Equal(t, "comments", r.Succeed(1).Label())
	assert.Equal(t, "comments", r.Fail().Label())
	assert.Equal(t, "comments", r.Succeed(1).Fail().Label())
}

func TestTransitions_ReturnNewValues(t *testing.T) {
	r := Start[int]("count")
	loaded := r.Succeed(5)

	// The original is untouched; callers replace their copy.
	assert.True(t, r.Loading())
	assert.False(t, loaded.Loading())
}

func TestRefetch_DiscardsPreviousValue(t *testing.T) {
	loaded := Start[int]("feed").Succeed(5)

	refetch := Start[int](loaded.Label())
	assert.True(t, refetch.Loading())
	_, ok := refetch.Peek()
	assert.False(t, ok)
}
