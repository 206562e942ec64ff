package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmy/realworld-tui/internal/logger"
)

func TestClient_SendSuccessDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tags", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"tags":["go"]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, logger.Nop())

	v, errs := c.Send(context.Background(), Tags())
	require.Nil(t, errs)
	assert.Equal(t, []string{"go"}, v)
}

func TestClient_SendAttachesAuthAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Token abc", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"article":{"slug":"new"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, logger.Nop())
	cred := Credential{username: "aldous", token: "abc"}

	_, errs := c.Send(context.Background(), CreateArticle(testDraft(), cred))
	assert.Nil(t, errs)
}

func TestClient_StructuredErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"errors":{"email":["has already been taken"]}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, logger.Nop())

	_, errs := c.Send(context.Background(), Tags())
	require.NotNil(t, errs)
	assert.Equal(t, Errors{"email has already been taken"}, errs)
}

func TestClient_StatusWithoutDecodableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, logger.Nop())

	_, errs := c.Send(context.Background(), Tags())
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "Internal Server Error")
}

func TestClient_BodyDecodeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, logger.Nop())

	_, errs := c.Send(context.Background(), Tags())
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "unexpected response from server")
}

func TestClient_NetworkUnreachable(t *testing.T) {
	// Reserved TEST-NET-1 address, nothing listens there.
	c := NewClient("http://192.0.2.1:9", 200*time.Millisecond, logger.Nop())

	_, errs := c.Send(context.Background(), Tags())
	require.Len(t, errs, 1)
}

func TestClient_NilDecodeIgnoresBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`irrelevant`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, logger.Nop())
	cred := Credential{token: "abc"}

	v, errs := c.Send(context.Background(), DeleteArticle("slug", cred))
	assert.Nil(t, errs)
	assert.Nil(t, v)
}
