package api

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmy/realworld-tui/internal/paginate"
	"github.com/dmy/realworld-tui/models"
)

// Wire envelopes of the Conduit API. Every payload is wrapped in a
// single-key object; the envelope types stay private to this package.
type (
	userEnvelope struct {
		User struct {
			Email    string `json:"email"`
			Username string `json:"username"`
			Bio      string `json:"bio"`
			Image    string `json:"image"`
			Token    string `json:"token"`
		} `json:"user"`
	}

	articleEnvelope struct {
		Article models.Article `json:"article"`
	}

	articleListEnvelope struct {
		Articles      []models.Article `json:"articles"`
		ArticlesCount int              `json:"articlesCount"`
	}

	commentEnvelope struct {
		Comment models.Comment `json:"comment"`
	}

	commentListEnvelope struct {
		Comments []models.Comment `json:"comments"`
	}

	profileEnvelope struct {
		Profile models.Author `json:"profile"`
	}

	tagListEnvelope struct {
		Tags []string `json:"tags"`
	}
)

// UserUpdate is the body of a settings-save request. Password carries
// omitempty on purpose: an empty password field is omitted from the request
// entirely rather than sent as an empty string, which the server would
// treat as a password change.
type UserUpdate struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
	Password string `json:"password,omitempty"`
}

// ArticleFilter narrows a global article listing.
type ArticleFilter struct {
	Tag       string
	Author    string
	Favorited string
}

func decodeViewer(body []byte) (any, error) {
	var env userEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, err
	}
	return Viewer{
		User: models.User{
			Email:    env.User.Email,
			Username: env.User.Username,
			Bio:      env.User.Bio,
			Image:    env.User.Image,
		},
		Cred: Credential{username: env.User.Username, token: env.User.Token},
	}, nil
}

func decodeArticle(body []byte) (any, error) {
	var env articleEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, err
	}
	return env.Article, nil
}

// decodeArticleList converts the server's item count into a page count at
// decode time, once.
func decodeArticleList(pageSize int) func([]byte) (any, error) {
	return func(body []byte) (any, error) {
		var env articleListEnvelope
		if err := json.Unmarshal(body, &env); err != nil {
			return nil, err
		}
		return paginate.FromCount(env.Articles, env.ArticlesCount, pageSize), nil
	}
}

func decodeComment(body []byte) (any, error) {
	var env commentEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, err
	}
	return env.Comment, nil
}

func decodeComments(body []byte) (any, error) {
	var env commentListEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, err
	}
	return env.Comments, nil
}

func decodeProfile(body []byte) (any, error) {
	var env profileEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, err
	}
	return env.Profile, nil
}

func decodeTags(body []byte) (any, error) {
	var env tagListEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, err
	}
	return env.Tags, nil
}

// Login describes POST /users/login. Decodes to [Viewer].
func Login(body models.Login) Descriptor {
	return Descriptor{
		Method: http.MethodPost,
		Path:   "/users/login",
		Body:   map[string]models.Login{"user": body},
		Decode: decodeViewer,
	}
}

// Register describes POST /users. Decodes to [Viewer].
func Register(body models.Registration) Descriptor {
	return Descriptor{
		Method: http.MethodPost,
		Path:   "/users",
		Body:   map[string]models.Registration{"user": body},
		Decode: decodeViewer,
	}
}

// FetchUser describes GET /user, the settings prefill. Decodes to [Viewer].
func FetchUser(cred Credential) Descriptor {
	return Descriptor{
		Method:  http.MethodGet,
		Path:    "/user",
		Headers: AuthHeader(&cred),
		Decode:  decodeViewer,
	}
}

// UpdateUser describes PUT /user, the settings save. Decodes to [Viewer]
// (the server may rotate the token on email or password change).
func UpdateUser(body UserUpdate, cred Credential) Descriptor {
	return Descriptor{
		Method:  http.MethodPut,
		Path:    "/user",
		Headers: AuthHeader(&cred),
		Body:    map[string]UserUpdate{"user": body},
		Decode:  decodeViewer,
	}
}

// Tags describes GET /tags. Decodes to []string.
func Tags() Descriptor {
	return Descriptor{
		Method: http.MethodGet,
		Path:   "/tags",
		Decode: decodeTags,
	}
}

// ListArticles describes GET /articles with optional filters. Decodes to
// paginate.List[models.Article]. cred may be nil; when present the server
// reports favorited/following flags relative to the viewer.
func ListArticles(filter ArticleFilter, page, pageSize int, cred *Credential) Descriptor {
	query := paginate.QueryParams(page, pageSize)
	if filter.Tag != "" {
		query.Set("tag", filter.Tag)
	}
	if filter.Author != "" {
		query.Set("author", filter.Author)
	}
	if filter.Favorited != "" {
		query.Set("favorited", filter.Favorited)
	}

	return Descriptor{
		Method:  http.MethodGet,
		Path:    "/articles",
		Query:   query,
		Headers: AuthHeader(cred),
		Decode:  decodeArticleList(pageSize),
	}
}

// Feed describes GET /articles/feed, the personal feed. Decodes to
// paginate.List[models.Article].
func Feed(page, pageSize int, cred Credential) Descriptor {
	return Descriptor{
		Method:  http.MethodGet,
		Path:    "/articles/feed",
		Query:   paginate.QueryParams(page, pageSize),
		Headers: AuthHeader(&cred),
		Decode:  decodeArticleList(pageSize),
	}
}

// GetArticle describes GET /articles/:slug. Decodes to models.Article.
func GetArticle(slug string, cred *Credential) Descriptor {
	return Descriptor{
		Method:  http.MethodGet,
		Path:    "/articles/" + url.PathEscape(slug),
		Headers: AuthHeader(cred),
		Decode:  decodeArticle,
	}
}

// CreateArticle describes POST /articles. Decodes to models.Article.
func CreateArticle(draft models.ArticleDraft, cred Credential) Descriptor {
	return Descriptor{
		Method:  http.MethodPost,
		Path:    "/articles",
		Headers: AuthHeader(&cred),
		Body:    map[string]models.ArticleDraft{"article": draft},
		Decode:  decodeArticle,
	}
}

// UpdateArticle describes PUT /articles/:slug. Decodes to models.Article.
func UpdateArticle(slug string, draft models.ArticleDraft, cred Credential) Descriptor {
	return Descriptor{
		Method:  http.MethodPut,
		Path:    "/articles/" + url.PathEscape(slug),
		Headers: AuthHeader(&cred),
		Body:    map[string]models.ArticleDraft{"article": draft},
		Decode:  decodeArticle,
	}
}

// DeleteArticle describes DELETE /articles/:slug. No response body.
func DeleteArticle(slug string, cred Credential) Descriptor {
	return Descriptor{
		Method:  http.MethodDelete,
		Path:    "/articles/" + url.PathEscape(slug),
		Headers: AuthHeader(&cred),
	}
}

// Favorite describes POST /articles/:slug/favorite. Decodes to
// models.Article.
func Favorite(slug string, cred Credential) Descriptor {
	return Descriptor{
		Method:  http.MethodPost,
		Path:    "/articles/" + url.PathEscape(slug) + "/favorite",
		Headers: AuthHeader(&cred),
		Decode:  decodeArticle,
	}
}

// Unfavorite describes DELETE /articles/:slug/favorite. Decodes to
// models.Article.
func Unfavorite(slug string, cred Credential) Descriptor {
	return Descriptor{
		Method:  http.MethodDelete,
		Path:    "/articles/" + url.PathEscape(slug) + "/favorite",
		Headers: AuthHeader(&cred),
		Decode:  decodeArticle,
	}
}

// Comments describes GET /articles/:slug/comments. Decodes to
// []models.Comment.
func Comments(slug string, cred *Credential) Descriptor {
	return Descriptor{
		Method:  http.MethodGet,
		Path:    "/articles/" + url.PathEscape(slug) + "/comments",
		Headers: AuthHeader(cred),
		Decode:  decodeComments,
	}
}

// PostComment describes POST /articles/:slug/comments. Decodes to
// models.Comment.
func PostComment(slug, body string, cred Credential) Descriptor {
	type comment struct {
		Body string `json:"body"`
	}
	return Descriptor{
		Method:  http.MethodPost,
		Path:    "/articles/" + url.PathEscape(slug) + "/comments",
		Headers: AuthHeader(&cred),
		Body:    map[string]comment{"comment": {Body: body}},
		Decode:  decodeComment,
	}
}

// DeleteComment describes DELETE /articles/:slug/comments/:id. No response
// body.
func DeleteComment(slug string, id int64, cred Credential) Descriptor {
	return Descriptor{
		Method:  http.MethodDelete,
		Path:    "/articles/" + url.PathEscape(slug) + "/comments/" + strconv.FormatInt(id, 10),
		Headers: AuthHeader(&cred),
	}
}

// Profile describes GET /profiles/:username. Decodes to models.Author.
func Profile(username string, cred *Credential) Descriptor {
	return Descriptor{
		Method:  http.MethodGet,
		Path:    "/profiles/" + url.PathEscape(username),
		Headers: AuthHeader(cred),
		Decode:  decodeProfile,
	}
}

// Follow describes POST /profiles/:username/follow. Decodes to
// models.Author.
func Follow(username string, cred Credential) Descriptor {
	return Descriptor{
		Method:  http.MethodPost,
		Path:    "/profiles/" + url.PathEscape(username) + "/follow",
		Headers: AuthHeader(&cred),
		Decode:  decodeProfile,
	}
}

// Unfollow describes DELETE /profiles/:username/follow. Decodes to
// models.Author.
func Unfollow(username string, cred Credential) Descriptor {
	return Descriptor{
		Method:  http.MethodDelete,
		Path:    "/profiles/" + url.PathEscape(username) + "/follow",
		Headers: AuthHeader(&cred),
		Decode:  decodeProfile,
	}
}
