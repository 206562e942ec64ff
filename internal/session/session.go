// Package session holds the process-wide viewer state: either a guest or
// an authenticated viewer carrying an avatar and an api.Credential. The
// concrete representation is private; only the constructors and accessors
// here may build or take apart a Session.
package session

import (
	"encoding/json"
	"time"

	"github.com/dmy/realworld-tui/internal/api"
)

// Session is either Guest or Authenticated. The zero value is Guest.
type Session struct {
	viewer *viewerState
}

type viewerState struct {
	avatar string
	cred   api.Credential
}

// Guest returns the unauthenticated session.
func Guest() Session {
	return Session{}
}

// Authenticated returns a session for the given avatar and credential.
func Authenticated(avatar string, cred api.Credential) Session {
	return Session{viewer: &viewerState{avatar: avatar, cred: cred}}
}

// FromViewer builds an authenticated session from a decoded user envelope.
func FromViewer(v api.Viewer) Session {
	return Authenticated(v.User.Image, v.Cred)
}

// IsGuest reports whether nobody is signed in.
func (s Session) IsGuest() bool {
	return s.viewer == nil
}

// Credential returns the credential and true when authenticated.
func (s Session) Credential() (api.Credential, bool) {
	if s.viewer == nil {
		return api.Credential{}, false
	}
	return s.viewer.cred, true
}

// Cred returns a pointer to the credential, or nil for a guest. It exists
// for the endpoint builders whose authentication is optional.
func (s Session) Cred() *api.Credential {
	if s.viewer == nil {
		return nil
	}
	cred := s.viewer.cred
	return &cred
}

// Username returns the signed-in username and true when authenticated.
func (s Session) Username() (string, bool) {
	if s.viewer == nil {
		return "", false
	}
	return s.viewer.cred.Username(), true
}

// Avatar returns the viewer's avatar URL, or "" for a guest.
func (s Session) Avatar() string {
	if s.viewer == nil {
		return ""
	}
	return s.viewer.avatar
}

// record is the persisted JSON shape of an authenticated session.
type record struct {
	Avatar string         `json:"avatar"`
	Cred   api.Credential `json:"credential"`
}

// Encode serializes an authenticated session for the storage boundary.
// Encoding a guest yields nil; guests are represented by the absence of a
// stored record.
func Encode(s Session) ([]byte, error) {
	if s.viewer == nil {
		return nil, nil
	}
	return json.Marshal(record{Avatar: s.viewer.avatar, Cred: s.viewer.cred})
}

// Decode restores a session from raw stored bytes. Any failure (absent
// value, malformed JSON, missing username, expired token) restores to
// Guest; a parse problem is never surfaced to the caller.
func Decode(raw []byte) Session {
	return decodeAt(raw, time.Now())
}

func decodeAt(raw []byte, now time.Time) Session {
	if len(raw) == 0 {
		return Guest()
	}

	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return Guest()
	}
	if rec.Cred.Username() == "" {
		return Guest()
	}
	if rec.Cred.Expired(now) {
		return Guest()
	}
	return Authenticated(rec.Avatar, rec.Cred)
}
