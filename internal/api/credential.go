package api

import (
	"encoding/json"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmy/realworld-tui/models"
)

// Credential is an authentication token bound to a username. The token is
// deliberately unexported and has no accessor: it leaves this package only
// as an Authorization header on an outgoing request or as a field of the
// persisted session record, both produced here.
type Credential struct {
	username string
	token    string
}

// Username returns the identity the credential is bound to.
func (c Credential) Username() string {
	return c.username
}

// String redacts the token so a credential can never leak into rendered
// output or log lines by accident.
func (c Credential) String() string {
	return "Credential(" + c.username + ")"
}

// Expired reports whether the underlying JWT carries an "exp" claim in the
// past. The signature is not verified; the server remains the authority and
// this check only avoids starting up with a token the server is certain to
// reject. Tokens without an exp claim, or that cannot be parsed as JWTs,
// are treated as not expired.
func (c Credential) Expired(now time.Time) bool {
	token, _, err := jwt.NewParser().ParseUnverified(c.token, jwt.MapClaims{})
	if err != nil {
		return false
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}

// credentialRecord is the persisted shape of a Credential. It exists only
// for MarshalJSON/UnmarshalJSON; nothing else may see the raw token.
type credentialRecord struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}

// MarshalJSON implements json.Marshaler for session persistence. This is
// the single sanctioned serialization of the token.
func (c Credential) MarshalJSON() ([]byte, error) {
	return json.Marshal(credentialRecord{Username: c.username, Token: c.token})
}

// UnmarshalJSON implements json.Unmarshaler for session restore.
func (c *Credential) UnmarshalJSON(b []byte) error {
	var rec credentialRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return err
	}
	c.username = rec.Username
	c.token = rec.Token
	return nil
}

// Viewer couples the viewer's account record with the credential the server
// issued for it. It is produced only by decoding the server's user envelope
// on login, registration, and settings-update responses.
type Viewer struct {
	User models.User
	Cred Credential
}

// AuthHeader returns the request headers carrying cred, or no headers for a
// nil cred. This is the only place a token is turned into a header value.
func AuthHeader(cred *Credential) []Header {
	if cred == nil {
		return nil
	}
	return []Header{{Key: "Authorization", Value: "Token " + cred.token}}
}
