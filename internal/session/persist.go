package session

import (
	"context"
	"fmt"

	"github.com/dmy/realworld-tui/internal/store"
)

// Restore loads the persisted session from st. Absent or undecodable state
// restores to Guest.
func Restore(st *store.Store) Session {
	raw, ok := st.Read(store.KeySession)
	if !ok {
		return Guest()
	}
	return Decode(raw)
}

// Persist mirrors s to st: an authenticated session is written as a JSON
// record, a guest session erases the record.
func Persist(st *store.Store, s Session) error {
	raw, err := Encode(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if raw == nil {
		return st.Erase(store.KeySession)
	}
	return st.Write(store.KeySession, raw)
}

// Subscribe watches st for session changes (both this instance's writes and
// other instances sharing the state directory) and delivers the decoded
// Session values until ctx is cancelled. An undecodable stored value is
// delivered as Guest.
func Subscribe(ctx context.Context, st *store.Store) (<-chan Session, error) {
	changes, err := st.Watch(ctx, store.KeySession)
	if err != nil {
		return nil, fmt.Errorf("watch session: %w", err)
	}

	sessions := make(chan Session, 1)
	go func() {
		defer close(sessions)
		for change := range changes {
			select {
			case sessions <- Decode(change.Value):
			case <-ctx.Done():
				return
			}
		}
	}()

	return sessions, nil
}
