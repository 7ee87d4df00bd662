package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/restaurant-order-hub/internal/model"
)

// OpenSession seats a party at a table.  The table must exist and be
// enabled, and the (table, event) pair must not already have an open
// session.  The table's use counter is incremented and baked into the
// human-readable display id, "<tableLabel>-<tableUseSeq>".
func (s *Store) OpenSession(tableID string, headcount int, eventID string) (model.Session, error) {
	if headcount <= 0 {
		return model.Session{}, ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tables[tableID]
	if !ok {
		return model.Session{}, ErrTableNotFound
	}
	if !t.Enabled {
		return model.Session{}, ErrTableDisabled
	}
	if eventID == "" {
		eventID = s.defaultEventIDLocked()
	}
	if _, exists := s.findOpenSessionLocked(tableID, eventID); exists {
		return model.Session{}, ErrSessionConflict
	}
	s.tableUseCounts[tableID]++
	seq := s.tableUseCounts[tableID]
	sess := &model.Session{
		ID:          uuid.NewString(),
		TableID:     tableID,
		EventID:     eventID,
		Headcount:   headcount,
		StartedAt:   time.Now(),
		Status:      model.SessionOpen,
		TableUseSeq: seq,
		DisplayID:   fmt.Sprintf("%s-%d", t.Label, seq),
	}
	s.sessions[sess.ID] = sess
	s.sessionIDs = append(s.sessionIDs, sess.ID)
	return cloneSession(sess), nil
}

// FindOpenSession returns the single open session for a table,
// optionally scoped to an event.
func (s *Store) FindOpenSession(tableID, eventID string) (model.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.findOpenSessionLocked(tableID, eventID)
	if !ok {
		return model.Session{}, false
	}
	return cloneSession(sess), true
}

func (s *Store) findOpenSessionLocked(tableID, eventID string) (*model.Session, bool) {
	for _, id := range s.sessionIDs {
		sess := s.sessions[id]
		if sess.TableID != tableID || sess.Status != model.SessionOpen {
			continue
		}
		if eventID != "" && sess.EventID != eventID {
			continue
		}
		return sess, true
	}
	return nil, false
}

// ListSessions returns sessions in creation order, optionally filtered
// by event.
func (s *Store) ListSessions(eventID string) []model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Session, 0, len(s.sessionIDs))
	for _, id := range s.sessionIDs {
		sess := s.sessions[id]
		if eventID != "" && sess.EventID != eventID {
			continue
		}
		out = append(out, cloneSession(sess))
	}
	return out
}

// SessionPatch carries the updatable session attributes; nil fields
// are left untouched.  Setting Status to closed records the close
// timestamp; reopening clears it.
type SessionPatch struct {
	Headcount *int    `json:"headcount"`
	Status    *string `json:"status"`
}

// UpdateSession merges a partial patch into a session.  It exists
// mainly for the close transition, which the payment engine also
// performs automatically once a session is fully settled.
func (s *Store) UpdateSession(id string, patch SessionPatch) (model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return model.Session{}, ErrNotFound
	}
	if patch.Headcount != nil {
		if *patch.Headcount <= 0 {
			return model.Session{}, ErrInvalidInput
		}
		sess.Headcount = *patch.Headcount
	}
	if patch.Status != nil {
		switch *patch.Status {
		case model.SessionOpen:
			sess.Status = model.SessionOpen
			sess.ClosedAt = nil
		case model.SessionClosed:
			sess.Status = model.SessionClosed
			now := time.Now()
			sess.ClosedAt = &now
		default:
			return model.Session{}, ErrInvalidInput
		}
	}
	return cloneSession(sess), nil
}
