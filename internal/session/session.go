// Package session keeps per-visitor UI state: the message area and the
// signup form draft.
package session

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Shivanand-hulikatti/activity-signup/internal/notice"
)

// CookieName is the visitor session cookie.
const CookieName = "activity_session"

// Form is the signup form as the visitor last left it.
type Form struct {
	Email    string
	Activity string
}

// Session is one visitor's state.
type Session struct {
	ID     string
	Notice *notice.Area

	mu       sync.Mutex
	form     Form
	lastSeen time.Time
}

// Form returns the current draft.
func (s *Session) Form() Form {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

// KeepForm stores the submitted values so the form renders them again.
func (s *Session) KeepForm(f Form) {
	s.mu.Lock()
	s.form = f
	s.mu.Unlock()
}

// ResetForm clears the draft.
func (s *Session) ResetForm() {
	s.mu.Lock()
	s.form = Form{}
	s.mu.Unlock()
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

// Store holds sessions in memory.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
	newArea  func() *notice.Area
}

// NewStore constructs a Store. Sessions idle longer than ttl are dropped;
// a zero ttl keeps them forever. newArea builds each session's message area
// and defaults to notice.New.
func NewStore(ttl time.Duration, newArea func() *notice.Area) *Store {
	if newArea == nil {
		newArea = func() *notice.Area { return notice.New() }
	}
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
		newArea:  newArea,
	}
}

// Ensure returns the request's session, creating one and setting the cookie
// when the request has none or it is unknown.
func (st *Store) Ensure(w http.ResponseWriter, r *http.Request) *Session {
	now := st.now()

	if id, ok := readCookie(r); ok {
		st.mu.Lock()
		sess, found := st.sessions[id]
		st.mu.Unlock()
		if found {
			sess.touch(now)
			return sess
		}
	}

	sess := &Session{
		ID:       uuid.NewString(),
		Notice:   st.newArea(),
		lastSeen: now,
	}

	st.mu.Lock()
	st.pruneLocked(now)
	st.sessions[sess.ID] = sess
	st.mu.Unlock()

	writeCookie(w, r, sess.ID)
	return sess
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

func (st *Store) pruneLocked(now time.Time) {
	if st.ttl <= 0 {
		return
	}
	for id, sess := range st.sessions {
		if sess.idleSince(now) > st.ttl {
			delete(st.sessions, id)
		}
	}
}

func readCookie(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie == nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	if value == "" {
		return "", false
	}
	return value, true
}

func writeCookie(w http.ResponseWriter, r *http.Request, id string) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   r != nil && r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}
