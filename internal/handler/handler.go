// Package handler contains chi HTTP handlers that translate browser
// requests to and from the service layer.
package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Shivanand-hulikatti/activity-signup/internal/i18n"
	"github.com/Shivanand-hulikatti/activity-signup/internal/notice"
	"github.com/Shivanand-hulikatti/activity-signup/internal/service"
	"github.com/Shivanand-hulikatti/activity-signup/internal/session"
	"github.com/Shivanand-hulikatti/activity-signup/internal/view"
)

// ActivityHandler holds the HTTP handlers for the activities page.
type ActivityHandler struct {
	svc      *service.ActivityService
	sessions *session.Store
	render   *view.Renderer
	now      func() time.Time
}

// NewActivityHandler constructs an ActivityHandler.
func NewActivityHandler(svc *service.ActivityService, sessions *session.Store, render *view.Renderer) *ActivityHandler {
	return &ActivityHandler{svc: svc, sessions: sessions, render: render, now: time.Now}
}

// ─── Helper utilities ─────────────────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeHTML(w http.ResponseWriter, status int, render func(http.ResponseWriter) error) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if err := render(w); err != nil {
		log.Printf("render: %v", err)
	}
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ─── Handlers ─────────────────────────────────────────────────────────────────

// Index handles GET /
// Fetches the activities and renders them with the visitor's message area
// and form draft.
func (h *ActivityHandler) Index(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Ensure(w, r)
	locale := i18n.ResolveLanguage(r)

	page := h.svc.Page(r.Context(), locale)

	st := sess.Notice.State()
	form := sess.Form()
	doc := view.Document{
		Locale: documentLocale(locale),
		Page:   page,
		Form:   view.Form{Email: form.Email, Activity: form.Activity},
		Notice: view.NewNotice(st.Visible, st.Text, string(st.Kind), st.Remaining(h.now(), sess.Notice.Delay())),
	}
	writeHTML(w, http.StatusOK, func(w http.ResponseWriter) error {
		return h.render.Page(w, doc)
	})
}

// Signup handles POST /signup
// Submits the signup form and redirects back to the page.
func (h *ActivityHandler) Signup(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Ensure(w, r)
	locale := i18n.ResolveLanguage(r)

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	form := session.Form{
		Email:    r.PostForm.Get("email"),
		Activity: r.PostForm.Get("activity"),
	}

	outcome := h.svc.Signup(r.Context(), locale, form.Activity, form.Email)
	if outcome.OK {
		sess.ResetForm()
	} else {
		sess.KeepForm(form)
	}
	sess.Notice.Show(notice.KindFor(outcome.OK), outcome.Message)

	redirectHome(w, r)
}

// ConfirmUnregister handles GET /unregister
// Asks the visitor to confirm removing a participant.
func (h *ActivityHandler) ConfirmUnregister(w http.ResponseWriter, r *http.Request) {
	locale := i18n.ResolveLanguage(r)
	activity := r.URL.Query().Get("activity")
	participant := r.URL.Query().Get("participant")
	if activity == "" {
		redirectHome(w, r)
		return
	}

	doc := view.ConfirmDocument{
		Locale:      documentLocale(locale),
		Page:        view.Page{Labels: h.svc.Labels(locale)},
		Prompt:      h.svc.ConfirmPrompt(locale, activity, participant),
		Activity:    activity,
		Participant: participant,
	}
	writeHTML(w, http.StatusOK, func(w http.ResponseWriter) error {
		return h.render.Confirm(w, doc)
	})
}

// Unregister handles POST /unregister
// Removes the participant when the visitor confirmed. A decline goes
// straight back to the page without calling the API.
func (h *ActivityHandler) Unregister(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Ensure(w, r)
	locale := i18n.ResolveLanguage(r)

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	if !strings.EqualFold(r.PostForm.Get("confirm"), "yes") {
		redirectHome(w, r)
		return
	}

	activity := r.PostForm.Get("activity")
	participant := r.PostForm.Get("participant")
	outcome := h.svc.Unregister(r.Context(), locale, activity, participant)
	sess.Notice.Show(notice.KindFor(outcome.OK), outcome.Message)

	redirectHome(w, r)
}

// ─── Health check ─────────────────────────────────────────────────────────────

// HealthCheck handles GET /health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func documentLocale(locale string) string {
	if locale == "" {
		return "en"
	}
	return locale
}
