// Package service implements the portal's controllers: rendering the
// activity list, signing up, and removing a participant.
package service

import (
	"context"
	"log"

	"github.com/Shivanand-hulikatti/activity-signup/internal/i18n"
	"github.com/Shivanand-hulikatti/activity-signup/internal/model"
	"github.com/Shivanand-hulikatti/activity-signup/internal/view"
)

// ActivityRepository is the subset of the API client the service needs.
type ActivityRepository interface {
	List(ctx context.Context) (model.Activities, error)
	Signup(ctx context.Context, activity, email string) (model.Reply, error)
	Unregister(ctx context.Context, activity, participant string) (model.Reply, error)
}

// ActivityService orchestrates activity-related user actions.
type ActivityService struct {
	activities ActivityRepository
	tr         i18n.T
}

// NewActivityService constructs an ActivityService with its dependencies.
func NewActivityService(activities ActivityRepository, tr i18n.T) *ActivityService {
	return &ActivityService{activities: activities, tr: tr}
}

// Page fetches the full activity collection and projects it. Any failure
// yields the load-error page.
func (s *ActivityService) Page(ctx context.Context, locale string) view.Page {
	acts, err := s.activities.List(ctx)
	if err != nil {
		log.Printf("error fetching activities: %v", err)
		return view.Failed(s.tr, locale)
	}
	return view.Build(acts, s.tr, locale)
}

// Signup enrolls email in activity.
func (s *ActivityService) Signup(ctx context.Context, locale, activity, email string) model.Outcome {
	reply, err := s.activities.Signup(ctx, activity, email)
	if err != nil {
		log.Printf("error signing up %q for %q: %v", email, activity, err)
		return model.Outcome{Message: s.tr.T(locale, "SignupUnavailable", nil)}
	}
	if reply.OK() {
		return model.Outcome{OK: true, Message: firstNonEmpty(reply.Message, s.tr.T(locale, "SignupSucceeded", nil))}
	}
	return model.Outcome{Message: firstNonEmpty(reply.Detail, reply.Message, s.tr.T(locale, "SignupFailed", nil))}
}

// Unregister removes participant, a raw identifier, from activity.
func (s *ActivityService) Unregister(ctx context.Context, locale, activity, participant string) model.Outcome {
	reply, err := s.activities.Unregister(ctx, activity, participant)
	if err != nil {
		log.Printf("error unregistering %q from %q: %v", participant, activity, err)
		return model.Outcome{Message: s.tr.T(locale, "UnregisterUnavailable", nil)}
	}
	if reply.OK() {
		return model.Outcome{OK: true, Message: firstNonEmpty(reply.Message, s.tr.T(locale, "UnregisterSucceeded", nil))}
	}
	return model.Outcome{Message: firstNonEmpty(reply.Detail, reply.Message, s.tr.T(locale, "UnregisterFailed", nil))}
}

// ConfirmPrompt is the question asked before removing participant.
func (s *ActivityService) ConfirmPrompt(locale, activity, participant string) string {
	return s.tr.T(locale, "ConfirmPrompt", map[string]any{"Participant": participant, "Activity": activity})
}

// Labels returns the localized page copy.
func (s *ActivityService) Labels(locale string) view.Labels {
	return view.NewLabels(s.tr, locale)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
