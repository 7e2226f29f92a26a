package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Shivanand-hulikatti/activity-signup/internal/i18n"
	"github.com/Shivanand-hulikatti/activity-signup/internal/model"
)

type stubRepository struct {
	acts     model.Activities
	listErr  error
	reply    model.Reply
	replyErr error

	lastActivity string
	lastID       string
}

func (s *stubRepository) List(context.Context) (model.Activities, error) {
	return s.acts, s.listErr
}

func (s *stubRepository) Signup(_ context.Context, activity, email string) (model.Reply, error) {
	s.lastActivity, s.lastID = activity, email
	return s.reply, s.replyErr
}

func (s *stubRepository) Unregister(_ context.Context, activity, participant string) (model.Reply, error) {
	s.lastActivity, s.lastID = activity, participant
	return s.reply, s.replyErr
}

var tr = i18n.NewTranslator("en")

func TestPageBuildsFromListing(t *testing.T) {
	t.Parallel()

	repo := &stubRepository{acts: model.Activities{{Name: "Chess Club", MaxParticipants: 10, Participants: []model.Participant{
		model.StringParticipant("a@x"), model.StringParticipant("b@x"), model.StringParticipant("c@x"),
	}}}}
	page := NewActivityService(repo, tr).Page(context.Background(), "en")
	if page.LoadError != "" {
		t.Fatalf("LoadError = %q, want empty", page.LoadError)
	}
	if got := page.Cards[0].Availability; got != "7 spots left" {
		t.Fatalf("Availability = %q, want %q", got, "7 spots left")
	}
}

func TestPageListFailure(t *testing.T) {
	t.Parallel()

	repo := &stubRepository{listErr: errors.New("boom")}
	page := NewActivityService(repo, tr).Page(context.Background(), "en")
	if page.LoadError != "Failed to load activities. Please try again later." {
		t.Fatalf("LoadError = %q", page.LoadError)
	}
}

func TestSignupOutcomes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		reply model.Reply
		err   error
		want  model.Outcome
	}{
		{name: "success message", reply: model.Reply{Status: 200, Message: "Signed up a@b.c for Chess Club"}, want: model.Outcome{OK: true, Message: "Signed up a@b.c for Chess Club"}},
		{name: "success fallback", reply: model.Reply{Status: 200}, want: model.Outcome{OK: true, Message: "Signed up"}},
		{name: "detail", reply: model.Reply{Status: 400, Detail: "Student already signed up", Message: "ignored"}, want: model.Outcome{Message: "Student already signed up"}},
		{name: "message when no detail", reply: model.Reply{Status: 404, Message: "Activity not found"}, want: model.Outcome{Message: "Activity not found"}},
		{name: "generic fallback", reply: model.Reply{Status: 500}, want: model.Outcome{Message: "An error occurred"}},
		{name: "transport", err: errors.New("connection refused"), want: model.Outcome{Message: "Failed to sign up. Please try again."}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			repo := &stubRepository{reply: tc.reply, replyErr: tc.err}
			got := NewActivityService(repo, tr).Signup(context.Background(), "en", "Chess Club", "a@b.c")
			if got != tc.want {
				t.Fatalf("Signup() = %+v, want %+v", got, tc.want)
			}
			if repo.lastActivity != "Chess Club" || repo.lastID != "a@b.c" {
				t.Fatalf("repository got (%q, %q)", repo.lastActivity, repo.lastID)
			}
		})
	}
}

func TestUnregisterOutcomes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		reply model.Reply
		err   error
		want  model.Outcome
	}{
		{name: "success message", reply: model.Reply{Status: 200, Message: "Removed x from Tennis Club"}, want: model.Outcome{OK: true, Message: "Removed x from Tennis Club"}},
		{name: "empty body success", reply: model.Reply{Status: 200}, want: model.Outcome{OK: true, Message: "Participant removed"}},
		{name: "detail", reply: model.Reply{Status: 400, Detail: "Student is not signed up for this activity"}, want: model.Outcome{Message: "Student is not signed up for this activity"}},
		{name: "message", reply: model.Reply{Status: 404, Message: "nope"}, want: model.Outcome{Message: "nope"}},
		{name: "fallback", reply: model.Reply{Status: 500}, want: model.Outcome{Message: "Failed to remove participant"}},
		{name: "transport", err: errors.New("reset"), want: model.Outcome{Message: "Failed to remove participant. Please try again."}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			repo := &stubRepository{reply: tc.reply, replyErr: tc.err}
			got := NewActivityService(repo, tr).Unregister(context.Background(), "en", "Tennis Club", "Jane Doe")
			if got != tc.want {
				t.Fatalf("Unregister() = %+v, want %+v", got, tc.want)
			}
			if repo.lastID != "Jane Doe" {
				t.Fatalf("repository participant = %q, want raw identifier", repo.lastID)
			}
		})
	}
}

func TestConfirmPrompt(t *testing.T) {
	t.Parallel()

	got := NewActivityService(&stubRepository{}, tr).ConfirmPrompt("en", "Chess Club", "jane@x.com")
	if want := "Remove jane@x.com from Chess Club?"; got != want {
		t.Fatalf("ConfirmPrompt() = %q, want %q", got, want)
	}
}
