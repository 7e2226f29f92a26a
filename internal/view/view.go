// Package view builds the activities page as a plain value and renders it.
//
// Build is pure: it takes the fetched activities and returns a Page. The
// Renderer is the only part that writes markup.
package view

import (
	"html/template"
	"net/url"

	"github.com/Shivanand-hulikatti/activity-signup/internal/format"
	"github.com/Shivanand-hulikatti/activity-signup/internal/i18n"
	"github.com/Shivanand-hulikatti/activity-signup/internal/model"
)

// Page is everything the activities page shows apart from per-visitor
// state.
type Page struct {
	Labels Labels
	// LoadError replaces the activity list when it is non-empty.
	LoadError string
	Cards     []Card
	Options   []Option
}

// Card is one activity.
type Card struct {
	// Title, Description and Schedule come from the API and are trusted
	// markup.
	Title        template.HTML
	Description  template.HTML
	Schedule     template.HTML
	SpotsLeft    int
	Availability string
	Rows         []Row
}

// Row is one entry of a card's participant list.
type Row struct {
	// Placeholder rows carry only Text and have no removal link.
	Placeholder bool
	Text        string

	Initials    template.HTML
	Name        template.HTML
	RemoveURL   string
	RemoveLabel string
}

// Option is one entry of the signup activity selector.
type Option struct {
	Value string
	Label string
}

// Labels is the page's static copy.
type Labels struct {
	Title               string
	Heading             string
	AvailableActivities string
	Loading             string
	ScheduleLabel       string
	AvailabilityLabel   string
	ParticipantsLabel   string
	SignupHeading       string
	EmailLabel          string
	EmailPlaceholder    string
	ActivityLabel       string
	SelectActivity      string
	SignupButton        string
	ConfirmHeading      string
	ConfirmYes          string
	ConfirmNo           string
}

// NewLabels localizes the page copy.
func NewLabels(tr i18n.T, locale string) Labels {
	return Labels{
		Title:               tr.T(locale, "PageTitle", nil),
		Heading:             tr.T(locale, "PageHeading", nil),
		AvailableActivities: tr.T(locale, "AvailableActivities", nil),
		Loading:             tr.T(locale, "LoadingActivities", nil),
		ScheduleLabel:       tr.T(locale, "ScheduleLabel", nil),
		AvailabilityLabel:   tr.T(locale, "AvailabilityLabel", nil),
		ParticipantsLabel:   tr.T(locale, "ParticipantsLabel", nil),
		SignupHeading:       tr.T(locale, "SignupHeading", nil),
		EmailLabel:          tr.T(locale, "EmailLabel", nil),
		EmailPlaceholder:    tr.T(locale, "EmailPlaceholder", nil),
		ActivityLabel:       tr.T(locale, "ActivityLabel", nil),
		SelectActivity:      tr.T(locale, "SelectActivity", nil),
		SignupButton:        tr.T(locale, "SignupButton", nil),
		ConfirmHeading:      tr.T(locale, "ConfirmHeading", nil),
		ConfirmYes:          tr.T(locale, "ConfirmYes", nil),
		ConfirmNo:           tr.T(locale, "ConfirmNo", nil),
	}
}

// Build projects the activities into a Page.
func Build(acts model.Activities, tr i18n.T, locale string) Page {
	page := Page{
		Labels:  NewLabels(tr, locale),
		Cards:   make([]Card, 0, len(acts)),
		Options: make([]Option, 0, len(acts)),
	}

	for _, act := range acts {
		spots := act.SpotsLeft()
		card := Card{
			Title:        template.HTML(act.Name),
			Description:  template.HTML(act.Description),
			Schedule:     template.HTML(act.Schedule),
			SpotsLeft:    spots,
			Availability: tr.T(locale, "SpotsLeft", map[string]any{"Count": spots}),
		}

		if len(act.Participants) == 0 {
			card.Rows = []Row{{Placeholder: true, Text: tr.T(locale, "NoParticipants", nil)}}
		} else {
			card.Rows = make([]Row, 0, len(act.Participants))
			for _, p := range act.Participants {
				card.Rows = append(card.Rows, participantRow(act.Name, p, tr, locale))
			}
		}

		page.Cards = append(page.Cards, card)
		page.Options = append(page.Options, Option{Value: act.Name, Label: act.Name})
	}
	return page
}

// Failed is the page shown when the activity list could not be loaded.
func Failed(tr i18n.T, locale string) Page {
	return Page{
		Labels:    NewLabels(tr, locale),
		LoadError: tr.T(locale, "LoadFailed", nil),
	}
}

func participantRow(activity string, p model.Participant, tr i18n.T, locale string) Row {
	name := format.DisplayName(p)
	key := p.Key()
	return Row{
		Initials:    template.HTML(format.EscapeHTML(format.Initials(name))),
		Name:        template.HTML(format.EscapeHTML(name)),
		RemoveURL:   RemoveURL(activity, key),
		RemoveLabel: tr.T(locale, "RemoveParticipant", map[string]any{"Participant": name}),
	}
}

// RemoveURL is the confirmation page for removing participant from activity.
func RemoveURL(activity, participant string) string {
	q := url.Values{}
	q.Set("activity", activity)
	q.Set("participant", participant)
	return "/unregister?" + q.Encode()
}
