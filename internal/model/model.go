// Package model defines the core domain types for the activity signup portal.
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Activity is one entry of the activities API listing.
type Activity struct {
	Name            string        `json:"-"`
	Description     string        `json:"description"`
	Schedule        string        `json:"schedule"`
	MaxParticipants int           `json:"max_participants"`
	Participants    []Participant `json:"participants"`
}

// SpotsLeft returns the remaining capacity. It is not floored at zero.
func (a *Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}

// Activities is the listing returned by GET /activities, in the order the
// API sent its keys.
type Activities []Activity

// UnmarshalJSON decodes a JSON object keyed by activity name while keeping
// key order, which a map would lose.
func (a *Activities) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("read activities: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("activities: expected object, got %v", tok)
	}

	out := Activities{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("read activity name: %w", err)
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("activities: expected name, got %v", tok)
		}
		var act Activity
		if err := dec.Decode(&act); err != nil {
			return fmt.Errorf("decode activity %q: %w", name, err)
		}
		act.Name = name
		out = append(out, act)
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("read activities: %w", err)
	}

	*a = out
	return nil
}

// Participant is a raw participant identifier as the API returns it: either
// a plain string (email or free-text name) or an object with optional
// name/email fields. Nothing about it is validated.
type Participant struct {
	Text   string
	Name   string
	Email  string
	Object bool
	// Raw holds the JSON text for objects and for non-string scalars.
	Raw string
}

// StringParticipant builds a participant from a plain identifier.
func StringParticipant(s string) Participant {
	return Participant{Text: s}
}

// ObjectParticipant builds a participant in object form.
func ObjectParticipant(name, email string) Participant {
	raw, _ := json.Marshal(map[string]string{"name": name, "email": email})
	return Participant{Name: name, Email: email, Object: true, Raw: string(raw)}
}

// IsZero reports whether the identifier is empty (an empty string or null).
func (p Participant) IsZero() bool {
	return !p.Object && p.Text == "" && p.Raw == ""
}

// Key is the raw identifier passed back to the API when removing this
// participant.
func (p Participant) Key() string {
	switch {
	case p.Object && p.Email != "":
		return p.Email
	case p.Object && p.Name != "":
		return p.Name
	case p.Raw != "":
		return p.Raw
	}
	return p.Text
}

// String returns the generic string form of the identifier.
func (p Participant) String() string {
	if p.Raw != "" {
		return p.Raw
	}
	return p.Text
}

// UnmarshalJSON accepts a string, an object, null, or any other JSON value.
func (p *Participant) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")):
		*p = Participant{}
	case trimmed[0] == '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return fmt.Errorf("decode participant: %w", err)
		}
		*p = Participant{Text: s}
	case trimmed[0] == '{':
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &fields); err != nil {
			return fmt.Errorf("decode participant: %w", err)
		}
		*p = Participant{
			Name:   stringField(fields, "name"),
			Email:  stringField(fields, "email"),
			Object: true,
			Raw:    string(trimmed),
		}
	default:
		*p = Participant{Raw: string(trimmed)}
	}
	return nil
}

// MarshalJSON writes the identifier back in the shape it was received.
func (p Participant) MarshalJSON() ([]byte, error) {
	if p.Raw != "" {
		return []byte(p.Raw), nil
	}
	if p.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(p.Text)
}

func stringField(fields map[string]json.RawMessage, key string) string {
	raw, ok := fields[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// Reply is a decoded response body from the signup endpoint.
type Reply struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

// OK reports whether the reply carried a 2xx status.
func (r Reply) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// Outcome is the tagged result of one user action, ready to be shown in the
// message area.
type Outcome struct {
	OK      bool
	Message string
}
