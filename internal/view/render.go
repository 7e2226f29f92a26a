package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Form is the signup form's current values.
type Form struct {
	Email    string
	Activity string
}

// Notice is the message area as rendered.
type Notice struct {
	Visible     bool
	Text        string
	Kind        string
	HideAfterMS int64
}

// NewNotice converts a remaining visibility window into a Notice.
func NewNotice(visible bool, text, kind string, remaining time.Duration) Notice {
	if !visible {
		return Notice{}
	}
	return Notice{Visible: true, Text: text, Kind: kind, HideAfterMS: remaining.Milliseconds()}
}

// Document is the activities page with the visitor's state.
type Document struct {
	Locale string
	Page   Page
	Form   Form
	Notice Notice
}

// ConfirmDocument asks the visitor to confirm a removal.
type ConfirmDocument struct {
	Locale      string
	Page        Page
	Prompt      string
	Activity    string
	Participant string
}

// Renderer writes documents as HTML.
type Renderer struct {
	page    *template.Template
	confirm *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	page, err := template.ParseFS(templateFS, "templates/layout.html", "templates/notice.html", "templates/page.html")
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}
	confirm, err := template.ParseFS(templateFS, "templates/layout.html", "templates/confirm.html")
	if err != nil {
		return nil, fmt.Errorf("parse confirm template: %w", err)
	}
	return &Renderer{page: page, confirm: confirm}, nil
}

// Page writes the activities page.
func (r *Renderer) Page(w io.Writer, doc Document) error {
	if err := r.page.ExecuteTemplate(w, "layout", doc); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

// Confirm writes the removal confirmation page.
func (r *Renderer) Confirm(w io.Writer, doc ConfirmDocument) error {
	if err := r.confirm.ExecuteTemplate(w, "layout", doc); err != nil {
		return fmt.Errorf("render confirm: %w", err)
	}
	return nil
}

// Static serves the embedded stylesheet and script.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
