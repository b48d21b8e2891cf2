package web

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/arcanaland/shuffledraw/internal/app"
	"github.com/arcanaland/shuffledraw/internal/draw"
	"github.com/arcanaland/shuffledraw/internal/license"
)

// page is the data every template receives
type page struct {
	State        app.State
	Form         draw.Request
	DeckSizes    []draw.DeckSize
	DeckReverses []draw.DeckReverse
}

// HandleIndex renders whichever view the session is in
func (h *Handler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	// Visitors who have not drawn yet get the default form without a session
	state, form := app.State{}, h.defaultForm
	if sess, ok := h.lookup(r); ok {
		state, form = sess.controller.State(), sess.Form()
	}

	name := "options.html"
	if state.Mode == app.ModeResults {
		name = "results.html"
	}
	h.render(w, name, page{
		State:        state,
		Form:         form,
		DeckSizes:    draw.DeckSizes,
		DeckReverses: draw.DeckReverses,
	})
}

// HandleDraw submits the options form and redirects back to the index
func (h *Handler) HandleDraw(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)

	if err := r.ParseForm(); err != nil {
		h.writeError(w, "Invalid form: "+err.Error(), http.StatusBadRequest)
		return
	}

	// Values are forwarded verbatim; an unreadable count is left for
	// Validate to reject
	numCards, err := strconv.Atoi(r.PostFormValue("numCards"))
	if err != nil {
		numCards = 0
	}
	req := draw.Request{
		DeckSize:    draw.DeckSize(r.PostFormValue("deckSize")),
		DeckReverse: draw.DeckReverse(r.PostFormValue("deckReverse")),
		NumCards:    numCards,
	}
	sess.SetForm(req)

	if _, err := sess.controller.SubmitDraw(r.Context(), req); errors.Is(err, app.ErrDrawInProgress) {
		slog.Info("Ignoring draw while another is loading")
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleReset returns the session to the options view
func (h *Handler) HandleReset(w http.ResponseWriter, r *http.Request) {
	if sess, ok := h.lookup(r); ok {
		sess.controller.Reset()
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleDismiss hides the error banner
func (h *Handler) HandleDismiss(w http.ResponseWriter, r *http.Request) {
	if sess, ok := h.lookup(r); ok {
		sess.controller.DismissError()
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleLicense renders the license notice
func (h *Handler) HandleLicense(w http.ResponseWriter, r *http.Request) {
	h.render(w, "license.html", license.Notice)
}

// lookup returns the caller's session if it has one
func (h *Handler) lookup(r *http.Request) (*session, bool) {
	c, err := r.Cookie(sessionCookie)
	if err != nil {
		return nil, false
	}
	return h.sessions.Get(c.Value)
}

// session returns the caller's session, starting one if needed. Only a
// draw starts a session.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) *session {
	if sess, ok := h.lookup(r); ok {
		return sess
	}

	sessionID, sess := h.sessions.Create(h.drawer, h.defaultForm)
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	slog.Debug("Session created", "session_id", sessionID)
	return sess
}

// render executes a template into a buffer so a failure can still send a 500
func (h *Handler) render(w http.ResponseWriter, name string, data any) {
	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		h.writeError(w, "Error executing template: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Unable to write response", "template", name, "err", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	slog.Error(message)
	http.Error(w, message, code)
}
