// README: Conversational modification handlers: direct modify plus the chat session.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"yatra/internal/modules/editor"
	"yatra/internal/types"
)

type EditorHandler struct {
	editor   *editor.Service
	sessions *editor.Sessions
}

func NewEditorHandler(svc *editor.Service) *EditorHandler {
	return &EditorHandler{editor: svc, sessions: editor.NewSessions(svc)}
}

type modifyReq struct {
	Message string `json:"message"`
}

func (h *EditorHandler) Modify(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing trip id")
		return
	}
	var req modifyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}
	updated, confirmation, err := h.editor.Modify(r.Context(), types.ID(id), req.Message)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"updated_itinerary":    updated,
		"confirmation_message": confirmation,
	})
}

type chatStateResponse struct {
	State    editor.State     `json:"state"`
	Messages []editor.Message `json:"messages"`
	Thinking string           `json:"thinking,omitempty"`
}

func chatState(sess *editor.Session) chatStateResponse {
	resp := chatStateResponse{State: sess.State(), Messages: sess.Messages()}
	if msg, ok := sess.Thinking(); ok {
		resp.Thinking = msg
	}
	return resp
}

// Chat submits one user message to the trip's conversation. Failed
// modifications settle into an apology in the transcript, not an error
// status.
func (h *EditorHandler) Chat(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing trip id")
		return
	}
	var req modifyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	sess := h.sessions.For(types.ID(id))
	reply, err := sess.Submit(r.Context(), req.Message)
	switch {
	case errors.Is(err, editor.ErrEmptyInput):
		writeError(w, http.StatusBadRequest, "message is required")
		return
	case errors.Is(err, editor.ErrBusy):
		writeError(w, http.StatusConflict, "a request is already in flight")
		return
	case err != nil:
		writeDomainError(w, err)
		return
	}

	resp := chatState(sess)
	writeJSON(w, http.StatusOK, map[string]any{
		"reply":    reply,
		"state":    resp.State,
		"messages": resp.Messages,
	})
}

// ChatState returns the transcript, session state, and the rotating thinking
// line for the page to poll.
func (h *EditorHandler) ChatState(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing trip id")
		return
	}
	writeJSON(w, http.StatusOK, chatState(h.sessions.For(types.ID(id))))
}
