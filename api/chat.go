package api

import (
	"context"
	"net/http"
)

// ChatHistory fetches the prior turns of the onboarding conversation.
func (g *Gateway) ChatHistory(ctx context.Context) ([]ChatTurn, error) {
	var turns []ChatTurn
	if err := g.do(ctx, http.MethodGet, "/chat/history", nil, &turns); err != nil {
		return nil, err
	}
	return turns, nil
}

type chatSendRequest struct {
	Message string   `json:"message"`
	UserID  string   `json:"user_id"`
	Profile *Profile `json:"profile,omitempty"`
}

// ChatSend delivers one user message, along with the user id and current
// profile so the assistant has context.
func (g *Gateway) ChatSend(ctx context.Context, message, userID string, profile *Profile) (*ChatReply, error) {
	reply := &ChatReply{}
	err := g.do(ctx, http.MethodPost, "/chat/send", &chatSendRequest{
		Message: message,
		UserID:  userID,
		Profile: profile,
	}, reply)
	if err != nil {
		return nil, err
	}
	return reply, nil
}

// ChatClear deletes the server-side conversation history.
func (g *Gateway) ChatClear(ctx context.Context) error {
	return g.do(ctx, http.MethodDelete, "/chat/clear", nil, nil)
}
