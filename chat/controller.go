// Package chat manages the conversational onboarding session with Chef
// Discovery: the ordered turns, the in-flight guard, and the volatile
// ready-to-generate flag.
package chat

import (
	"context"
	"strings"

	"github.com/Hashim-Bhagad/FitFork/api"
	"github.com/Hashim-Bhagad/FitFork/logs"
	"github.com/Hashim-Bhagad/FitFork/session"
)

// State is the controller's lifecycle state.
type State int

const (
	// Uninitialized means LoadHistory has not run yet.
	Uninitialized State = iota
	// Active means the conversation has a welcome or resumed history.
	Active
	// AwaitingReply means a message is in flight.
	AwaitingReply
)

const (
	// RoleUser and RoleAssistant label the two sides of the conversation.
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

const (
	welcomeMessage = "Greetings! I am Chef Discovery, your metabolic culinary guide. " +
		"I'm excited to help you craft an extraordinary meal plan. Tell me, how has your " +
		"energy been today, and are there any specific flavors or ingredients you've been " +
		"craving lately?"
	resetMessage = "Resetting... I'm ready for a fresh start. What goals are we focusing " +
		"on today?"
	fallbackMessage = "I've hit a small snag in my kitchen! Please try again in a moment."
	emptyReply      = "I'm pondering the possibilities... could you try saying that again?"
)

// Controller is the onboarding chat state machine. Errors during a send
// never break the turn-taking illusion: the assistant answers with a fixed
// fallback instead.
//
// Not safe for concurrent use; it is confined to the interactive loop, with
// the in-flight guard expressed through the AwaitingReply state.
type Controller struct {
	gateway *api.Gateway
	session *session.Store

	state    State
	turns    []api.ChatTurn
	complete bool
}

// NewController builds a Controller over the gateway and session store.
func NewController(gateway *api.Gateway, store *session.Store) *Controller {
	return &Controller{gateway: gateway, session: store}
}

// LoadHistory fetches prior turns, seeding a fixed welcome turn when none
// exist. The welcome is local only; no network write happens. A fetch
// failure still activates the conversation with the welcome turn, and the
// classified error is returned for inline display.
func (c *Controller) LoadHistory(ctx context.Context) error {
	turns, err := c.gateway.ChatHistory(ctx)
	if err != nil {
		logs.Printv("chat history fetch failed: %s", err)
		turns = nil
	}
	if len(turns) == 0 {
		turns = []api.ChatTurn{{Role: RoleAssistant, Content: welcomeMessage}}
	}
	c.turns = turns
	c.state = Active
	return err
}

// Send delivers one user message. A blank message, or a call while a reply
// is already in flight, is a no-op: no turn is appended and no network call
// is made. The user turn is appended optimistically before the call.
func (c *Controller) Send(ctx context.Context, message string) error {
	message = strings.TrimSpace(message)
	if message == "" || c.state != Active {
		return nil
	}

	c.turns = append(c.turns, api.ChatTurn{Role: RoleUser, Content: message})
	c.state = AwaitingReply
	epoch := c.session.Epoch()

	var userID string
	if user := c.session.User(); user != nil {
		userID = user.ID
	}
	reply, err := c.gateway.ChatSend(ctx, message, userID, c.session.Profile())

	// A reply that lands after the session it was issued under has been
	// invalidated is discarded outright; the conversation it belonged to is
	// already gone.
	if c.session.Epoch() != epoch {
		logs.Printv("discarding chat reply from a previous session")
		c.state = Active
		return err
	}
	c.state = Active

	if err != nil {
		c.turns = append(c.turns, api.ChatTurn{Role: RoleAssistant, Content: fallbackMessage})
		return nil
	}

	content := reply.Reply
	if content == "" {
		content = emptyReply
	}
	c.turns = append(c.turns, api.ChatTurn{
		Role:        RoleAssistant,
		Content:     content,
		Suggestions: reply.SuggestedActions,
	})
	c.complete = reply.IsComplete
	return nil
}

// Clear resets the conversation after the confirm callback approves. The
// remote clear runs best effort: the local reset is authoritative for what
// the user sees, whether or not the server call succeeds.
func (c *Controller) Clear(ctx context.Context, confirm func() bool) bool {
	if confirm == nil || !confirm() {
		return false
	}
	if err := c.gateway.ChatClear(ctx); err != nil {
		logs.Printv("remote chat clear failed: %s", err)
	}
	c.turns = []api.ChatTurn{{Role: RoleAssistant, Content: resetMessage}}
	c.complete = false
	c.state = Active
	return true
}

// Turns returns a copy of the conversation so far.
func (c *Controller) Turns() []api.ChatTurn {
	out := make([]api.ChatTurn, len(c.turns))
	copy(out, c.turns)
	return out
}

// IsComplete reports whether the latest reply declared the profile ready for
// plan generation. Volatile; re-derived from every exchange.
func (c *Controller) IsComplete() bool {
	return c.complete
}

// State returns the controller state.
func (c *Controller) State() State {
	return c.state
}
