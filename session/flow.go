package session

import (
	"context"
	"errors"
	"strings"

	"github.com/Hashim-Bhagad/FitFork/api"
	"github.com/Hashim-Bhagad/FitFork/logs"
)

// Outcome classifies how a single flow step went.
type Outcome string

const (
	// OutcomeOK means the step did what it set out to do.
	OutcomeOK Outcome = "ok"
	// OutcomeDegraded means the step failed but the flow tolerated it and
	// substituted a fallback.
	OutcomeDegraded Outcome = "degraded"
	// OutcomeFailed means the step failed and the flow stopped.
	OutcomeFailed Outcome = "failed"
)

// StepResult reports one step of the login flow, making the tolerance policy
// visible instead of buried in control flow.
type StepResult struct {
	Step    string
	Outcome Outcome
	Detail  string
}

// ErrInterrupted is returned when a logout or expiry invalidated the session
// a flow was establishing before it could finish.
var ErrInterrupted = errors.New("sign-in was interrupted by a session change")

// Flow orchestrates the multi-step login and register sequences.
//
// Only the authenticate call is load-bearing. The identity and profile
// fetches are best effort: their absence does not make the session invalid,
// so their failures degrade the result instead of aborting it.
type Flow struct {
	gateway *api.Gateway
	store   *Store
}

// NewFlow builds a Flow over the given gateway and store.
func NewFlow(gateway *api.Gateway, store *Store) *Flow {
	return &Flow{gateway: gateway, store: store}
}

// Login runs authenticate, then persists the token, then fetches identity
// and saved profile best-effort, and finally marks the session
// Authenticated. On an authenticate failure the classified error is returned
// unchanged and the session stays Anonymous.
func (f *Flow) Login(ctx context.Context, email, password string) ([]StepResult, error) {
	epoch := f.store.beginAuth()
	steps := make([]StepResult, 0, 3)

	token, err := f.gateway.Login(ctx, email, password)
	if err != nil {
		f.store.failAuth(epoch)
		steps = append(steps, StepResult{Step: "authenticate", Outcome: OutcomeFailed, Detail: err.Error()})
		return steps, err
	}
	steps = append(steps, StepResult{Step: "authenticate", Outcome: OutcomeOK})

	// The remaining steps need the token attached to their requests.
	if !f.store.persistToken(epoch, token) {
		return steps, ErrInterrupted
	}

	user := f.fetchIdentity(ctx, email, &steps)
	profile, nutrition := f.fetchSavedProfile(ctx, &steps)

	if !f.store.completeAuth(epoch, user, profile, nutrition) {
		return steps, ErrInterrupted
	}
	return steps, nil
}

// Register creates the account, then delegates to Login with the same
// credentials. A signup failure aborts before any login attempt.
func (f *Flow) Register(ctx context.Context, email, password, name string) ([]StepResult, error) {
	if _, err := f.gateway.Signup(ctx, email, password, name); err != nil {
		return []StepResult{{Step: "signup", Outcome: OutcomeFailed, Detail: err.Error()}}, err
	}
	steps, err := f.Login(ctx, email, password)
	return append([]StepResult{{Step: "signup", Outcome: OutcomeOK}}, steps...), err
}

// fetchIdentity reads /user/me, falling back to an identity synthesized from
// the email. Login must not abort over a failed secondary read.
func (f *Flow) fetchIdentity(ctx context.Context, email string, steps *[]StepResult) *Identity {
	me, err := f.gateway.Me(ctx)
	if err != nil {
		logs.Printv("identity fetch failed, synthesizing from email: %s", err)
		*steps = append(*steps, StepResult{Step: "identity", Outcome: OutcomeDegraded, Detail: err.Error()})
		return synthesizeIdentity(email)
	}
	*steps = append(*steps, StepResult{Step: "identity", Outcome: OutcomeOK})
	name := me.FullName
	if name == "" {
		name = localPart(me.Email)
	}
	return &Identity{ID: me.ID, Email: me.Email, Name: name}
}

// fetchSavedProfile reads the server-persisted profile and targets. A
// missing profile is a tolerated partial failure: the user simply gets
// routed to complete one.
func (f *Flow) fetchSavedProfile(ctx context.Context, steps *[]StepResult) (*api.Profile, *api.NutritionTargets) {
	saved, err := f.gateway.GetSavedProfile(ctx)
	if err != nil {
		logs.Printv("saved profile fetch failed, continuing without one: %s", err)
		*steps = append(*steps, StepResult{Step: "profile", Outcome: OutcomeDegraded, Detail: err.Error()})
		return nil, nil
	}
	*steps = append(*steps, StepResult{Step: "profile", Outcome: OutcomeOK})
	return saved.Profile, saved.Nutrition
}

func synthesizeIdentity(email string) *Identity {
	return &Identity{ID: "current", Email: email, Name: localPart(email)}
}

func localPart(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
