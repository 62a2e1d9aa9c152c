package session

import (
	"github.com/Hashim-Bhagad/FitFork/api"
)

// Navigator is how the session layer asks the surrounding application to
// move the user somewhere. The composition root supplies the implementation.
type Navigator interface {
	// ToLogin routes to the login view. expired marks the redirect as caused
	// by a dead session rather than an explicit sign-out. Implementations
	// skip the redirect when already on the login view.
	ToLogin(expired bool)
}

// ExpiryWatcher reacts to the gateway's SessionExpired classification: it
// tears the session down and routes to login. Keeping this out of the
// gateway leaves the transport layer free of navigation concerns.
type ExpiryWatcher struct {
	store *Store
	nav   Navigator
}

// NewExpiryWatcher builds a watcher over store and nav.
func NewExpiryWatcher(store *Store, nav Navigator) *ExpiryWatcher {
	return &ExpiryWatcher{store: store, nav: nav}
}

// Subscribe registers the watcher with the gateway. On expiry the session is
// invalidated first, so any response still in flight fails its epoch check
// and is ignored, then the Navigator is told to show login.
func (w *ExpiryWatcher) Subscribe(gateway *api.Gateway) {
	gateway.OnSessionExpired(func(*api.Error) {
		w.store.Invalidate()
		if w.nav != nil {
			w.nav.ToLogin(true)
		}
	})
}
