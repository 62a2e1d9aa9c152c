package api

import (
	"context"
	"net/http"
	"net/url"
)

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
}

// Signup creates a new account. The caller is expected to follow up with
// Login; signup itself returns no token.
func (g *Gateway) Signup(ctx context.Context, email, password, fullName string) (*User, error) {
	user := &User{}
	err := g.do(ctx, http.MethodPost, "/auth/signup", &signupRequest{
		Email:    email,
		Password: password,
		FullName: fullName,
	}, user)
	if err != nil {
		return nil, err
	}
	return user, nil
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login exchanges credentials for a bearer token. This is the one
// form-encoded endpoint, and the one place a 401 means bad credentials
// rather than an expired session.
func (g *Gateway) Login(ctx context.Context, email, password string) (string, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	tr := &tokenResponse{}
	if err := g.doForm(ctx, loginPath, form, tr); err != nil {
		return "", err
	}
	return tr.AccessToken, nil
}

// GoogleAuthURL fetches the calendar OAuth authorization URL the browser
// should be sent to.
func (g *Gateway) GoogleAuthURL(ctx context.Context) (string, error) {
	var resp struct {
		AuthURL string `json:"auth_url"`
	}
	if err := g.do(ctx, http.MethodGet, "/auth/google", nil, &resp); err != nil {
		return "", err
	}
	return resp.AuthURL, nil
}
