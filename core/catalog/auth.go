package catalog

import (
	"context"
	"net/http"
)

// AuthAPI wraps the authentication endpoint.
type AuthAPI struct {
	r Requester
}

// NewAuthAPI creates the auth facade.
func NewAuthAPI(r Requester) *AuthAPI {
	return &AuthAPI{r: r}
}

// Login exchanges an email for a session token. The API may name the token
// "token" or "access_token"; the returned credentials keep the submitted email.
func (a *AuthAPI) Login(ctx context.Context, email string) (Credentials, error) {
	var resp struct {
		Token       string `json:"token"`
		AccessToken string `json:"access_token"`
	}
	if err := a.r.Do(ctx, http.MethodPost, "/auth", map[string]string{"email": email}, &resp); err != nil {
		return Credentials{}, err
	}

	token := resp.Token
	if token == "" {
		token = resp.AccessToken
	}
	if token == "" {
		return Credentials{}, ErrMissingToken
	}

	return Credentials{Token: token, Email: email}, nil
}
