package controller

import (
	"context"

	"github.com/dmitrymomot/catalog/core/catalog"
	"github.com/dmitrymomot/catalog/core/logger"
)

// Login drives the sign-in screen.
type Login struct {
	base
}

func NewLogin(deps Deps) *Login {
	return &Login{base: newBase(deps, "login")}
}

// Mount sends an already signed-in user to the product list. It reports whether it did.
func (c *Login) Mount(ctx context.Context) (bool, error) {
	if c.Gate != nil {
		if err := c.Gate.Wait(ctx); err != nil {
			return false, err
		}
	}
	if c.Store.IsAuthenticated() {
		c.Navigator.Navigate(RouteProducts)
		return true, nil
	}
	return false, nil
}

// Submit validates the email, logs in and stores the session. Validation failures are
// validator.ValidationErrors and nothing is sent.
func (c *Login) Submit(ctx context.Context, email string) error {
	email, err := catalog.LoginForm{Email: email}.Normalize()
	if err != nil {
		return err
	}

	creds, err := c.Auth.Login(ctx, email)
	if err != nil {
		c.Logger.Warn("login failed", logger.Error(err))
		return &OperationError{Message: Message(err, "Failed to login. Please try again."), Err: err}
	}

	c.Store.SetCredentials(creds.Token, creds.Email)
	c.Logger.Info("logged in", logger.Key("email", creds.Email))
	c.Navigator.Navigate(RouteProducts)
	return nil
}

// Logout clears the session and returns to the sign-in screen.
func (c *Login) Logout() {
	c.Store.Logout()
	c.Navigator.Navigate(RouteAuth)
}
