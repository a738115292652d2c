// Package services contains application services for the Tastebook CLI.
// This file defines the authentication service: register, login, logout,
// and access to the current session.
package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"tastebook/internal/client/api"
	"tastebook/internal/client/session"
	"tastebook/internal/logging"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register: create an account on the server and establish the session.
//   - Login: authenticate and establish the session.
//   - Logout: clear the session, memory and durable storage together.
//   - Current: the session as currently established.
//
// Both Register and Login are single-shot: no retry, and on failure the
// session is left untouched.
type AuthService interface {
	Register(ctx context.Context, email, password, name string) (session.Session, error)
	Login(ctx context.Context, email, password string) (session.Session, error)
	Logout(ctx context.Context) error
	Current() session.Session
}

// authService is the concrete AuthService backed by the remote API client
// and the durable session store.
type authService struct {
	client   api.Client
	sessions session.Store
	validate *validator.Validate
	log      logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client
// and session store.
func NewAuthService(client api.Client, sessions session.Store, log logging.Logger) AuthService {
	return &authService{
		client:   client,
		sessions: sessions,
		validate: validator.New(),
		log:      log,
	}
}

// credentialsForm gates auth calls locally: no network call leaves with an
// empty or malformed email, or an empty password.
type credentialsForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

func (a *authService) checkCredentials(email, password string) error {
	form := credentialsForm{Email: email, Password: password}
	if err := a.validate.Struct(form); err != nil {
		return &api.ValidationError{Message: "email and password are required"}
	}
	return nil
}

func (a *authService) Register(ctx context.Context, email, password, name string) (session.Session, error) {
	if err := a.checkCredentials(email, password); err != nil {
		return session.Session{}, err
	}

	result, err := a.client.Register(ctx, email, password, name)
	if err != nil {
		return session.Session{}, err
	}

	if err := a.sessions.Establish(ctx, result.Token, result.User.ID); err != nil {
		return session.Session{}, fmt.Errorf("saving session: %w", err)
	}

	a.log.Info(ctx, "registered", "user_id", result.User.ID)
	return a.sessions.Current(), nil
}

func (a *authService) Login(ctx context.Context, email, password string) (session.Session, error) {
	if err := a.checkCredentials(email, password); err != nil {
		return session.Session{}, err
	}

	result, err := a.client.Login(ctx, email, password)
	if err != nil {
		return session.Session{}, err
	}

	if err := a.sessions.Establish(ctx, result.Token, result.User.ID); err != nil {
		return session.Session{}, fmt.Errorf("saving session: %w", err)
	}

	a.log.Info(ctx, "logged in", "user_id", result.User.ID)
	return a.sessions.Current(), nil
}

// Logout clears both halves of the session together; afterwards the
// pipeline sends unauthenticated requests.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.sessions.Clear(ctx); err != nil {
		return err
	}
	a.log.Info(ctx, "logged out")
	return nil
}

func (a *authService) Current() session.Session {
	return a.sessions.Current()
}
