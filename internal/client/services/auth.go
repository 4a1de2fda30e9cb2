// Package services contains application services for the unievents client.
// This file defines the authentication service: login, registration, the
// profile probe and the connectivity diagnostic.
package services

import (
	"context"

	"github.com/dmitrijs2005/unievents/internal/client/client"
	"github.com/dmitrijs2005/unievents/internal/client/models"
)

// AuthService wraps the remote auth endpoints.
//
// Contract:
//   - Login: POST /login, returns {user, token}.
//   - Register: POST /register, returns {success, user?, token?, error?}.
//   - GetProfile: GET /profile with the ambient bearer token.
//   - TestConnection: GET /test, diagnostic only.
//
// Every call is a single attempt. Failures are returned normalised by
// client.Normalize, so client.Message yields the text to show.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.RegisterResponse, error)
	GetProfile(ctx context.Context) (*models.User, error)
	TestConnection(ctx context.Context) (*models.HealthResponse, error)
}

const (
	msgConnection     = client.DefaultMessage
	msgRegisterFailed = "account could not be created"
	msgServerDown     = "server connection error"
)

type authService struct {
	client client.Client
}

// NewAuthService constructs an AuthService bound to the given API client.
func NewAuthService(c client.Client) AuthService {
	return &authService{client: c}
}

func (a *authService) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	req := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var resp models.AuthResponse
	if err := a.client.Post(ctx, "/login", req, &resp); err != nil {
		return nil, client.Normalize(err, msgConnection)
	}
	return &resp, nil
}

// Register posts a new account. An empty role registers a student.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (*models.RegisterResponse, error) {
	if req.Role == "" {
		req.Role = models.RoleStudent
	}

	var resp models.RegisterResponse
	if err := a.client.Post(ctx, "/register", req, &resp); err != nil {
		return nil, client.Normalize(err, msgRegisterFailed)
	}
	return &resp, nil
}

func (a *authService) GetProfile(ctx context.Context) (*models.User, error) {
	var resp models.ProfileResponse
	if err := a.client.Get(ctx, "/profile", &resp); err != nil {
		return nil, client.Normalize(err, msgConnection)
	}
	return &resp.User, nil
}

func (a *authService) TestConnection(ctx context.Context) (*models.HealthResponse, error) {
	var resp models.HealthResponse
	if err := a.client.Get(ctx, "/test", &resp); err != nil {
		return nil, client.Normalize(err, msgServerDown)
	}
	return &resp, nil
}
