package models

import "encoding/json"

// AuthResponse is the body of a successful POST /login. RawUser holds the
// user object exactly as the server sent it, unknown fields included; User
// is the typed view of it.
type AuthResponse struct {
	User    *User           `json:"user"`
	Token   string          `json:"token"`
	RawUser json.RawMessage `json:"-"`
}

func (r *AuthResponse) UnmarshalJSON(data []byte) error {
	var v struct {
		User  json.RawMessage `json:"user"`
		Token string          `json:"token"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	r.Token = v.Token
	r.User, r.RawUser = nil, nil
	if len(v.User) == 0 || string(v.User) == "null" {
		return nil
	}

	var u User
	if err := json.Unmarshal(v.User, &u); err != nil {
		return err
	}
	r.User = &u
	r.RawUser = append(json.RawMessage(nil), v.User...)
	return nil
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

type RegisterResponse struct {
	Success bool   `json:"success"`
	User    *User  `json:"user,omitempty"`
	Token   string `json:"token,omitempty"`
	Error   string `json:"error,omitempty"`
}

// HealthResponse is the body of GET /test.
type HealthResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// ProfileResponse accepts both a bare user object and {"user": {...}}.
type ProfileResponse struct {
	User User
}

func (p *ProfileResponse) UnmarshalJSON(data []byte) error {
	var envelope struct {
		User *User `json:"user"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.User != nil {
		p.User = *envelope.User
		return nil
	}
	return json.Unmarshal(data, &p.User)
}
