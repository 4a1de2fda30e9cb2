package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// DisplayName returns a human label; unknown roles are shown verbatim.
func (r Role) DisplayName() string {
	switch r {
	case RoleAdmin:
		return "Administrator"
	case RoleTeacher:
		return "Teacher"
	case RoleStudent:
		return "Student"
	}
	return string(r)
}

// User is the client-side copy of the account record owned by the server.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// UnmarshalJSON accepts the id as a number or as a string. A string that
// is not a number leaves ID at zero; the server's record is kept as is by
// whoever stored the raw bytes.
func (u *User) UnmarshalJSON(data []byte) error {
	type plain User
	var v struct {
		plain
		ID json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*u = User(v.plain)
	u.ID = parseUserID(v.ID)
	return nil
}

func parseUserID(raw json.RawMessage) int64 {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0
	}
	text := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return 0
		}
	}
	id, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// CanCreateEvents reports whether u may publish new events.
func (u *User) CanCreateEvents() bool {
	return u != nil && (u.Role == RoleAdmin || u.Role == RoleTeacher)
}

// CanManageEvent reports whether u may edit or delete e: admins always,
// everybody else only for events they created.
func (u *User) CanManageEvent(e *Event) bool {
	if u == nil || e == nil {
		return false
	}
	return u.Role == RoleAdmin || (e.CreatedBy != 0 && e.CreatedBy == u.ID)
}
