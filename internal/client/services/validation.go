package services

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/unievents/internal/client/models"
)

const (
	minPasswordLen    = 6
	maxTitleLen       = 100
	maxDescriptionLen = 500
	maxLocationLen    = 100
)

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// ValidationErrors maps a form field to the problem found in it.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, v[f]))
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

func (v ValidationErrors) orNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// ValidateRegistration checks a sign-up form before it is sent.
func ValidateRegistration(req models.RegisterRequest, confirmPassword string) error {
	errs := ValidationErrors{}

	if strings.TrimSpace(req.Name) == "" {
		errs["name"] = "name is required"
	}

	switch email := strings.TrimSpace(req.Email); {
	case email == "":
		errs["email"] = "email is required"
	case !emailPattern.MatchString(email):
		errs["email"] = "email is not valid"
	}

	switch {
	case req.Password == "":
		errs["password"] = "password is required"
	case utf8.RuneCountInString(req.Password) < minPasswordLen:
		errs["password"] = fmt.Sprintf("password must be at least %d characters", minPasswordLen)
	}

	if req.Password != confirmPassword {
		errs["confirm_password"] = "passwords do not match"
	}

	return errs.orNil()
}

// ValidateLogin checks the login form.
func ValidateLogin(email, password string) error {
	errs := ValidationErrors{}

	switch email = strings.TrimSpace(email); {
	case email == "":
		errs["email"] = "email is required"
	case !emailPattern.MatchString(email):
		errs["email"] = "email is not valid"
	}
	if password == "" {
		errs["password"] = "password is required"
	}

	return errs.orNil()
}

// ValidateEvent checks an event form. An empty type is set to academic.
// Events may not start before now.
func ValidateEvent(in *models.EventInput, now time.Time) error {
	errs := ValidationErrors{}

	title := strings.TrimSpace(in.Title)
	switch {
	case title == "":
		errs["title"] = "title is required"
	case utf8.RuneCountInString(title) > maxTitleLen:
		errs["title"] = fmt.Sprintf("title must be at most %d characters", maxTitleLen)
	}

	if utf8.RuneCountInString(in.Description) > maxDescriptionLen {
		errs["description"] = fmt.Sprintf("description must be at most %d characters", maxDescriptionLen)
	}

	location := strings.TrimSpace(in.Location)
	switch {
	case location == "":
		errs["location"] = "location is required"
	case utf8.RuneCountInString(location) > maxLocationLen:
		errs["location"] = fmt.Sprintf("location must be at most %d characters", maxLocationLen)
	}

	switch {
	case in.Date.IsZero():
		errs["date"] = "date is required"
	case in.Date.Before(now):
		errs["date"] = "events cannot be scheduled in the past"
	}

	if in.Type == "" {
		in.Type = models.EventAcademic
	} else if !in.Type.Valid() {
		errs["type"] = fmt.Sprintf("unknown event type %q", in.Type)
	}

	return errs.orNil()
}
