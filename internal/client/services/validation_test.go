package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/unievents/internal/client/models"
)

func fieldErrors(t *testing.T, err error) ValidationErrors {
	t.Helper()
	if err == nil {
		return nil
	}
	var v ValidationErrors
	require.True(t, errors.As(err, &v), "want ValidationErrors, got %T", err)
	return v
}

func TestValidateRegistration(t *testing.T) {
	valid := models.RegisterRequest{Name: "Ana", Email: "ana@uni.edu", Password: "secret1"}

	tests := []struct {
		name    string
		mutate  func(r *models.RegisterRequest)
		confirm string
		fields  []string
	}{
		{"valid", func(r *models.RegisterRequest) {}, "secret1", nil},
		{"missing name", func(r *models.RegisterRequest) { r.Name = "  " }, "secret1", []string{"name"}},
		{"missing email", func(r *models.RegisterRequest) { r.Email = "" }, "secret1", []string{"email"}},
		{"bad email", func(r *models.RegisterRequest) { r.Email = "ana.uni.edu" }, "secret1", []string{"email"}},
		{"short password", func(r *models.RegisterRequest) { r.Password = "abc" }, "abc", []string{"password"}},
		{"missing password", func(r *models.RegisterRequest) { r.Password = "" }, "", []string{"password"}},
		{"mismatch", func(r *models.RegisterRequest) {}, "secret2", []string{"confirm_password"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			got := fieldErrors(t, ValidateRegistration(req, tt.confirm))
			assert.Len(t, got, len(tt.fields))
			for _, f := range tt.fields {
				assert.Contains(t, got, f)
			}
		})
	}
}

func TestValidateLogin(t *testing.T) {
	require.NoError(t, ValidateLogin("ana@uni.edu", "x"))

	got := fieldErrors(t, ValidateLogin("", ""))
	assert.Contains(t, got, "email")
	assert.Contains(t, got, "password")

	got = fieldErrors(t, ValidateLogin("nope", "x"))
	assert.Equal(t, "email is not valid", got["email"])
}

func TestValidateEvent(t *testing.T) {
	now := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	valid := models.EventInput{
		Title:    "Robotics fair",
		Date:     now.Add(48 * time.Hour),
		Location: "Lab 2",
		Type:     models.EventAcademic,
	}

	tests := []struct {
		name   string
		mutate func(in *models.EventInput)
		fields []string
	}{
		{"valid", func(in *models.EventInput) {}, nil},
		{"missing title", func(in *models.EventInput) { in.Title = " " }, []string{"title"}},
		{"long title", func(in *models.EventInput) { in.Title = strings.Repeat("a", 101) }, []string{"title"}},
		{"title at limit", func(in *models.EventInput) { in.Title = strings.Repeat("á", 100) }, nil},
		{"long description", func(in *models.EventInput) { in.Description = strings.Repeat("d", 501) }, []string{"description"}},
		{"missing location", func(in *models.EventInput) { in.Location = "" }, []string{"location"}},
		{"long location", func(in *models.EventInput) { in.Location = strings.Repeat("l", 101) }, []string{"location"}},
		{"missing date", func(in *models.EventInput) { in.Date = time.Time{} }, []string{"date"}},
		{"past date", func(in *models.EventInput) { in.Date = now.Add(-time.Minute) }, []string{"date"}},
		{"unknown type", func(in *models.EventInput) { in.Type = "sports" }, []string{"type"}},
		{"several", func(in *models.EventInput) { in.Title = ""; in.Location = "" }, []string{"title", "location"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			got := fieldErrors(t, ValidateEvent(&in, now))
			assert.Len(t, got, len(tt.fields))
			for _, f := range tt.fields {
				assert.Contains(t, got, f)
			}
		})
	}
}

func TestValidateEvent_DefaultsType(t *testing.T) {
	now := time.Now()
	in := models.EventInput{Title: "T", Location: "L", Date: now.Add(time.Hour)}
	require.NoError(t, ValidateEvent(&in, now))
	assert.Equal(t, models.EventAcademic, in.Type)
}

func TestValidationErrors_MessageIsSorted(t *testing.T) {
	err := ValidationErrors{"title": "title is required", "date": "date is required"}
	assert.Equal(t, "invalid input: date: date is required; title: title is required", err.Error())
}
