// Package forms validates raw reader input before it reaches storage or
// a side effect. Validation is pure: no database access, no mail.
package forms

import (
	"fmt"
	"net/url"
	"strings"

	"inkwell/internal/models"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// FieldError pins a validation failure to a single form field.
type FieldError struct {
	Field  string
	Reason string
}

// ValidationError carries every failed field so the caller can re-render
// the form with inline messages.
type ValidationError []FieldError

func (v ValidationError) Error() string {
	parts := make([]string, len(v))
	for i, fe := range v {
		parts[i] = fe.Field + ": " + fe.Reason
	}
	return "invalid form: " + strings.Join(parts, "; ")
}

// Has reports whether the named field failed.
func (v ValidationError) Has(field string) bool {
	return v.Reason(field) != ""
}

// Reason returns the failure message for the named field, or "".
func (v ValidationError) Reason(field string) string {
	for _, fe := range v {
		if fe.Field == field {
			return fe.Reason
		}
	}
	return ""
}

// EmailPostForm captures a "share this post by email" submission.
// Sending the mail is the mail service's job, not the form's.
type EmailPostForm struct {
	Name     string `form:"name" validate:"required,max=25"`
	Email    string `form:"email" validate:"required,email"`
	To       string `form:"to" validate:"required,email"`
	Comments string `form:"comments"`
}

// CommentForm captures the reader-supplied subset of a comment. PostID,
// Active and timestamps are assigned by the system, never bound here.
type CommentForm struct {
	Name  string `form:"name" validate:"required,max=80"`
	Email string `form:"email" validate:"required,email"`
	Body  string `form:"body" validate:"required"`
}

// Comment builds an unsaved comment for the target post. Active defaults
// true; timestamps are left for the store to assign at persistence.
func (f *CommentForm) Comment(post *models.Post) models.Comment {
	return models.Comment{
		PostID: post.ID,
		Name:   f.Name,
		Email:  f.Email,
		Body:   f.Body,
		Active: true,
	}
}

// ParseEmailPostForm binds and validates raw form values.
func ParseEmailPostForm(values url.Values) (*EmailPostForm, error) {
	form := &EmailPostForm{
		Name:     strings.TrimSpace(values.Get("name")),
		Email:    strings.TrimSpace(values.Get("email")),
		To:       strings.TrimSpace(values.Get("to")),
		Comments: strings.TrimSpace(values.Get("comments")),
	}
	if err := check(form); err != nil {
		return nil, err
	}
	return form, nil
}

// ParseCommentForm binds and validates raw form values.
func ParseCommentForm(values url.Values) (*CommentForm, error) {
	form := &CommentForm{
		Name:  strings.TrimSpace(values.Get("name")),
		Email: strings.TrimSpace(values.Get("email")),
		Body:  strings.TrimSpace(values.Get("body")),
	}
	if err := check(form); err != nil {
		return nil, err
	}
	return form, nil
}

func check(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	out := make(ValidationError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:  strings.ToLower(fe.Field()),
			Reason: reason(fe),
		})
	}
	return out
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "enter a valid email address"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return "invalid value"
	}
}
