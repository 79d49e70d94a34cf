package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/msomdec/resume-api/internal/domain"
	"github.com/msomdec/resume-api/internal/service"
)

type signUpRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6,bcrypt_len"`
	PasswordConfirm string `json:"passwordConfirm" validate:"required,eqfield=Password"`
	Name            string `json:"name" validate:"required"`
}

type signInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type createResumeRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required,min=150"`
}

// updateResumeRequest uses pointers so an absent field can be told apart
// from one that was sent.
type updateResumeRequest struct {
	Title   *string `json:"title" validate:"omitnil,min=1"`
	Content *string `json:"content" validate:"omitnil,min=150"`
}

// UnmarshalJSON rejects explicit nulls, which would otherwise decode the
// same as an absent field.
func (req *updateResumeRequest) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	for key, raw := range fields {
		if !bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			continue
		}
		for _, name := range []string{"title", "content"} {
			if strings.EqualFold(key, name) {
				return newAPIError(http.StatusBadRequest, validationMessages[name+".string"])
			}
		}
	}

	type plain updateResumeRequest
	return json.Unmarshal(data, (*plain)(req))
}

// validationMessages maps "<json field>.<tag>" to the message sent to clients.
var validationMessages = map[string]string{
	"email.required":           "Email is required.",
	"email.email":              "Email format is invalid.",
	"password.required":        "Password is required.",
	"password.min":             fmt.Sprintf("Password must be at least %d characters.", service.MinPasswordLength),
	"password.bcrypt_len":      fmt.Sprintf("Password must be at most %d bytes.", service.MaxPasswordBytes),
	"passwordConfirm.required": "Password confirmation is required.",
	"passwordConfirm.eqfield":  "Password confirmation does not match the password.",
	"name.required":            "Name is required.",
	"title.required":           "Title is required.",
	"title.min":                "Title must not be empty.",
	"title.string":             "Title must be a string.",
	"content.required":         "Content is required.",
	"content.min":              fmt.Sprintf("Content must be at least %d characters.", domain.MinResumeContentLength),
	"content.string":           "Content must be a string.",
	"body.min_fields":          msgNothingToUpdate,
}

// newValidator builds the validator shared by all request schemas.
// Field names in errors are reported by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// bcrypt only hashes the first 72 bytes, so the limit is in bytes, not runes.
	v.RegisterValidation("bcrypt_len", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= service.MaxPasswordBytes
	})

	v.RegisterStructValidation(func(sl validator.StructLevel) {
		req := sl.Current().Interface().(updateResumeRequest)
		if req.Title == nil && req.Content == nil {
			sl.ReportError(req.Title, "body", "Body", "min_fields", "1")
		}
	}, updateResumeRequest{})

	return v
}

// validateBody decodes the JSON body into T, checks it against T's schema,
// and stores it on the RequestContext.
func validateBody[T any](v *validator.Validate) Interceptor {
	return func(r *http.Request, rc *RequestContext) error {
		var body T
		// An empty body is validated as an empty object.
		if err := readJSON(r, &body); err != nil && !errors.Is(err, io.EOF) {
			var apiErr *apiError
			if errors.As(err, &apiErr) {
				return apiErr
			}
			return newAPIError(http.StatusBadRequest, msgInvalidBody)
		}

		if err := v.Struct(body); err != nil {
			return toValidationError(err)
		}

		rc.Body = &body
		return nil
	}
}

// bodyFrom returns the validated body stored by validateBody.
func bodyFrom[T any](rc *RequestContext) (*T, error) {
	body, ok := rc.Body.(*T)
	if !ok {
		return nil, fmt.Errorf("request body of type %T not set", *new(T))
	}
	return body, nil
}

func toValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("validate request: %w", err)
	}

	fe := verrs[0]
	if msg, ok := validationMessages[fe.Field()+"."+fe.Tag()]; ok {
		return newAPIError(http.StatusBadRequest, msg)
	}
	return newAPIError(http.StatusBadRequest, fmt.Sprintf("%s is invalid.", fe.Field()))
}
