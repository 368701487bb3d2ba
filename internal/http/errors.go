package http

import (
	"errors"
	"net/http"

	"finai/internal/core"
	"finai/internal/session"
)

// ErrMalformedRequest covers bodies and parameters that cannot be decoded.
var ErrMalformedRequest = errors.New("malformed request")

type errorMapping struct {
	target error
	status int
	code   string
}

var errorMappings = []errorMapping{
	{ErrMalformedRequest, http.StatusBadRequest, "malformed_request"},
	{core.ErrUnknownCategory, http.StatusNotFound, "unknown_category"},
	{core.ErrInsufficientFunds, http.StatusConflict, "insufficient_funds"},
	{session.ErrEmailTaken, http.StatusConflict, "email_taken"},
	{core.ErrAuthenticationRequired, http.StatusUnauthorized, "authentication_required"},
	{session.ErrInvalidCredentials, http.StatusUnauthorized, "invalid_credentials"},
	{core.ErrInvalidAmount, http.StatusUnprocessableEntity, "invalid_amount"},
	{core.ErrInvalidRiskTier, http.StatusUnprocessableEntity, "invalid_risk_tier"},
	{core.ErrDescriptionTooLong, http.StatusUnprocessableEntity, "description_too_long"},
	{core.ErrDivisionUndefined, http.StatusUnprocessableEntity, "division_undefined"},
	{session.ErrInvalidEmail, http.StatusUnprocessableEntity, "invalid_email"},
	{session.ErrWeakPassword, http.StatusUnprocessableEntity, "weak_password"},
	{session.ErrEmptyName, http.StatusUnprocessableEntity, "empty_name"},
}

// errorResponseFor maps domain errors to status codes. Unknown errors are
// reported as 500 without leaking their text.
func errorResponseFor(err error) *ResponseBuilder {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return ErrorResponse(m.status, m.code, err.Error())
		}
	}
	return InternalServerError()
}
