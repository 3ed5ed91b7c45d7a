package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
)

type Code string

const (
	CodeValidation     Code = "VALIDATION_ERROR"
	CodeTimeOrder      Code = "TIME_ORDER_ERROR"
	CodeTripConstraint Code = "TRIP_CONSTRAINT_VIOLATION"
	CodeMissingVehicle Code = "MISSING_VEHICLE"
	CodeNotFound       Code = "NOT_FOUND"
	CodeInternal       Code = "INTERNAL_ERROR"
	CodeDependency     Code = "DEPENDENCY_ERROR"
)

// Metadata maps a code onto the transport envelope: the HTTP status plus the
// numeric app code the planner frontend switches on (0 = ok, 404 = not found,
// 40001/40002/40003 = domain validation failures).
type Metadata struct {
	HTTPStatus     int
	AppCode        int
	PublicMessage  string
	DetailsAllowed bool
}

var metadataByCode = map[Code]Metadata{
	CodeValidation: {
		HTTPStatus:     http.StatusBadRequest,
		AppCode:        400,
		PublicMessage:  "validation failed",
		DetailsAllowed: true,
	},
	CodeTimeOrder: {
		HTTPStatus:     http.StatusBadRequest,
		AppCode:        40001,
		PublicMessage:  "start time must be before end time",
		DetailsAllowed: true,
	},
	CodeTripConstraint: {
		HTTPStatus:     http.StatusUnprocessableEntity,
		AppCode:        40002,
		PublicMessage:  "trip constraint violated",
		DetailsAllowed: true,
	},
	CodeMissingVehicle: {
		HTTPStatus:     http.StatusUnprocessableEntity,
		AppCode:        40003,
		PublicMessage:  "target vehicle not found",
		DetailsAllowed: true,
	},
	CodeNotFound: {
		HTTPStatus:     http.StatusNotFound,
		AppCode:        404,
		PublicMessage:  "resource not found",
		DetailsAllowed: false,
	},
	CodeInternal: {
		HTTPStatus:     http.StatusInternalServerError,
		AppCode:        500,
		PublicMessage:  "internal server error",
		DetailsAllowed: false,
	},
	CodeDependency: {
		HTTPStatus:     http.StatusServiceUnavailable,
		AppCode:        503,
		PublicMessage:  "dependency unavailable",
		DetailsAllowed: true,
	},
}

func MetadataFor(code Code) Metadata {
	if meta, ok := metadataByCode[code]; ok {
		return meta
	}
	return metadataByCode[CodeInternal]
}

type Error struct {
	code    Code
	message string
	details any
	cause   error
}

func New(code Code, message string) *Error {
	return &Error{code: code, message: message}
}

func Wrap(code Code, err error, message string) *Error {
	if err == nil {
		return New(code, message)
	}
	return &Error{code: code, message: message, cause: err}
}

func (e *Error) Code() Code {
	if e == nil {
		return CodeInternal
	}
	return e.code
}

func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

func (e *Error) Details() any {
	if e == nil {
		return nil
	}
	return e.details
}

func (e *Error) WithDetails(details any) *Error {
	if e == nil {
		return nil
	}
	e.details = details
	return e
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

func As(err error) *Error {
	if err == nil {
		return nil
	}
	var typed *Error
	if stdErrors.As(err, &typed) {
		return typed
	}
	return nil
}
