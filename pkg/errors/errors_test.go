package errors

import (
	stdErrors "errors"
	"net/http"
	"testing"
)

func TestMetadataForKnownCodes(t *testing.T) {
	tests := []struct {
		code      Code
		status    int
		appCode   int
		publicMsg string
		detailsOK bool
	}{
		{code: CodeValidation, status: http.StatusBadRequest, appCode: 400, publicMsg: "validation failed", detailsOK: true},
		{code: CodeTimeOrder, status: http.StatusBadRequest, appCode: 40001, publicMsg: "start time must be before end time", detailsOK: true},
		{code: CodeTripConstraint, status: http.StatusUnprocessableEntity, appCode: 40002, publicMsg: "trip constraint violated", detailsOK: true},
		{code: CodeMissingVehicle, status: http.StatusUnprocessableEntity, appCode: 40003, publicMsg: "target vehicle not found", detailsOK: true},
		{code: CodeNotFound, status: http.StatusNotFound, appCode: 404, publicMsg: "resource not found"},
		{code: CodeInternal, status: http.StatusInternalServerError, appCode: 500, publicMsg: "internal server error"},
		{code: CodeDependency, status: http.StatusServiceUnavailable, appCode: 503, publicMsg: "dependency unavailable", detailsOK: true},
	}

	for _, tt := range tests {
		meta := MetadataFor(tt.code)
		if meta.HTTPStatus != tt.status {
			t.Fatalf("code %s expected status %d got %d", tt.code, tt.status, meta.HTTPStatus)
		}
		if meta.AppCode != tt.appCode {
			t.Fatalf("code %s expected app code %d got %d", tt.code, tt.appCode, meta.AppCode)
		}
		if meta.PublicMessage != tt.publicMsg {
			t.Fatalf("code %s expected public message %q got %q", tt.code, tt.publicMsg, meta.PublicMessage)
		}
		if meta.DetailsAllowed != tt.detailsOK {
			t.Fatalf("code %s expected details allowed %v got %v", tt.code, tt.detailsOK, meta.DetailsAllowed)
		}
	}
}

func TestMetadataForUnknownCodeDefaultsToInternal(t *testing.T) {
	meta := MetadataFor("SOMETHING_UNKNOWN")
	if meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected internal status, got %d", meta.HTTPStatus)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stdErrors.New("boom")
	err := Wrap(CodeTripConstraint, cause, "trip is full")

	if !stdErrors.Is(err, cause) {
		t.Fatal("expected wrapped error to match its cause")
	}
	typed := As(err)
	if typed == nil {
		t.Fatal("expected typed error")
	}
	if typed.Code() != CodeTripConstraint {
		t.Fatalf("unexpected code %s", typed.Code())
	}
	if typed.Message() != "trip is full" {
		t.Fatalf("unexpected message %q", typed.Message())
	}
}

func TestDumpCollectsChain(t *testing.T) {
	cause := stdErrors.New("underlying")
	err := Wrap(CodeNotFound, cause, "trip missing")

	d := Dump(err)
	if d.Code != CodeNotFound {
		t.Fatalf("unexpected dump code %s", d.Code)
	}
	if len(d.Chain) != 2 {
		t.Fatalf("expected 2 chain entries, got %d", len(d.Chain))
	}
}
