package responses

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/bsblogistics/dispatchboard-backend/pkg/errors"
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decoding envelope: %v", err)
	}
	return env
}

func TestWriteSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteSuccess(rec, map[string]string{"id": "trip-1"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Code != 0 || env.Message != "ok" {
		t.Fatalf("expected code 0 message ok, got %d %q", env.Code, env.Message)
	}
	if string(env.Data) != `{"id":"trip-1"}` {
		t.Fatalf("unexpected data %s", env.Data)
	}
}

func TestWriteErrorMapsDomainCodes(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   int
		wantMsg    string
	}{
		{
			name:       "time order",
			err:        pkgerrors.New(pkgerrors.CodeTimeOrder, "trip start must be before trip end"),
			wantStatus: http.StatusBadRequest,
			wantCode:   40001,
			wantMsg:    "trip start must be before trip end",
		},
		{
			name:       "trip constraint",
			err:        pkgerrors.New(pkgerrors.CodeTripConstraint, "trip already holds the maximum number of tasks"),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   40002,
			wantMsg:    "trip already holds the maximum number of tasks",
		},
		{
			name:       "missing vehicle",
			err:        pkgerrors.New(pkgerrors.CodeMissingVehicle, "target vehicle does not exist"),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   40003,
			wantMsg:    "target vehicle does not exist",
		},
		{
			name:       "not found",
			err:        pkgerrors.New(pkgerrors.CodeNotFound, "trip not found"),
			wantStatus: http.StatusNotFound,
			wantCode:   404,
			wantMsg:    "trip not found",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(context.Background(), nil, rec, tc.err)

			if rec.Code != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, rec.Code)
			}
			env := decodeEnvelope(t, rec)
			if env.Code != tc.wantCode {
				t.Fatalf("expected code %d, got %d", tc.wantCode, env.Code)
			}
			if env.Message != tc.wantMsg {
				t.Fatalf("expected message %q, got %q", tc.wantMsg, env.Message)
			}
		})
	}
}

func TestWriteErrorMasksInternalMessages(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(context.Background(), nil, rec, errors.New("sensitive failure detail"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Code != 500 {
		t.Fatalf("expected code 500, got %d", env.Code)
	}
	if env.Message != "internal server error" {
		t.Fatalf("internal details leaked: %q", env.Message)
	}
}
