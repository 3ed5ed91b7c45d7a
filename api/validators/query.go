package validators

import (
	"net/http"
	"strings"
	"time"

	"github.com/bsblogistics/dispatchboard-backend/pkg/dates"
	pkgerrors "github.com/bsblogistics/dispatchboard-backend/pkg/errors"
)

// ParseQueryTime reads a datetime query parameter through the lenient date
// cascade. An absent parameter is not an error; ok reports whether a value
// was present and parsed.
func ParseQueryTime(r *http.Request, key string) (value time.Time, ok bool, err error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return time.Time{}, false, nil
	}
	parsed, parsedOK := dates.ParseDateTime(raw)
	if !parsedOK {
		return time.Time{}, false, pkgerrors.New(pkgerrors.CodeValidation, "query parameter is not a recognizable datetime").
			WithDetails(map[string]any{"field": key, "value": raw})
	}
	return parsed, true, nil
}

func QueryString(r *http.Request, key string) string {
	return SanitizeString(r.URL.Query().Get(key), 200)
}
