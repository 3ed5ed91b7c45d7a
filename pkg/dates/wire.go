package dates

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Time is a timestamp that crosses the HTTP boundary in the canonical
// "2006-01-02 15:04:05" form but accepts any layout of the parse cascade on
// the way in.
type Time struct {
	time.Time
}

func At(ts time.Time) Time {
	return Time{Time: ts}
}

func (t Time) MarshalJSON() ([]byte, error) {
	return json.Marshal(FormatDateTime(t.Time))
}

func (t *Time) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if strings.TrimSpace(raw) == "" {
		*t = Time{}
		return nil
	}
	ts, ok := ParseDateTime(raw)
	if !ok {
		return fmt.Errorf("unrecognized timestamp %q", raw)
	}
	t.Time = ts
	return nil
}
