package domain

import (
	"fmt"
	"strconv"
)

// Job is an opaque client-owned document kept in the jobs blob. The service
// only interprets its id field.
type Job map[string]any

// ID returns the stringified id field, or "" when absent. Numeric ids are
// rendered without a decimal point so "1" and 1 address the same job.
func (j Job) ID() string {
	v, ok := j["id"]
	if !ok || v == nil {
		return ""
	}
	switch id := v.(type) {
	case string:
		return id
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	default:
		return fmt.Sprint(id)
	}
}
