package generate

import (
	"strings"
	"time"
)

// startKeywords marks context keys whose dates count as "start-like" for
// end-date generation.
var startKeywords = []string{"signed", "created", "established", "start", "launched"}

// RowContext is the per-row memory that lets later, lower-priority columns
// agree with values generated earlier in the same row. One instance lives
// for exactly one row and is discarded afterwards.
type RowContext struct {
	values map[string]string
	dates  map[string]time.Time
}

func NewRowContext() *RowContext {
	return &RowContext{
		values: make(map[string]string),
		dates:  make(map[string]time.Time),
	}
}

// Set stores a value under a normalized key. NULL markers and empty strings
// are dropped so a lookup never yields an unusable value.
func (c *RowContext) Set(key, value string) {
	if value == "" || value == "NULL" {
		return
	}
	c.values[strings.ToLower(key)] = value
}

func (c *RowContext) Get(key string) (string, bool) {
	v, ok := c.values[strings.ToLower(key)]
	return v, ok
}

func (c *RowContext) SetDate(key string, t time.Time) {
	c.dates[strings.ToLower(key)] = t
}

// MostRecentStartDate returns a date stored under a start-like key. When a
// row carries several (rare in practice) the choice among them is
// arbitrary.
func (c *RowContext) MostRecentStartDate() (time.Time, bool) {
	for key, t := range c.dates {
		for _, kw := range startKeywords {
			if strings.Contains(key, kw) {
				return t, true
			}
		}
	}
	return time.Time{}, false
}
