package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/huangsam/prospect/internal/contract"
)

// Criteria describes one business discovery request. All fields are optional;
// an empty Criteria degrades to an organization-only query rather than an
// unconstrained search. Malformed values are programming errors and fail the
// call immediately.
type Criteria struct {
	Industry   string // topic filter
	Technology string // language filter
	Location   string // quoted location filter
	Company    string // name/description substring filter
	MinStars   int    // lower-bound star filter
	Limit      int    // result cap; 0 means DefaultResultLimit
}

// Validate checks the criteria at the boundary.
func (c Criteria) Validate() error {
	if c.MinStars < 0 {
		return fmt.Errorf("min stars cannot be negative (received %d)", c.MinStars)
	}
	if c.Limit < 0 || c.Limit > contract.MaxResultLimit {
		return fmt.Errorf("limit must be between 0 and %d (received %d)", contract.MaxResultLimit, c.Limit)
	}
	return nil
}

// EffectiveLimit returns the result cap with the default applied.
func (c Criteria) EffectiveLimit() int {
	if c.Limit == 0 {
		return contract.DefaultResultLimit
	}
	return c.Limit
}

// BuildBusinessQuery translates criteria into a single query string for the
// remote index. Clause order is fixed (industry, technology, location,
// company, minStars) to keep query strings deterministic. When no recognized
// key is present the query restricts to organization-type accounts so the
// search degrades gracefully.
func BuildBusinessQuery(c Criteria) (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}

	var clauses []string
	if c.Industry != "" {
		clauses = append(clauses, "topic:"+c.Industry)
	}
	if c.Technology != "" {
		clauses = append(clauses, "language:"+c.Technology)
	}
	if c.Location != "" {
		clauses = append(clauses, fmt.Sprintf("location:%q", c.Location))
	}
	if c.Company != "" {
		clauses = append(clauses, c.Company+" in:name,description")
	}
	if c.MinStars > 0 {
		clauses = append(clauses, fmt.Sprintf("stars:>=%d", c.MinStars))
	}

	if len(clauses) == 0 {
		return "type:org", nil
	}
	return strings.Join(clauses, " "), nil
}

// BuildTrendQuery composes a created-after date filter, optionally combined
// with a language filter.
func BuildTrendQuery(language string, windowStart time.Time) string {
	query := "created:>" + windowStart.Format("2006-01-02")
	if language != "" {
		query += " language:" + language
	}
	return query
}
