package utils

import (
	"net/http"
	"strconv"
)

// PageParams contains skip/limit pagination parameters
type PageParams struct {
	Skip  int
	Limit int
}

// DefaultLimit is the default number of items per page
const DefaultLimit = 100

// MaxLimit is the maximum number of items per page
const MaxLimit = 1000

// ParsePageParams parses skip/limit pagination parameters from the
// request query string, clamping them to valid ranges.
func ParsePageParams(r *http.Request) PageParams {
	skip := parseIntQuery(r.URL.Query().Get("skip"), 0)
	limit := parseIntQuery(r.URL.Query().Get("limit"), DefaultLimit)

	if skip < 0 {
		skip = 0
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return PageParams{
		Skip:  skip,
		Limit: limit,
	}
}

func parseIntQuery(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return i
}
