package utils

// PageCount is the number of pages needed for total rows.
func PageCount(total int64, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

// PageOffset converts a 1-based page into a row offset. Pages below 1 read
// from the start.
func PageOffset(page, perPage int) int {
	if page < 1 || perPage < 1 {
		return 0
	}
	return (page - 1) * perPage
}

// ClampPerPage falls back to def when perPage is unset and caps it at limit.
func ClampPerPage(perPage, def, limit int) int {
	switch {
	case perPage < 1:
		return def
	case perPage > limit:
		return limit
	}
	return perPage
}
