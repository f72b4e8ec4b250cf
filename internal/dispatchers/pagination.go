package dispatchers

import "strconv"

// PageParseFailed is returned when a page or integer token does not parse.
const PageParseFailed = -1

// ParseInteger parses token or returns PageParseFailed. A literal "-1" is
// indistinguishable from a failure; use strconv when negatives matter.
func ParseInteger(token string) int {
	n, err := strconv.Atoi(token)
	if err != nil {
		return PageParseFailed
	}
	return n
}

// PageCount is the number of pages needed for total entries.
func PageCount(total, perPage int) int {
	if perPage <= 0 {
		if total > 0 {
			return 1
		}
		return 0
	}
	return (total + perPage - 1) / perPage
}

// NormalizePage turns a 1-based requested page into a 0-based index clamped
// to the available pages. Zero and one both select the first page.
func NormalizePage(requested, total, perPage int) int {
	if perPage <= 0 {
		return 0
	}

	page := requested
	pages := PageCount(total, perPage)
	if page >= pages {
		page = pages
	} else if page < 0 {
		page = 0
	}
	if page > 0 {
		page--
	}
	return page
}

// PageBounds returns the half-open range [start, end) of entries on page.
func PageBounds(page, total, perPage int) (start, end int) {
	if perPage <= 0 {
		return 0, total
	}

	start = page * perPage
	if start > total {
		start = total
	}
	if start < 0 {
		start = 0
	}
	end = start + perPage
	if end > total {
		end = total
	}
	return start, end
}

// Paginate normalizes requested and returns its bounds.
func Paginate(requested, total, perPage int) (start, end, page int) {
	page = NormalizePage(requested, total, perPage)
	start, end = PageBounds(page, total, perPage)
	return start, end, page
}
