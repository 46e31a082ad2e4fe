package pagination

// CalculateOffset calculates the database OFFSET for a 1-based page number.
//
// Examples:
//   - Page 1, PerPage 10 -> Offset 0
//   - Page 3, PerPage 10 -> Offset 20
func CalculateOffset(page, perPage int) int {
	return (page - 1) * perPage
}

// CalculateTotalPages returns ceil(total / perPage).
// An empty collection has zero pages.
//
// Examples:
//   - Total 0, PerPage 10 -> 0 pages
//   - Total 10, PerPage 10 -> 1 page
//   - Total 25, PerPage 10 -> 3 pages
func CalculateTotalPages(total int64, perPage int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}
