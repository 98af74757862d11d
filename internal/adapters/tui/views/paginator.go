package views

const defaultPageSize = 10

// Page is the window of a list shown around the cursor
type Page struct {
	Start  int // first visible index
	End    int // one past the last visible index
	Number int // 1-based
	Count  int // total number of pages, at least 1
}

// PageFor returns the page holding cursor in a list of total items. The
// cursor is clamped to the list bounds.
func PageFor(cursor, total, size int) Page {
	if size <= 0 {
		size = defaultPageSize
	}
	if total <= 0 {
		return Page{Number: 1, Count: 1}
	}
	cursor = min(max(cursor, 0), total-1)

	start := (cursor / size) * size
	return Page{
		Start:  start,
		End:    min(start+size, total),
		Number: start/size + 1,
		Count:  (total + size - 1) / size,
	}
}
