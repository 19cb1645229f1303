package ui

import "strings"

// Paginate packs words into display rows no wider than width, then groups
// the rows into pages of rowsPerPage. Words keep their input order and a
// trailing space separates them within a row. An empty word list yields a
// single empty page so callers can always render page zero.
func Paginate(words []string, width, rowsPerPage int) [][]string {
	pages := [][]string{{}}
	var row strings.Builder

	flush := func() {
		if len(pages[len(pages)-1]) == rowsPerPage {
			pages = append(pages, []string{})
		}
		last := len(pages) - 1
		pages[last] = append(pages[last], strings.TrimRight(row.String(), " "))
		row.Reset()
	}

	for _, w := range words {
		if row.Len()+len(w) >= width {
			flush()
		}
		row.WriteString(w)
		row.WriteByte(' ')
	}
	if row.Len() > 0 {
		flush()
	}
	return pages
}
