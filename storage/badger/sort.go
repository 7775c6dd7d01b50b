package badger

import (
	"cmp"
	"slices"
	"time"

	"github.com/poiesic/wallkit/core"
)

// sortByDate orders items by date, breaking ties by id. Items are expected
// in id order already; an unknown sort order leaves them that way.
func sortByDate[T any](items []*T, order core.SortOrder, key func(*T) (time.Time, core.ID)) {
	var sign int
	switch order {
	case core.SortAscending:
		sign = 1
	case core.SortDescending:
		sign = -1
	default:
		return
	}
	slices.SortFunc(items, func(a, b *T) int {
		da, ia := key(a)
		db, ib := key(b)
		if c := da.Compare(db); c != 0 {
			return sign * c
		}
		return sign * cmp.Compare(ia, ib)
	})
}

func noteSortKey(n *core.Note) (time.Time, core.ID) {
	return n.Date, n.Id
}

func noteCommentSortKey(c *core.NoteComment) (time.Time, core.ID) {
	return c.Date, c.Id
}
