// utils/pagination.go
package utils

// PageSize is the fixed page cap the backing store enforces per query.
const PageSize = 1000

// PageFunc fetches one page of rows at the given offset. It returns at most
// limit rows; a short page ends the sequence.
type PageFunc[T any] func(limit, offset int) ([]T, error)

// Cursor pages lazily through a filtered query in fixed-size batches. It is
// restartable: Reset rewinds to the first page.
type Cursor[T any] struct {
	fetch  PageFunc[T]
	offset int
	done   bool
}

func NewCursor[T any](fetch PageFunc[T]) *Cursor[T] {
	return &Cursor[T]{fetch: fetch}
}

// Next returns the next page of rows. ok is false once the sequence is
// exhausted.
func (c *Cursor[T]) Next() (rows []T, ok bool, err error) {
	if c.done {
		return nil, false, nil
	}
	rows, err = c.fetch(PageSize, c.offset)
	if err != nil {
		return nil, false, err
	}
	c.offset += len(rows)
	if len(rows) < PageSize {
		c.done = true
	}
	return rows, len(rows) > 0, nil
}

// Reset rewinds the cursor to the first page.
func (c *Cursor[T]) Reset() {
	c.offset = 0
	c.done = false
}

// All drains the cursor into a single slice.
func (c *Cursor[T]) All() ([]T, error) {
	var all []T
	for {
		rows, ok, err := c.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return all, nil
		}
		all = append(all, rows...)
	}
}
