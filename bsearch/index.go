package bsearch

import "strconv"

// Index is the result of a search: a position in the searched collection, or
// nothing. The zero value means not found.
type Index struct {
	pos int
	ok  bool
}

func found(pos int) Index {
	return Index{pos: pos, ok: true}
}

// Get returns the position and whether the target was found.
func (i Index) Get() (int, bool) {
	return i.pos, i.ok
}

// Found reports whether the target was found.
func (i Index) Found() bool {
	return i.ok
}

// Or returns the position, or def if the target was not found.
func (i Index) Or(def int) int {
	if !i.ok {
		return def
	}
	return i.pos
}

// Err returns ErrNotFound if the target was not found, nil otherwise.
func (i Index) Err() error {
	if !i.ok {
		return ErrNotFound
	}
	return nil
}

func (i Index) String() string {
	if !i.ok {
		return "not found"
	}
	return strconv.Itoa(i.pos)
}
