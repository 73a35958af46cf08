package ui

import "slices"

// FocusManager rotates focus across the fields of a form.
type FocusManager struct {
	Current  string   // ID of the focused field
	Order    []string // tab order
	OnChange func(from, to string)
}

// NewFocusManager focuses the first of order.
func NewFocusManager(order ...string) *FocusManager {
	f := &FocusManager{Order: order}
	if len(order) > 0 {
		f.Current = order[0]
	}
	return f
}

// Index returns the position of the focused field, or -1.
func (f *FocusManager) Index() int {
	return slices.Index(f.Order, f.Current)
}

// Next focuses the following field, wrapping at the end.
func (f *FocusManager) Next() string {
	return f.step(1)
}

// Prev focuses the preceding field, wrapping at the start.
func (f *FocusManager) Prev() string {
	return f.step(-1)
}

func (f *FocusManager) step(delta int) string {
	n := len(f.Order)
	if n == 0 {
		return ""
	}
	idx := f.Index()
	if idx < 0 && delta < 0 {
		idx = 0
	}
	f.move(f.Order[((idx+delta)%n+n)%n])
	return f.Current
}

// SetFocus focuses id. Returns false if id is not in Order.
func (f *FocusManager) SetFocus(id string) bool {
	if !slices.Contains(f.Order, id) {
		return false
	}
	f.move(id)
	return true
}

func (f *FocusManager) move(to string) {
	from := f.Current
	f.Current = to
	if f.OnChange != nil && from != to {
		f.OnChange(from, to)
	}
}
