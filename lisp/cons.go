package lisp

// ListBuilder constructs a proper list by appending to its end.
type ListBuilder struct {
	front *LVal
	back  *consData
}

// NewListBuilder returns an empty ListBuilder.
func NewListBuilder() *ListBuilder {
	return &ListBuilder{}
}

// List returns a list with the elements appended so far.  If Append is called
// after List the value returned by List will observe the new elements, so List
// should only be called once the list is complete.
func (b *ListBuilder) List() *LVal {
	if b.front == nil {
		return Nil()
	}
	return b.front
}

// Append adds elements to the end of the list.
func (b *ListBuilder) Append(v ...*LVal) {
	for i := range v {
		cell := Cons(v[i], Nil())
		if b.front == nil {
			b.front = cell
		} else {
			b.back.cdr = cell
		}
		b.back = cell.cons
	}
}

// SliceList collects the elements of lis into a slice.  SliceList returns
// false if lis is not a proper list (nil, or a chain of cons cells terminated
// by nil).
func SliceList(lis *LVal) ([]*LVal, bool) {
	var s []*LVal
	for {
		switch lis.typ {
		case LNil:
			return s, true
		case LCons:
			s = append(s, lis.cons.car)
			lis = lis.cons.cdr
		default:
			return s, false
		}
	}
}

// Len returns the length of list lis.  Len returns false if lis is not a
// proper list.
func Len(lis *LVal) (int, bool) {
	n := 0
	for lis.typ == LCons {
		n++
		lis = lis.cons.cdr
	}
	return n, lis.typ == LNil
}
