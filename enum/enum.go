package enum

import "sort"

// Enum keeps a two-way relationship between enumeration values and their names
type Enum[T comparable] struct {
	byIndex map[T]string
	byName  map[string]T
}

// New creates an empty enumeration
func New[T comparable]() *Enum[T] {
	return &Enum[T]{
		byIndex: make(map[T]string),
		byName:  make(map[string]T),
	}
}

// Add binds an enumeration value to its name
func (e *Enum[T]) Add(index T, name string) *Enum[T] {
	e.byIndex[index] = name
	e.byName[name] = index
	return e
}

// GetByString returns the enumeration value bound to the name
func (e *Enum[T]) GetByString(name string) (T, bool) {
	index, ok := e.byName[name]
	return index, ok
}

// GetByIndex returns the name bound to the enumeration value
func (e *Enum[T]) GetByIndex(index T) (string, bool) {
	name, ok := e.byIndex[index]
	return name, ok
}

// StringKeys returns all names of the enumeration in sorted order
func (e *Enum[T]) StringKeys() []string {

	list := make([]string, 0, len(e.byName))
	for k := range e.byName {
		list = append(list, k)
	}
	sort.Strings(list)

	return list
}
