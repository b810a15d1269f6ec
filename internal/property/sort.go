package property

import (
	"cmp"
	"slices"
	"strings"
)

// comparators orders two listings by one field.
var comparators = map[string]func(a, b Property) int{
	FieldID:          func(a, b Property) int { return cmp.Compare(a.ID, b.ID) },
	FieldManagerName: func(a, b Property) int { return strings.Compare(a.ManagerName, b.ManagerName) },
	FieldAddress:     func(a, b Property) int { return strings.Compare(a.Address, b.Address) },
	FieldRoomsCount:  func(a, b Property) int { return cmp.Compare(a.RoomsCount, b.RoomsCount) },
	FieldTotalArea:   func(a, b Property) int { return cmp.Compare(a.TotalArea, b.TotalArea) },
	FieldPrice:       func(a, b Property) int { return cmp.Compare(a.Price, b.Price) },
}

// IsSortField reports whether name is an accepted sort_by value.
func IsSortField(name string) bool {
	_, ok := comparators[name]
	return ok
}

// isDesc reports whether order asks for descending output.
func isDesc(order string) bool {
	return strings.EqualFold(order, OrderDesc)
}

// sortListings sorts items in place by opts. Ties keep their relative
// order in both directions. Unknown fields leave items untouched.
func sortListings(items []Property, opts ListOptions) {
	compare, ok := comparators[opts.SortBy]
	if !ok {
		return
	}
	if isDesc(opts.Order) {
		slices.SortStableFunc(items, func(a, b Property) int { return compare(b, a) })
		return
	}
	slices.SortStableFunc(items, compare)
}
