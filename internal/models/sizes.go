package models

import "sort"

// sizeRank is the apparel display order. Anything not listed here sorts
// after all recognized values, keeping its relative position.
var sizeRank = map[string]int{
	"Extra Small": 0,
	"Small":       1,
	"Medium":      2,
	"Large":       3,
	"Extra Large": 4,
	"2XL":         5,
	"3XL":         6,
}

// SizeRank returns the domain position of a size value. Unknown values
// rank after every recognized one.
func SizeRank(value string) int {
	if r, ok := sizeRank[value]; ok {
		return r
	}
	return len(sizeRank)
}

// SortSizes orders sizes in place by the apparel domain order rather than
// alphabetically. The sort is stable so unrecognized values keep their
// incoming order among themselves.
func SortSizes(sizes []Size) {
	sort.SliceStable(sizes, func(i, j int) bool {
		return SizeRank(sizes[i].Value) < SizeRank(sizes[j].Value)
	})
}
