package internal

import "math"

// Precision is the number of decimal places every cost is rounded to.
const Precision = 3

var scale = math.Pow(10, Precision)

// Round rounds a cost to Precision decimal places.
func Round(value float64) float64 {
	return math.Round(value*scale) / scale
}

// Euclidean returns the straight-line distance between two grid points.
func Euclidean(fromX, fromY, toX, toY int) float64 {
	dx, dy := float64(toX-fromX), float64(toY-fromY)
	return math.Sqrt(dx*dx + dy*dy)
}

// Reverse reverses a slice in place.
func Reverse[T any](items []T) {
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
}
