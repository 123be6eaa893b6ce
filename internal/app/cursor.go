package app

// floorDiv divides rounding toward negative infinity so that pointer positions
// left of or above the window map to negative cells rather than cell zero.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
