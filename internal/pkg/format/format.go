package format

import "strconv"

// Comma renders n with thousands separators ("52000" -> "52,000").
func Comma(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-" + s
	}
	return s
}

// Money renders a whole-dollar amount ("$52,000").
func Money(n int64) string {
	if n < 0 {
		return "-$" + Comma(-n)
	}
	return "$" + Comma(n)
}
