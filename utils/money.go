package utils

import "strconv"

// FormatVND renders an amount the way the receipts do: 45000 -> "45.000đ".
func FormatVND(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, d)
	}
	s := string(out) + "đ"
	if neg {
		return "-" + s
	}
	return s
}
