package builders

import "strconv"

// Tham số số không parse được sẽ bị bỏ qua thay vì ép về 0: filter
// tương ứng đơn giản là không được áp dụng, request không bị từ chối.

func parseNumber(s string) *float64 {
	if s == "" {
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &n
}

func parseInt(s string) *int {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}
