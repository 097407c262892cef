package services

// TotalPrice derives the stay total: nights x unit price x quantity.
// Purely arithmetic; it never consults availability. The server recomputes
// it at booking time and ignores whatever total the client sent.
func TotalPrice(nights int, unitPrice int64, quantity int) int64 {
	if nights < 0 {
		nights = 0
	}
	if quantity < 1 {
		quantity = 1
	}
	return int64(nights) * unitPrice * int64(quantity)
}
