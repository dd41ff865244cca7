package load_catalog

// Response итог начальной загрузки каталога
type Response struct {
	Services int // число загруженных услуг
	Bookings int // число загруженных бронирований
}
