package load_catalog

import "errors"

var (
	// ErrPartialLoad возвращается, когда хотя бы одна из начальных загрузок
	// не удалась; успешно загруженные коллекции при этом уже заменены
	ErrPartialLoad = errors.New("load_catalog: partial load")
)
