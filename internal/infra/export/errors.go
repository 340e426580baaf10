package export

import "errors"

var (
	// ErrWriteSheet возвращается при ошибке заполнения листа
	ErrWriteSheet = errors.New("export: failed to write sheet")

	// ErrSave возвращается при ошибке сериализации книги
	ErrSave = errors.New("export: failed to save workbook")
)
