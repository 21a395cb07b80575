package credstore

import "errors"

var (
	// ErrNotConnected возвращается, когда в хранилище нет записи учетных данных
	// Требуется ручная повторная авторизация через /oauth/google/start
	ErrNotConnected = errors.New("credstore: calendar is not connected")

	// ErrLoad возвращается при ошибке чтения учетных данных
	ErrLoad = errors.New("credstore: failed to load credentials")

	// ErrSave возвращается при ошибке сохранения учетных данных
	ErrSave = errors.New("credstore: failed to save credentials")
)
