package repository

import (
	"context"
	"io"
)

// StorageRepository определяет методы для работы с объектным хранилищем
type StorageRepository interface {
	// Upload загружает объект и возвращает его публичный URL
	Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)

	// Delete удаляет объект
	Delete(ctx context.Context, objectName string) error
}
