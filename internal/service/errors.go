package service

import (
	"errors"

	"github.com/avc/plantstore/internal/domain"
)

// errSkip прерывает смену статуса без изменений, транзакция при этом фиксируется
var errSkip = errors.New("status change skipped")

// isDomainError сообщает, что ошибка относится к предметной области.
// Такие ошибки возвращаются без обертки, чтобы обработчики показали причину пользователю.
func isDomainError(err error) bool {
	var de *domain.Error
	return errors.As(err, &de)
}
