package service

import "github.com/avc/plantstore/internal/domain"

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// normalizePage подставляет значения по умолчанию и ограничивает размер страницы
func normalizePage(page, limit int) (int, int, error) {
	if page < 0 || limit < 0 {
		return 0, 0, domain.ErrInvalidPagination
	}
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit, nil
}
