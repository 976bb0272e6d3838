package gallery

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/design-lab/pkg/database"
)

var (
	ErrNotFound    = errors.New("게시글을 찾을 수 없습니다.")
	ErrInvalidPost = errors.New("section, category, title은 필수입니다.")
	ErrUnknown     = errors.New("unknown gallery section")
)

// MapHTTPStatus maps gallery errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidPost):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrUnknown):
		return http.StatusForbidden
	case errors.Is(err, database.ErrDisabled):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
