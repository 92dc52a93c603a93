package http

import (
	"errors"
	"net/http"
)

var ErrParsingError = errors.New("parsing error")

type errorMapping []errorStatus

type errorStatus struct {
	err      error
	httpCode int
}

func (m errorMapping) find(err error) (httpCode int, mapped error, ok bool) {
	if errors.Is(err, ErrParsingError) {
		return http.StatusBadRequest, err, true
	}

	for _, status := range m {
		if errors.Is(err, status.err) {
			return status.httpCode, status.err, true
		}
	}

	return 0, nil, false
}

// WithErrorMapping maps errors returned by handlers to response codes,
// the mapped error text is used as the response body.
func WithErrorMapping(mapping map[int][]error) ServerOption {
	return func(srv *server) {
		for httpCode, errs := range mapping {
			for _, err := range errs {
				srv.errorMapping = append(srv.errorMapping, errorStatus{
					err:      err,
					httpCode: httpCode,
				})
			}
		}
	}
}
