package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrConflict
	ErrConfiguration
	ErrUpstream
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:        "success",
	ErrInternal:       "error internal",
	ErrNotFound:       "data not found",
	ErrInvalidRequest: "invalid request",
	ErrConflict:       "resource already exists",
	ErrConfiguration:  "service not configured",
	ErrUpstream:       "upstream request failed",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:        http.StatusOK,
	ErrInternal:       http.StatusInternalServerError,
	ErrNotFound:       http.StatusNotFound,
	ErrInvalidRequest: http.StatusBadRequest,
	ErrConflict:       http.StatusConflict,
	ErrConfiguration:  http.StatusInternalServerError,
	ErrUpstream:       http.StatusInternalServerError,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:        "0000",
	ErrInternal:       "0001",
	ErrNotFound:       "0002",
	ErrInvalidRequest: "0003",
	ErrConflict:       "0004",
	ErrConfiguration:  "0005",
	ErrUpstream:       "0006",
}
