package response

import (
	"encoding/json"
	"net/http"
	"reziro/shared/constant"
	"reziro/shared/failure"
	"reziro/shared/logger"
)

// Data, Error and Message are the three body shapes the API answers with.
type Data[T any] struct {
	Data T `json:"data"`
}

type Error struct {
	Error string `json:"error"`
}

type Message struct {
	Message string `json:"message"`
}

func WithJSON(writer http.ResponseWriter, code int, payload any) {
	write(writer, code, Data[any]{Data: payload})
}

func WithMessage(writer http.ResponseWriter, code int, message string) {
	write(writer, code, Message{Message: message})
}

// WithError answers with the failure's status, 500 for plain errors.
func WithError(writer http.ResponseWriter, err error) {
	write(writer, failure.GetCode(err), Error{Error: err.Error()})
}

func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// write never lets intermediaries cache a body; every body is per account.
func write(writer http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)
		writer.WriteHeader(http.StatusInternalServerError)

		return
	}

	header := writer.Header()
	header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	header.Set(constant.ResponseHeaderCacheControl, constant.CacheControlNoStore)
	writer.WriteHeader(code)

	if _, err := writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
