package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error 是项目内统一的错误类型，Code 对应 HTTP 状态码
type Error struct {
	Message string `json:"message"`
	Cause   error  `json:"-"`
	Code    int    `json:"-"`
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func New(cause error, code int, message string) *Error {
	return &Error{
		Message: message,
		Cause:   cause,
		Code:    code,
	}
}

// Wrap 在保留原始错误的同时附加上下文；nil 输入返回 nil
func Wrap(err error, message string, code int) *Error {
	if err == nil {
		return nil
	}
	return New(err, code, message)
}

func Newf(cause error, code int, format string, args ...any) *Error {
	return New(cause, code, fmt.Sprintf(format, args...))
}

// Is / As 透传标准库，便于调用方只引入本包
func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

// GetCode 返回错误携带的 HTTP 状态码，未知错误统一按 500 处理
func GetCode(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var e *Error
	if As(err, &e) {
		return e.Code
	}
	return http.StatusInternalServerError
}

// RootCause 沿 Unwrap 链找到最底层的错误
func RootCause(err error) error {
	for err != nil {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
	return nil
}
