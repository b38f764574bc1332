package errors

import "net/http"

var (
	// ErrNoData 表示统计窗口内没有任何消息，属于预期内的终止结果
	ErrNoData = New(nil, http.StatusNotFound, "指定日期范围内没有聊天记录")

	ErrReportNotReady    = New(nil, http.StatusServiceUnavailable, "report not ready")
	ErrUnsupportedFormat = New(nil, http.StatusBadRequest, "unsupported output format")
)

func InvalidArg(arg string) *Error {
	return Newf(nil, http.StatusBadRequest, "invalid argument: %s", arg)
}

func ConfigInvalid(key string, cause error) *Error {
	return Newf(cause, http.StatusBadRequest, "invalid config %s", key)
}

func SourceOpen(path string, cause error) *Error {
	return Newf(cause, http.StatusInternalServerError, "open source %s failed", path)
}

func SourceDecode(cause error) *Error {
	return New(cause, http.StatusBadRequest, "decode chat export failed")
}

func SegmenterInit(name string, cause error) *Error {
	return Newf(cause, http.StatusInternalServerError, "word segmenter %s unavailable", name)
}
