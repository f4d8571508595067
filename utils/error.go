package utils

import (
	"fmt"
)

type ServiceError struct {
	Code uint32
	Msg  string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("ServiceError: code=%d, msg=%s", e.Code, e.Msg)
}

var (
	// business error code: [500000, 600000)
	ErrOpenCsv      = &ServiceError{500001, "open csv error"}
	ErrReadCsv      = &ServiceError{500002, "read csv error"}
	ErrEmptyPointer = &ServiceError{500004, "pointer is nil"}
	ErrParameter    = &ServiceError{500005, "invalid parameter"}
	ErrUnmappedItem = &ServiceError{500007, "item id not mapped"}
	ErrWorkerFailed = &ServiceError{500008, "mining worker failed"}
)

// ParamErrorf 参数校验失败,带上可读信息
func ParamErrorf(format string, args ...interface{}) *ServiceError {
	return &ServiceError{Code: ErrParameter.Code, Msg: fmt.Sprintf(format, args...)}
}

// WorkerErrorf worker执行失败,整体任务失败时对外只报一个聚合错误
func WorkerErrorf(format string, args ...interface{}) *ServiceError {
	return &ServiceError{Code: ErrWorkerFailed.Code, Msg: fmt.Sprintf(format, args...)}
}

// UnmappedItemErrorf 请求了未注册的项编号,属于程序逻辑错误,必须立刻暴露
func UnmappedItemErrorf(id int) *ServiceError {
	return &ServiceError{Code: ErrUnmappedItem.Code, Msg: fmt.Sprintf("item id %d not mapped", id)}
}
