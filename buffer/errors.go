package buffer

import "fmt"

type Op string

const (
	OpOpen  Op = "open"
	OpRead  Op = "read"
	OpWrite Op = "write"
)

// IOError 表示对某个路径的打开、读取或写入失败。
type IOError struct {
	Op   Op
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s failed: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Cause() error {
	return e.Err
}

func (e *IOError) Unwrap() error {
	return e.Err
}
