package processor

import (
	"errors"
	"fmt"
)

// 定义基础错误类型，调用方用 errors.Is 判别
var (
	// ErrUnsupportedFormat MIME类型既不是PDF也不是DOCX
	ErrUnsupportedFormat = errors.New("不支持的文档格式")
	// ErrCorruptDocument 字节流无法被对应格式的读取器解析
	ErrCorruptDocument = errors.New("文档损坏或无法解析")
	// ErrEmptyDocument 文档解析成功但提取不到任何文本
	ErrEmptyDocument = errors.New("文档中没有可提取的文本")
)

// ExtractError 包含详细上下文的提取错误
type ExtractError struct {
	Filename string
	Op       string
	BaseErr  error
	Detail   string
}

func (e *ExtractError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (操作:%s, 文件:%s): %s", e.BaseErr, e.Op, e.Filename, e.Detail)
	}
	return fmt.Sprintf("%s (操作:%s, 文件:%s)", e.BaseErr, e.Op, e.Filename)
}

func (e *ExtractError) Unwrap() error {
	return e.BaseErr
}

// Is 实现 errors.Is 接口以支持错误比较
func (e *ExtractError) Is(target error) bool {
	return errors.Is(e.BaseErr, target)
}

// 错误构造函数

func NewUnsupportedFormatError(filename, detail string) error {
	return &ExtractError{
		Filename: filename,
		Op:       "convert",
		BaseErr:  ErrUnsupportedFormat,
		Detail:   detail,
	}
}

func NewCorruptDocumentError(filename, detail string) error {
	return &ExtractError{
		Filename: filename,
		Op:       "convert",
		BaseErr:  ErrCorruptDocument,
		Detail:   detail,
	}
}

func NewEmptyDocumentError(filename string) error {
	return &ExtractError{
		Filename: filename,
		Op:       "extract",
		BaseErr:  ErrEmptyDocument,
	}
}
