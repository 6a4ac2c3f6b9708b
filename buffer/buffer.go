package buffer

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"flnd/utils/binary"
)

const (
	_fileMode = 0666
)

var _logger logrus.FieldLogger = logrus.StandardLogger()

// SetLogger 替换包内日志输出，传nil恢复为logrus的标准logger。
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		l = logrus.StandardLogger()
	}
	_logger = l
}

func moduleLog() *logrus.Entry {
	return _logger.WithField("module", "buffer")
}

// Buffer 持有整个文件的内容，长度向上补齐为偶数，补齐字节为0。
type Buffer struct {
	data   []byte
	length int
}

// New 复制p并补齐到偶数长度。
func New(p []byte) *Buffer {
	data := make([]byte, roundUp(len(p)))
	copy(data, p)

	return &Buffer{
		data:   data,
		length: len(p),
	}
}

// Load 将path指向的文件完整读入内存。
// 文件在返回前已经关闭，之后即使覆盖写回同一路径也是安全的。
func Load(path string) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: OpOpen, Path: path, Err: errors.WithStack(err)}
	}
	defer f.Close()

	p, err := io.ReadAll(f)
	if err != nil {
		return nil, &IOError{Op: OpRead, Path: path, Err: errors.Wrap(err, "read file failed")}
	}

	b := New(p)
	moduleLog().Debugf("loaded %s: %d bytes, capacity %d", path, b.Len(), b.Capacity())
	return b, nil
}

// Len 为源文件的实际字节数。
func (b *Buffer) Len() int {
	return b.length
}

func (b *Buffer) Capacity() int {
	return len(b.data)
}

func (b *Buffer) Padded() bool {
	return len(b.data) != b.length
}

// Bytes 返回包括补齐字节在内的全部内容，不做复制。
func (b *Buffer) Bytes() []byte {
	return b.data
}

// SwapWords 原地交换每一对相邻字节。
func (b *Buffer) SwapWords() {
	binary.SwapWords(b.data)
}

// Store 截断或创建path，并写入Capacity()个字节。
// 写入阶段出错时，若目标是普通文件则将其删除，避免留下半截内容。
func (b *Buffer) Store(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, _fileMode)
	if err != nil {
		return &IOError{Op: OpOpen, Path: path, Err: errors.WithStack(err)}
	}

	if err = write(f, b.data); err != nil {
		discard(f)
		return &IOError{Op: OpWrite, Path: path, Err: err}
	}

	moduleLog().Debugf("stored %s: %d bytes", path, len(b.data))
	return nil
}

func write(f *os.File, p []byte) error {
	n, err := f.Write(p)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	if err != nil {
		_ = f.Close()
		return errors.Wrap(err, "write file failed")
	}

	// 字符设备（如/dev/null）不支持fsync
	if isRegular(f.Name()) {
		if err = f.Sync(); err != nil {
			_ = f.Close()
			return errors.Wrap(err, "sync file failed")
		}
	}

	if err = f.Close(); err != nil {
		return errors.Wrap(err, "close file failed")
	}

	return nil
}

// discard 删除写了一半的普通文件，设备等特殊文件保持不动。
func discard(f *os.File) {
	if !isRegular(f.Name()) {
		return
	}

	if err := os.Remove(f.Name()); err != nil {
		moduleLog().Warnf("remove partial file %s failed: %v", f.Name(), err)
	}
}

func isRegular(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func roundUp(n int) int {
	return n + n%2
}
