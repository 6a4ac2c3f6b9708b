package buffer

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// limitFileSize 临时限制本进程可写的文件大小，超出部分的write返回EFBIG。
func limitFileSize(t *testing.T, size uint64) {
	t.Helper()

	var old unix.Rlimit
	require.NoError(t, unix.Getrlimit(unix.RLIMIT_FSIZE, &old))

	signal.Ignore(syscall.SIGXFSZ)
	limit := old
	limit.Cur = size
	require.NoError(t, unix.Setrlimit(unix.RLIMIT_FSIZE, &limit))

	t.Cleanup(func() {
		_ = unix.Setrlimit(unix.RLIMIT_FSIZE, &old)
		signal.Reset(syscall.SIGXFSZ)
	})
}

func TestBuffer_StoreFailedWriteRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.bin")
	limitFileSize(t, 2)

	err := New([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}).Store(path)
	require.Error(t, err)

	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, OpWrite, ioErr.Op)
	assert.Equal(t, path, ioErr.Path)
	assert.True(t, errors.Is(err, unix.EFBIG))

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestBuffer_StoreFailedWriteInPlaceRemovesSource(t *testing.T) {
	path := writeFile(t, "data.bin", []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06})

	b, err := Load(path)
	require.NoError(t, err)
	b.SwapWords()

	limitFileSize(t, 2)

	err = b.Store(path)
	require.Error(t, err)

	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, OpWrite, ioErr.Op)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
