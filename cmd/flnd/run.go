package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"flnd/buffer"
	"flnd/utils/binary"
)

const (
	exitOK    = 0
	exitUsage = 1
	exitIO    = 2
)

type runDeps struct {
	stdout io.Writer
	logger *logrus.Logger
	load   func(string) (*buffer.Buffer, error)
	store  func(*buffer.Buffer, string) error
}

func defaultDeps() runDeps {
	return runDeps{
		stdout: os.Stdout,
		logger: logrus.StandardLogger(),
		load:   buffer.Load,
		store: func(b *buffer.Buffer, path string) error {
			return b.Store(path)
		},
	}
}

// run 依次执行读取、翻转、写回，任何一步失败都直接返回。
func run(args []string, deps runDeps) error {
	opts, err := parseArgs(args)
	if err != nil {
		return err
	}

	buffer.SetLogger(deps.logger)
	log := deps.logger.WithField("module", programName)
	log.WithField("bigEndianHost", binary.IsBigEndian()).
		Debugf("flip %s -> %s (in place: %v)", opts.input, opts.output, opts.inPlace())

	b, err := deps.load(opts.input)
	if err != nil {
		return errors.WithMessage(err, "load failed")
	}

	if b.Padded() {
		log.Debugf("%s has odd length %d, padded to %d", opts.input, b.Len(), b.Capacity())
	}
	b.SwapWords()

	if err = deps.store(b, opts.output); err != nil {
		return errors.WithMessage(err, "store failed")
	}

	return nil
}

// exitCode 将run返回的错误映射为进程退出码，并负责输出提示信息。
func exitCode(err error, deps runDeps) int {
	if err == nil {
		return exitOK
	}

	var usageErr *usageError
	if errors.As(err, &usageErr) {
		deps.logger.WithField("module", programName).Debug(usageErr.Error())
		printUsage(deps.stdout)
		return exitUsage
	}

	entry := deps.logger.WithField("module", programName)
	var ioErr *buffer.IOError
	if errors.As(err, &ioErr) {
		entry = entry.WithField("file", ioErr.Path)
		entry.WithError(ioErr.Err).Errorf("Unable to %s file - %s", ioErr.Op, ioErr.Path)
		return exitIO
	}

	entry.WithError(err).Error("flip endianness failed")
	return exitIO
}
