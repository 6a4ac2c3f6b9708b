package binary

import "golang.org/x/sys/cpu"

func IsBigEndian() bool {
	return cpu.IsBigEndian
}
