//go:build unix

package mmap

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

func osMap(f *os.File, n int) ([]byte, func([]byte) error, error) {
	data, err := unix.Mmap(int(f.Fd()), 0, n, unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, err
	}
	return data, unix.Munmap, nil
}

var advice = map[Hint]int{
	HintNormal:     unix.MADV_NORMAL,
	HintSequential: unix.MADV_SEQUENTIAL,
	HintRandom:     unix.MADV_RANDOM,
	HintWillNeed:   unix.MADV_WILLNEED,
}

func osAdvise(b []byte, h Hint) error {
	if len(b) == 0 {
		return nil
	}
	if err := unix.Madvise(b, advice[h]); err != nil && !errors.Is(err, unix.EINVAL) {
		return err
	}
	return nil
}
