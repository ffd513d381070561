package util

import (
	"os"

	"golang.org/x/exp/constraints"
)

func MinOf[A constraints.Ordered](first A, rest ...A) A {
	res := first
	for _, v := range rest {
		if v < res {
			res = v
		}
	}
	return res
}

func MaxOf[A constraints.Ordered](first A, rest ...A) A {
	res := first
	for _, v := range rest {
		if v > res {
			res = v
		}
	}
	return res
}

// CreateFile opens path for writing, or stdout when path is "" or "-".
// The returned close function is always safe to call.
func CreateFile(path string) (*os.File, func() error, error) {
	if path == "" || path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
