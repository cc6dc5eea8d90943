package swc

import (
	"io"
	"os"

	"github.com/midbel/rw"
)

func unwrapFile(r io.Reader) (*os.File, bool) {
	if f, ok := r.(*os.File); ok {
		return f, ok
	}
	u, ok := r.(rw.UnwrapReader)
	if !ok {
		return nil, ok
	}
	f, ok := u.Unwrap().(*os.File)
	return f, ok
}
