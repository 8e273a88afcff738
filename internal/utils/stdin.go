package utils

import (
	"io"
	"os"
	"strings"
)

// ReadTokens reads whitespace separated tokens from in.
// A terminal yields no tokens instead of blocking for input.
func ReadTokens(in io.Reader) ([]string, error) {
	if f, ok := in.(*os.File); ok {
		stat, err := f.Stat()
		if err != nil {
			return nil, err
		}
		if (stat.Mode() & os.ModeCharDevice) != 0 {
			return nil, nil
		}
		// An empty regular file has nothing to read
		if stat.Mode().IsRegular() && stat.Size() == 0 {
			return nil, nil
		}
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return nil, err
	}
	return strings.Fields(string(data)), nil
}
