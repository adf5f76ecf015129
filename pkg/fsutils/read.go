package fsutils

import (
	"io"
	"os"
)

// ReadHead reads at most max bytes from the start of the file.
// max <= 0 reads the whole file.
func ReadHead(filePath string, max int) (data []byte, err error) {
	if max <= 0 {
		return os.ReadFile(filePath)
	}
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	data = make([]byte, max)
	n, err := io.ReadFull(f, data)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		err = nil
	}
	return data[:n], err
}
