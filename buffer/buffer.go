// Package buffer loads whole files into memory and renders their bytes as
// hexadecimal text.
package buffer

import (
	"encoding/hex"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/corpix/transcoder/errors"
)

// Load reads the whole file at path.
// On failure it returns an empty, non-nil buffer along with the error so
// callers are free to carry on with no data.
func Load(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return []byte{}, errors.Wrapf(err, "failed to open %q", path)
	}
	defer f.Close()

	buf, err := io.ReadAll(f)
	if err != nil {
		return buf, errors.Wrapf(err, "failed to read %q", path)
	}
	return buf, nil
}

// Hex renders every byte as lowercase unpadded hexadecimal separated by a
// single space, so 0x05 0xab becomes "5 ab".
func Hex(buf []byte) string {
	var s strings.Builder
	for n, b := range buf {
		if n > 0 {
			s.WriteByte(' ')
		}
		s.WriteString(strconv.FormatUint(uint64(b), 16))
	}
	return s.String()
}

// Dump writes a canonical hex dump of buf (offset, 16 bytes, ascii column).
func Dump(w io.Writer, buf []byte) error {
	d := hex.Dumper(w)
	_, err := d.Write(buf)
	if err != nil {
		return errors.Wrap(err, "failed to write hex dump")
	}
	return d.Close()
}

// DumpString is Dump into a string.
func DumpString(buf []byte) string {
	return hex.Dump(buf)
}
