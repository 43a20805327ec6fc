package coldens

import (
	"compress/flate"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//Extensions recognized by Open and Create, besides plain text.
var compressedExt = []string{".zst", ".zstd", ".gz", ".zz", ".flate"}

//zstd.Decoder doesn't implement io.ReadCloser, as its Close
//doesn't return anything.
type zstdql struct {
	*zstd.Decoder
}

func (z zstdql) Close() error {
	z.Decoder.Close()
	return nil
}

//stacked closes the decompressor and then the file under it.
type stacked struct {
	io.Reader
	closers []io.Closer
}

func (s *stacked) Close() error { return closeAll(s.closers) }

type stackedW struct {
	io.Writer
	closers []io.Closer
}

func (s *stackedW) Close() error { return closeAll(s.closers) }

//closeAll closes everything in order, and returns the first error found.
func closeAll(closers []io.Closer) error {
	var err error
	for _, c := range closers {
		if err2 := c.Close(); err2 != nil && err == nil {
			err = err2
		}
	}
	return err
}

//Open opens the file name for reading. The content is decompressed on the fly
//if the name ends in .zst or .zstd (zstd), .gz (gzip) or .zz or .flate (raw deflate).
func Open(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	var r io.ReadCloser
	switch strings.ToLower(filepath.Ext(name)) {
	case ".zst", ".zstd":
		d, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		r = zstdql{d}
	case ".gz":
		r, err = gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
	case ".zz", ".flate":
		r = flate.NewReader(f)
	default:
		return f, nil
	}
	return &stacked{Reader: r, closers: []io.Closer{r, f}}, nil
}

//Create creates the file name for writing, compressing the content according to
//the extension, as in Open.
func Create(name string) (io.WriteCloser, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	var w io.WriteCloser
	switch strings.ToLower(filepath.Ext(name)) {
	case ".zst", ".zstd":
		w, err = zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	case ".gz":
		w, err = gzip.NewWriterLevel(f, gzip.BestCompression)
	case ".zz", ".flate":
		w, err = flate.NewWriter(f, flate.BestCompression)
	default:
		return f, nil
	}
	if err != nil {
		f.Close()
		return nil, err
	}
	return &stackedW{Writer: w, closers: []io.Closer{w, f}}, nil
}

//find returns the path of the file base in dir, either plain or with one
//of the compressed extensions.
func find(dir, base string) (string, error) {
	plain := filepath.Join(dir, base)
	_, err := os.Stat(plain)
	if err == nil {
		return plain, nil
	}
	for _, ext := range compressedExt {
		if _, err2 := os.Stat(plain + ext); err2 == nil {
			return plain + ext, nil
		}
	}
	return "", err
}
