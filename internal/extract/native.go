package extract

import (
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"context"
	"fmt"
	"io"

	"github.com/sandrobonazzola/ovirt-patch-verifier/internal/errors"

	"github.com/cavaliergopher/cpio"
	"github.com/cavaliergopher/rpm"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
	"github.com/ulikunitz/xz/lzma"
)

// Native unpacks artifacts in process, without rpm2cpio or cpio installed.
type Native struct{}

func (n *Native) Unpack(ctx context.Context, artifact []byte, keep func(path string) bool) ([]File, error) {
	r := bytes.NewReader(artifact)

	// rpm.Read leaves r positioned at the start of the payload.
	pkg, err := rpm.Read(r)
	if err != nil {
		return nil, errors.K("unpack", errors.ExtractionFailed, fmt.Errorf("failed to read RPM headers: %w", err))
	}
	if format := pkg.PayloadFormat(); format != "" && format != "cpio" {
		return nil, errors.K("unpack", errors.ExtractionFailed, fmt.Errorf("unsupported payload format: %s", format))
	}

	payload, err := decompress(r, pkg.PayloadCompression())
	if err != nil {
		return nil, errors.K("unpack", errors.ExtractionFailed, err)
	}
	defer payload.Close()

	files, err := readCpio(ctx, payload, keep)
	if err != nil {
		return nil, errors.K("unpack", errors.ExtractionFailed, err)
	}
	return files, nil
}

// decompress wraps r with a reader for the named RPM payload compressor.
func decompress(r io.Reader, compression string) (io.ReadCloser, error) {
	switch compression {
	case "", "identity", "none":
		return io.NopCloser(r), nil
	case "gzip":
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip payload: %w", err)
		}
		return zr, nil
	case "bzip2":
		return io.NopCloser(bzip2.NewReader(r)), nil
	case "xz":
		xr, err := xz.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to open xz payload: %w", err)
		}
		return io.NopCloser(xr), nil
	case "lzma":
		lr, err := lzma.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to open lzma payload: %w", err)
		}
		return io.NopCloser(lr), nil
	case "zstd":
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to open zstd payload: %w", err)
		}
		return zr.IOReadCloser(), nil
	default:
		return nil, fmt.Errorf("unsupported payload compression: %s", compression)
	}
}

// readCpio returns the regular files of a cpio archive accepted by keep.
func readCpio(ctx context.Context, r io.Reader, keep func(path string) bool) ([]File, error) {
	cr := cpio.NewReader(r)

	var files []File
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		hdr, err := cr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read cpio archive: %w", err)
		}
		if !hdr.Mode.IsRegular() || !keep(hdr.Name) {
			continue
		}

		content, err := io.ReadAll(cr)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s from cpio archive: %w", hdr.Name, err)
		}
		files = append(files, File{Name: hdr.Name, Content: content})
	}
	return files, nil
}
