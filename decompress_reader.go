package lznt1

import "io"

// DecompressFromReader reads the stream then calls Decompress. No
// decoding logic of its own. opts may be nil. If opts.MaxInputSize > 0, at
// most MaxInputSize+1 bytes are read, and ErrInputTooLarge is returned when
// the stream is longer than MaxInputSize.
func DecompressFromReader(r io.Reader, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultDecompressOptions()
	}

	if opts.MaxInputSize > 0 {
		r = io.LimitReader(r, int64(opts.MaxInputSize)+1)
	}

	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if opts.MaxInputSize > 0 && len(src) > opts.MaxInputSize {
		return nil, ErrInputTooLarge
	}

	return Decompress(src)
}
