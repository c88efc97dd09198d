// SPDX-License-Identifier: EPL-2.0

// Package seekbuf provides in-memory io.ReadSeeker and io.WriteSeeker
// implementations. The go-audio decoders and encoder require seekable
// streams; these wrappers bridge non-seekable inputs and in-memory
// round trips in tests.
package seekbuf

import (
	"errors"
	"io"
)

var errNegativeOffset = errors.New("seekbuf: negative position")

// Reader is an io.ReadSeeker over a byte slice.
type Reader struct {
	data   []byte
	offset int64
}

func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

func (r *Reader) Read(p []byte) (int, error) {
	if r.offset >= int64(len(r.data)) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.offset:])
	r.offset += int64(n)
	return n, nil
}

func (r *Reader) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64
	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = r.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(r.data)) + offset
	default:
		return 0, errors.New("seekbuf: invalid whence")
	}

	if newOffset < 0 {
		return 0, errNegativeOffset
	}

	r.offset = newOffset
	return newOffset, nil
}

// Buffer is an io.WriteSeeker backed by a growable byte slice.
type Buffer struct {
	data   []byte
	offset int64
}

func NewBuffer() *Buffer {
	return &Buffer{}
}

// Bytes returns the written contents.
func (b *Buffer) Bytes() []byte {
	return b.data
}

func (b *Buffer) Write(p []byte) (int, error) {
	end := b.offset + int64(len(p))
	if end > int64(len(b.data)) {
		grown := make([]byte, end)
		copy(grown, b.data)
		b.data = grown
	}
	copy(b.data[b.offset:end], p)
	b.offset = end
	return len(p), nil
}

func (b *Buffer) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64
	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = b.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(b.data)) + offset
	default:
		return 0, errors.New("seekbuf: invalid whence")
	}

	if newOffset < 0 {
		return 0, errNegativeOffset
	}

	b.offset = newOffset
	return newOffset, nil
}
