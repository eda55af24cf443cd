/*
 * stream.go, part of chemedu.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}usachDOTcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 * chemedu is developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package chemjson

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

//compression returns 'z' for zstd, 'g' for gzip and 0 for plain files, based on the extension of name.
func compression(name string) byte {
	switch {
	case strings.HasSuffix(strings.ToLower(name), ".zst"):
		return 'z'
	case strings.HasSuffix(strings.ToLower(name), ".gz"):
		return 'g'
	default:
		return 0
	}
}

//readCloser closes first the decompressor and then the file.
type readCloser struct {
	io.Reader
	closedec func()
	f        *os.File
}

func (r *readCloser) Close() error {
	if r.closedec != nil {
		r.closedec()
	}
	return r.f.Close()
}

//writeCloser flushes and closes the compressor, and then the file.
type writeCloser struct {
	io.Writer
	enc io.Closer
	f   *os.File
}

func (w *writeCloser) Close() error {
	var err error
	if w.enc != nil {
		err = w.enc.Close()
	}
	if err2 := w.f.Close(); err == nil {
		err = err2
	}
	return err
}

//OpenStream opens the file name for reading. Files ending in .zst are read as zstd streams,
//files ending in .gz, as gzip streams, and anything else as plain text.
func OpenStream(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	reader := bufio.NewReader(f)
	switch compression(name) {
	case 'z':
		d, err := zstd.NewReader(reader)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &readCloser{Reader: d, closedec: d.Close, f: f}, nil
	case 'g':
		d, err := gzip.NewReader(reader)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &readCloser{Reader: d, closedec: func() { d.Close() }, f: f}, nil
	default:
		return &readCloser{Reader: reader, f: f}, nil
	}
}

//CreateStream creates the file name for writing, compressing the data as OpenStream expects.
//The returned object must be closed for the data to be completely written.
func CreateStream(name string) (io.WriteCloser, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	switch compression(name) {
	case 'z':
		e, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			f.Close()
			return nil, err
		}
		return &writeCloser{Writer: e, enc: e, f: f}, nil
	case 'g':
		e := gzip.NewWriter(f)
		return &writeCloser{Writer: e, enc: e, f: f}, nil
	default:
		return &writeCloser{Writer: f, f: f}, nil
	}
}
