/*
 * open.go, part of molmod.
 *
 * Copyright 2024 The molmod authors.
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
 */

package fileparse

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

//Open opens the file at path for reading. Files ending in .gz or .zst
//are decompressed on the fly. The returned ReadCloser closes both the
//decompressor and the file. Failures are reported as *IOError.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	switch compression(path) {
	case "gz":
		z, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, &IOError{Path: path, Err: err}
		}
		return &stacked{Reader: z, closers: []io.Closer{z, f}}, nil
	case "zst":
		d, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, &IOError{Path: path, Err: err}
		}
		rc := d.IOReadCloser()
		return &stacked{Reader: rc, closers: []io.Closer{rc, f}}, nil
	}
	return f, nil
}

//Ext returns the extension of path without the dot, ignoring
//a compression suffix: "job.out.gz" gives "out".
func Ext(path string) string {
	if c := compression(path); c != "" {
		path = strings.TrimSuffix(path, filepath.Ext(path))
	}
	return strings.TrimPrefix(filepath.Ext(path), ".")
}

func compression(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		return "gz"
	case ".zst", ".zstd":
		return "zst"
	}
	return ""
}

//stacked reads from the outermost reader and closes every layer,
//innermost last.
type stacked struct {
	io.Reader
	closers []io.Closer
}

func (S *stacked) Close() error {
	var first error
	for _, c := range S.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
