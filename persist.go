/*
 * Copyright 2024 The zson Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package zson

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
)

// PackCodec selects the compressor Pack uses for a Document's binary
// buffer. Unlike the tape serializer this was adapted from, a zson
// Document is already one contiguous tagged buffer: there is no tape,
// string table, or per-field block to deduplicate, so packing is a
// single compressed stream rather than four parallel ones.
type PackCodec byte

const (
	// PackNone stores the buffer uncompressed.
	PackNone PackCodec = iota
	// PackFast applies s2 compression, favoring speed.
	PackFast
	// PackBest applies zstd compression, favoring ratio.
	PackBest
)

const packVersion = 1

// Pack serializes a Document to a self-describing byte stream: a
// version byte, a codec byte, the uncompressed length (varint), and the
// (possibly compressed) buffer. An optional destination can be
// supplied; the result is appended to it.
func Pack(dst []byte, doc *Document, codec PackCodec) ([]byte, error) {
	buf := doc.Bytes()
	dst = append(dst, packVersion, byte(codec))
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], uint64(len(buf)))
	dst = append(dst, tmp[:n]...)

	switch codec {
	case PackNone:
		dst = append(dst, buf...)
	case PackFast:
		w := s2.NewWriter(bytesWriter{&dst})
		if _, err := w.Write(buf); err != nil {
			return nil, fmt.Errorf("zson: pack: %w", err)
		}
		if err := w.Close(); err != nil {
			return nil, fmt.Errorf("zson: pack: %w", err)
		}
	case PackBest:
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			return nil, fmt.Errorf("zson: pack: %w", err)
		}
		defer enc.Close()
		dst = enc.EncodeAll(buf, dst)
	default:
		return nil, fmt.Errorf("zson: pack: unknown codec %d", codec)
	}
	return dst, nil
}

// Unpack reverses Pack, returning a Document backed by a freshly
// allocated buffer (Unpack cannot reuse src's storage since src holds
// the packed, not decoded, bytes).
func Unpack(src []byte) (*Document, error) {
	r := bytes.NewReader(src)
	version, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("zson: unpack: %w", err)
	}
	if version != packVersion {
		return nil, fmt.Errorf("zson: unpack: unsupported version %d", version)
	}
	codecByte, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("zson: unpack: %w", err)
	}
	size, err := binary.ReadUvarint(r)
	if err != nil {
		return nil, fmt.Errorf("zson: unpack: %w", err)
	}

	rest := src[len(src)-r.Len():]
	var buf []byte
	switch PackCodec(codecByte) {
	case PackNone:
		if uint64(len(rest)) != size {
			return nil, fmt.Errorf("zson: unpack: size mismatch, want %d got %d", size, len(rest))
		}
		buf = make([]byte, size)
		copy(buf, rest)
	case PackFast:
		dr := s2.NewReader(bytes.NewReader(rest))
		buf = make([]byte, size)
		if _, err := io.ReadFull(dr, buf); err != nil {
			return nil, fmt.Errorf("zson: unpack: %w", err)
		}
	case PackBest:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("zson: unpack: %w", err)
		}
		defer dec.Close()
		buf, err = dec.DecodeAll(rest, make([]byte, 0, size))
		if err != nil {
			return nil, fmt.Errorf("zson: unpack: %w", err)
		}
	default:
		return nil, fmt.Errorf("zson: unpack: unknown codec %d", codecByte)
	}
	return &Document{buf: buf, root: 0}, nil
}

// bytesWriter adapts a *[]byte to io.Writer so s2.Writer can append
// directly into a caller-supplied destination slice.
type bytesWriter struct {
	dst *[]byte
}

func (w bytesWriter) Write(p []byte) (int, error) {
	*w.dst = append(*w.dst, p...)
	return len(p), nil
}
