// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package bitio

import (
	"bytes"
	"io"
	"testing"
)

func TestWriteBitsPacking(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	// 1 + 010000011 + 11 packs to 10100000 1111, zero-padded low
	if err := w.WriteBits(1, 1); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteBits(9, 0b010000011); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteBits(2, 0b11); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	want := []byte{0xa0, 0xf0}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("got % x want % x", buf.Bytes(), want)
	}
}

func TestWriteBitsMasksValue(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	// only the low 4 bits of 0xff5 may land in the stream
	if err := w.WriteBits(4, 0xff5); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteBits(4, 0xa); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if want := []byte{0x5a}; !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("got % x want % x", buf.Bytes(), want)
	}
}

func TestReadBits(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0xfa, 0xce, 0x82, 0x01, 0x80}))
	v, err := r.ReadBits(32)
	if err != nil {
		t.Fatal(err)
	}
	if v != 0xface8201 {
		t.Fatalf("got %#x want 0xface8201", v)
	}
	v, err = r.ReadBits(1)
	if err != nil {
		t.Fatal(err)
	}
	if v != 1 {
		t.Fatalf("got %d want 1", v)
	}
	// 7 bits remain: a full byte is not available
	if _, err := r.ReadBits(8); err != io.EOF {
		t.Fatalf("got %v want io.EOF", err)
	}
	// but the remaining 7 bits are still readable
	v, err = r.ReadBits(7)
	if err != nil {
		t.Fatal(err)
	}
	if v != 0 {
		t.Fatalf("got %d want 0", v)
	}
	if _, err := r.ReadBits(1); err != io.EOF {
		t.Fatalf("got %v want io.EOF", err)
	}
}

func TestRewind(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0xa5, 0x3c}))
	for i := 0; i < 3; i++ {
		v, err := r.ReadBits(12)
		if err != nil {
			t.Fatal(err)
		}
		if v != 0xa53 {
			t.Fatalf("pass %d: got %#x want 0xa53", i, v)
		}
		if err := r.Rewind(); err != nil {
			t.Fatal(err)
		}
	}
}

func TestWriterClosed(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.WriteBits(8, 0x42); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteBits(1, 0); err != ErrClosed {
		t.Fatalf("got %v want ErrClosed", err)
	}
	// closing twice is a no-op
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if want := []byte{0x42}; !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("got % x want % x", buf.Bytes(), want)
	}
}

type failWriter struct{ err error }

func (f *failWriter) Write(p []byte) (int, error) { return 0, f.err }

func TestWriterStoresError(t *testing.T) {
	werr := io.ErrClosedPipe
	w := NewWriter(&failWriter{err: werr})
	var err error
	for i := 0; i < 2*bufSize; i++ {
		if err = w.WriteBits(8, 0xff); err != nil {
			break
		}
	}
	if err != werr {
		t.Fatalf("got %v want %v", err, werr)
	}
	if err := w.Close(); err != werr {
		t.Fatalf("close: got %v want %v", err, werr)
	}
}

func TestRoundTripRandomWidths(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	widths := []int{1, 3, 9, 8, 32, 17, 5, 1, 24}
	values := make([]uint32, len(widths))
	for i, n := range widths {
		values[i] = uint32(0xdeadbeef) & mask(n)
		if err := w.WriteBits(n, values[i]); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	r := NewReader(bytes.NewReader(buf.Bytes()))
	for i, n := range widths {
		v, err := r.ReadBits(n)
		if err != nil {
			t.Fatal(err)
		}
		if v != values[i] {
			t.Fatalf("field %d: got %#x want %#x", i, v, values[i])
		}
	}
}
