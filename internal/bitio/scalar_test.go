/*
   Copyright Mycophonic.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package bitio

import (
	"errors"
	"io"
	"testing"
)

func TestScalarDecode(t *testing.T) {
	t.Parallel()

	s := NewMemoryStream([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08})

	u16, err := U16(s)
	if err != nil || u16 != 0x0102 {
		t.Fatalf("U16 = %#x, %v; want 0x0102, nil", u16, err)
	}
	u24, err := U24(s)
	if err != nil || u24 != 0x030405 {
		t.Fatalf("U24 = %#x, %v; want 0x030405, nil", u24, err)
	}
	u16b, err := U16(s)
	if err != nil || u16b != 0x0607 {
		t.Fatalf("U16 = %#x, %v; want 0x0607, nil", u16b, err)
	}
}

func TestU64BigEndian(t *testing.T) {
	t.Parallel()

	s := NewMemoryStream([]byte{0, 0, 0, 0, 0, 0, 0, 1})
	v, err := U64(s)
	if err != nil || v != 1 {
		t.Fatalf("U64 = %d, %v; want 1, nil", v, err)
	}
}

func TestSignedReinterpretation(t *testing.T) {
	t.Parallel()

	s := NewMemoryStream([]byte{0xff, 0xff})
	v, err := I16(s)
	if err != nil || v != -1 {
		t.Fatalf("I16 = %d, %v; want -1, nil", v, err)
	}

	s2 := NewMemoryStream([]byte{0xff, 0xff, 0xff, 0xff})
	v2, err := I32(s2)
	if err != nil || v2 != -1 {
		t.Fatalf("I32 = %d, %v; want -1, nil", v2, err)
	}
}

func TestReadShortBufferIsEOF(t *testing.T) {
	t.Parallel()

	s := NewMemoryStream([]byte{0x01, 0x02})
	if _, err := U32(s); !errors.Is(err, io.EOF) {
		t.Fatalf("U32 on short buffer = %v; want io.EOF", err)
	}
}

func TestPeekHeaderRewinds(t *testing.T) {
	t.Parallel()

	s := NewMemoryStream([]byte{0x00, 0x00, 0x00, 0x08, 'w', 'i', 'd', 'e'})
	h, err := PeekHeader(s)
	if err != nil {
		t.Fatalf("PeekHeader: %v", err)
	}
	if h.Size != 8 || string(h.Type[:]) != "wide" {
		t.Fatalf("PeekHeader = %+v; want size 8 type wide", h)
	}
	pos, err := s.Tell()
	if err != nil || pos != 0 {
		t.Fatalf("Tell after PeekHeader = %d, %v; want 0, nil", pos, err)
	}

	h2, err := ReadHeader(s)
	if err != nil || h2 != h {
		t.Fatalf("ReadHeader = %+v, %v; want %+v, nil", h2, err, h)
	}
	pos2, err := s.Tell()
	if err != nil || pos2 != 8 {
		t.Fatalf("Tell after ReadHeader = %d, %v; want 8, nil", pos2, err)
	}
}

func TestMemoryStreamWriteGrows(t *testing.T) {
	t.Parallel()

	s := NewMemoryStream(nil)
	if err := s.Write([]byte("abcd")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := s.Seek(-4); err != nil {
		t.Fatalf("Seek: %v", err)
	}
	got, err := Bytes(s, 4)
	if err != nil || string(got) != "abcd" {
		t.Fatalf("Bytes = %q, %v; want \"abcd\", nil", got, err)
	}
}
