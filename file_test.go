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

package qtff

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/mycophonic/qtff/internal/bitio"
)

// u32be appends a big-endian uint32 to buf.
func u32be(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

func u16be(buf *bytes.Buffer, v uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	buf.Write(b[:])
}

// ftypBytes builds an ftyp atom: major brand "qt  ", minor version 0, and a
// single compatible brand "qt  ".
func ftypBytes() []byte {
	var buf bytes.Buffer
	u32be(&buf, 20)
	buf.WriteString("ftyp")
	buf.WriteString("qt  ")
	u32be(&buf, 0)
	buf.WriteString("qt  ")
	return buf.Bytes()
}

func TestParseFileTypeCompatibility(t *testing.T) {
	t.Parallel()

	mf, err := Parse(bitio.NewMemoryStream(ftypBytes()), DefaultConfig())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(mf.FileType) != 1 {
		t.Fatalf("len(FileType) = %d; want 1", len(mf.FileType))
	}
	ft := mf.FileType[0]
	if ft.MajorBrand.String() != "qt  " || ft.MinorVersion != 0 {
		t.Fatalf("ft = %+v; want major qt  , minor 0", ft)
	}
	if len(ft.CompatibleBrands) != 1 || ft.CompatibleBrands[0].String() != "qt  " {
		t.Fatalf("CompatibleBrands = %v; want [qt  ]", ft.CompatibleBrands)
	}
}

func TestParseWideAtom(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	u32be(&buf, 8)
	buf.WriteString("wide")

	mf, err := Parse(bitio.NewMemoryStream(buf.Bytes()), DefaultConfig())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(mf.Wide) != 1 || mf.Wide[0].Size != 0 {
		t.Fatalf("Wide = %v; want one zero-size entry", mf.Wide)
	}
}

func TestParseEmptyStreamSucceeds(t *testing.T) {
	t.Parallel()

	mf, err := Parse(bitio.NewMemoryStream(nil), DefaultConfig())
	if err != nil {
		t.Fatalf("Parse on empty stream: %v", err)
	}
	if len(mf.FileType) != 0 || len(mf.Movie) != 0 {
		t.Fatalf("mf = %+v; want zero value", mf)
	}
}

func TestParseTopLevelSizeTooSmall(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	u32be(&buf, 4) // declares less than the 8-byte header itself
	buf.WriteString("free")

	_, err := Parse(bitio.NewMemoryStream(buf.Bytes()), DefaultConfig())
	if !errors.Is(err, ErrBadFormat) {
		t.Fatalf("Parse = %v; want ErrBadFormat", err)
	}
}

func TestParseFtypBadBrandCount(t *testing.T) {
	t.Parallel()

	// size - 16 == 2, not a multiple of 4.
	var buf bytes.Buffer
	u32be(&buf, 18)
	buf.WriteString("ftyp")
	buf.WriteString("qt  ")
	u32be(&buf, 0)
	buf.Write([]byte{0, 0})

	_, err := Parse(bitio.NewMemoryStream(buf.Bytes()), DefaultConfig())
	if !errors.Is(err, ErrBadFormat) {
		t.Fatalf("Parse = %v; want ErrBadFormat", err)
	}
}

func TestParseFtypTooManyBrandsIsCapped(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	u32be(&buf, 24) // major_brand + minor_version + two compatible brands
	buf.WriteString("ftyp")
	buf.WriteString("qt  ")
	u32be(&buf, 0)
	buf.WriteString("qt  ")
	buf.WriteString("qt  ")

	cfg := DefaultConfig()
	cfg.MaxCompatibleBrands = 1

	_, err := Parse(bitio.NewMemoryStream(buf.Bytes()), cfg)
	if !errors.Is(err, ErrTooManyAtoms) {
		t.Fatalf("Parse = %v; want ErrTooManyAtoms", err)
	}
}

func TestParseMixedTopLevelSequence(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	buf.Write(ftypBytes())
	u32be(&buf, 8)
	buf.WriteString("free")
	u32be(&buf, 12)
	buf.WriteString("skip")
	buf.Write([]byte{0, 0, 0, 0})
	u32be(&buf, 8)
	buf.WriteString("junk") // unrecognised top-level type, must be skipped

	mf, err := Parse(bitio.NewMemoryStream(buf.Bytes()), DefaultConfig())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(mf.FileType) != 1 || len(mf.Free) != 1 || len(mf.Skip) != 1 {
		t.Fatalf("mf = %+v; want one ftyp, one free, one skip", mf)
	}
	if mf.Skip[0].Size != 4 {
		t.Fatalf("Skip[0].Size = %d; want 4", mf.Skip[0].Size)
	}
}

func TestPreviewAtomWrongSize(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	u32be(&buf, 21) // pnot is always exactly 20 bytes
	buf.WriteString("pnot")
	buf.Write(make([]byte, 13))

	_, err := Parse(bitio.NewMemoryStream(buf.Bytes()), DefaultConfig())
	if !errors.Is(err, ErrBadFormat) {
		t.Fatalf("Parse = %v; want ErrBadFormat", err)
	}
}
