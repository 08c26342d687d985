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
	"errors"
	"testing"

	"github.com/mycophonic/qtff/internal/bitio"
)

func colorTableBytes(seed uint32, colorTableSize uint16, colors []Color) []byte {
	var buf bytes.Buffer
	u32be(&buf, uint32(8+8+8*len(colors)))
	buf.WriteString("ctab")
	u32be(&buf, seed)
	u16be(&buf, 0) // flags
	u16be(&buf, colorTableSize)
	for _, c := range colors {
		u16be(&buf, c.A)
		u16be(&buf, c.R)
		u16be(&buf, c.G)
		u16be(&buf, c.B)
	}
	return buf.Bytes()
}

func TestReadColorTableAtom(t *testing.T) {
	t.Parallel()

	data := colorTableBytes(7, 0, []Color{{A: 0xffff, R: 0x1000, G: 0x2000, B: 0x3000}})
	s := bitio.NewMemoryStream(data)
	header, err := readHeader(s)
	if err != nil {
		t.Fatalf("readHeader: %v", err)
	}
	ct, err := readColorTableAtom(s, header, DefaultConfig())
	if err != nil {
		t.Fatalf("readColorTableAtom: %v", err)
	}
	if ct.Seed != 7 || len(ct.Colors) != 1 {
		t.Fatalf("ct = %+v; want seed 7, one color", ct)
	}
	if ct.Colors[0].R != 0x1000 {
		t.Fatalf("ct.Colors[0] = %+v", ct.Colors[0])
	}
}

func TestReadColorTableAtomSizeMismatch(t *testing.T) {
	t.Parallel()

	data := colorTableBytes(0, 1, []Color{{}}) // declares size for 2 entries, provides 1
	s := bitio.NewMemoryStream(data)
	header, err := readHeader(s)
	if err != nil {
		t.Fatalf("readHeader: %v", err)
	}
	_, err = readColorTableAtom(s, header, DefaultConfig())
	if !errors.Is(err, ErrBadFormat) {
		t.Fatalf("readColorTableAtom = %v; want ErrBadFormat", err)
	}
}
