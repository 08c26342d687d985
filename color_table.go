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
	"fmt"

	"github.com/mycophonic/qtff/internal/bitio"
)

// Color is a single color-table entry: alpha/index and red/green/blue,
// each a u16.
type Color struct {
	A, R, G, B uint16
}

// ColorTable is the ctab atom's payload. On the wire, ColorTableSize is
// one less than the number of entries.
type ColorTable struct {
	Seed           uint32
	Flags          uint16
	ColorTableSize uint16
	Colors         []Color
}

func readColorTableAtom(s bitio.Stream, header AtomHeader, cfg Config) (ColorTable, error) {
	const fixedPrefix = 8 // seed(4) + flags(2) + color_table_size(2)
	if header.Size < 8+fixedPrefix {
		return ColorTable{}, fmt.Errorf("%w: ctab declares size %d", ErrBadFormat, header.Size)
	}
	var ct ColorTable
	var err error
	if ct.Seed, err = bitio.U32(s); err != nil {
		return ColorTable{}, err
	}
	if ct.Flags, err = bitio.U16(s); err != nil {
		return ColorTable{}, err
	}
	if ct.ColorTableSize, err = bitio.U16(s); err != nil {
		return ColorTable{}, err
	}
	n := int(ct.ColorTableSize) + 1
	region := int64(header.Size) - 8 - fixedPrefix
	if region != int64(n)*8 {
		return ColorTable{}, fmt.Errorf("%w: ctab region %d bytes does not equal %d entries x 8", ErrBadFormat, region, n)
	}
	if n > cfg.MaxSampleDescriptionTableLen { // no dedicated cap named for ctab; reuse a generous table cap
		return ColorTable{}, fmt.Errorf("%w: ctab has %d entries", ErrTooManyAtoms, n)
	}
	ct.Colors = make([]Color, n)
	for i := 0; i < n; i++ {
		var c Color
		if c.A, err = bitio.U16(s); err != nil {
			return ColorTable{}, err
		}
		if c.R, err = bitio.U16(s); err != nil {
			return ColorTable{}, err
		}
		if c.G, err = bitio.U16(s); err != nil {
			return ColorTable{}, err
		}
		if c.B, err = bitio.U16(s); err != nil {
			return ColorTable{}, err
		}
		ct.Colors[i] = c
	}
	return ct, nil
}
