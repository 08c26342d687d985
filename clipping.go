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

// QuickDrawRect is a legacy 2-D bounding rectangle: top, left, bottom,
// right, each a signed 16-bit coordinate.
type QuickDrawRect struct {
	Top, Left, Bottom, Right int16
}

// QuickDrawRegion is a legacy QuickDraw region: a self-describing size
// followed by a bounding rect and, for non-rectangular regions, opaque
// region data the decoder does not interpret.
type QuickDrawRegion struct {
	Size  uint16
	Rect  QuickDrawRect
	Extra []byte // raw bytes beyond the rect, length Size-10
}

const quickDrawRegionPrefix = 10 // size(2) + rect(8)

func readQuickDrawRegion(s bitio.Stream, remaining uint32) (QuickDrawRegion, error) {
	var r QuickDrawRegion
	size, err := bitio.U16(s)
	if err != nil {
		return QuickDrawRegion{}, err
	}
	if uint32(size) != remaining {
		return QuickDrawRegion{}, fmt.Errorf("%w: region size %d does not match enclosing atom payload %d", ErrBadFormat, size, remaining)
	}
	r.Size = size
	if size < quickDrawRegionPrefix {
		return QuickDrawRegion{}, fmt.Errorf("%w: region size %d shorter than rect prefix", ErrBadFormat, size)
	}
	if r.Rect.Top, err = bitio.I16(s); err != nil {
		return QuickDrawRegion{}, err
	}
	if r.Rect.Left, err = bitio.I16(s); err != nil {
		return QuickDrawRegion{}, err
	}
	if r.Rect.Bottom, err = bitio.I16(s); err != nil {
		return QuickDrawRegion{}, err
	}
	if r.Rect.Right, err = bitio.I16(s); err != nil {
		return QuickDrawRegion{}, err
	}
	extra := int(size) - quickDrawRegionPrefix
	if extra > 0 {
		if r.Extra, err = bitio.Bytes(s, extra); err != nil {
			return QuickDrawRegion{}, err
		}
	}
	return r, nil
}

// ClippingRegion is the crgn atom's payload: a QuickDraw region.
type ClippingRegion struct {
	Region QuickDrawRegion
}

func readClippingRegionAtom(s bitio.Stream, header AtomHeader) (ClippingRegion, error) {
	if header.Size < 8 {
		return ClippingRegion{}, fmt.Errorf("%w: crgn declares size %d", ErrBadFormat, header.Size)
	}
	region, err := readQuickDrawRegion(s, header.Size-8)
	if err != nil {
		return ClippingRegion{}, err
	}
	return ClippingRegion{Region: region}, nil
}

// Clipping is the clip atom: a container holding at most one crgn child.
// A clip with no crgn decodes with a zero Region.
type Clipping struct {
	Region ClippingRegion
}

var typeCrgn = FourCC{'c', 'r', 'g', 'n'}

func readClippingAtom(s bitio.Stream, header AtomHeader) (Clipping, error) {
	if _, err := readHeader(s); err != nil {
		return Clipping{}, err
	}
	var clip Clipping
	haveRegion := false
	err := childLoop(s, header, func(child AtomHeader) error {
		switch child.Type {
		case typeCrgn:
			if haveRegion {
				return fmt.Errorf("%w: clip contains more than one crgn", ErrTooManyAtoms)
			}
			if _, err := readHeader(s); err != nil {
				return err
			}
			region, err := readQuickDrawRegion(s, child.Size-8)
			if err != nil {
				return err
			}
			clip.Region = ClippingRegion{Region: region}
			haveRegion = true
			return nil
		default:
			return skipChild(s, child)
		}
	})
	if err != nil {
		return Clipping{}, err
	}
	return clip, nil
}
