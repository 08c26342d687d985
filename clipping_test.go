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

// clippingBytes builds a clip atom containing one crgn child with a
// rectangular (no extra data) QuickDraw region.
func clippingBytes(top, left, bottom, right int16) []byte {
	var crgn bytes.Buffer
	u32be(&crgn, 18) // header(8) + region(10)
	crgn.WriteString("crgn")
	u16be(&crgn, 10) // region size
	u16be(&crgn, uint16(top))
	u16be(&crgn, uint16(left))
	u16be(&crgn, uint16(bottom))
	u16be(&crgn, uint16(right))

	var clip bytes.Buffer
	u32be(&clip, uint32(8+crgn.Len()))
	clip.WriteString("clip")
	clip.Write(crgn.Bytes())
	return clip.Bytes()
}

func TestReadClippingAtom(t *testing.T) {
	t.Parallel()

	data := clippingBytes(0, 0, 100, 200)
	s := bitio.NewMemoryStream(data)
	header, err := peekHeader(s)
	if err != nil {
		t.Fatalf("peekHeader: %v", err)
	}

	clip, err := readClippingAtom(s, header)
	if err != nil {
		t.Fatalf("readClippingAtom: %v", err)
	}
	rect := clip.Region.Region.Rect
	if rect.Top != 0 || rect.Left != 0 || rect.Bottom != 100 || rect.Right != 200 {
		t.Fatalf("rect = %+v; want {0 0 100 200}", rect)
	}
	if len(clip.Region.Region.Extra) != 0 {
		t.Fatalf("Extra = %v; want empty", clip.Region.Region.Extra)
	}
}

func TestReadClippingAtomDuplicateCrgnIsTooManyAtoms(t *testing.T) {
	t.Parallel()

	crgn := clippingBytes(0, 0, 1, 1)[8:] // strip the outer clip header
	var clip bytes.Buffer
	u32be(&clip, uint32(8+2*len(crgn)))
	clip.WriteString("clip")
	clip.Write(crgn)
	clip.Write(crgn)

	s := bitio.NewMemoryStream(clip.Bytes())
	header, err := peekHeader(s)
	if err != nil {
		t.Fatalf("peekHeader: %v", err)
	}
	_, err = readClippingAtom(s, header)
	if !errors.Is(err, ErrTooManyAtoms) {
		t.Fatalf("readClippingAtom = %v; want ErrTooManyAtoms", err)
	}
}

func TestChildLoopDetectsSizeOverflow(t *testing.T) {
	t.Parallel()

	// clip declares a size too small for the crgn child it actually
	// contains.
	crgn := clippingBytes(0, 0, 1, 1)[8:]
	var clip bytes.Buffer
	u32be(&clip, uint32(8+len(crgn)-1))
	clip.WriteString("clip")
	clip.Write(crgn)

	s := bitio.NewMemoryStream(clip.Bytes())
	header, err := peekHeader(s)
	if err != nil {
		t.Fatalf("peekHeader: %v", err)
	}
	_, err = readClippingAtom(s, header)
	if !errors.Is(err, ErrBadFormat) {
		t.Fatalf("readClippingAtom = %v; want ErrBadFormat", err)
	}
}
