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

// AtomHeader is the 8-byte prefix common to every atom.
type AtomHeader struct {
	// Size is the total atom length in bytes, including this header.
	Size uint32
	// Type is the four-character code identifying the atom.
	Type FourCC
}

func toAtomHeader(h bitio.Header) AtomHeader {
	return AtomHeader{Size: h.Size, Type: FourCC(h.Type)}
}

// peekHeader reads the atom header at the stream's current position and
// rewinds, so the caller can dispatch before committing to a decoder.
func peekHeader(s bitio.Stream) (AtomHeader, error) {
	h, err := bitio.PeekHeader(s)
	if err != nil {
		return AtomHeader{}, err
	}
	return toAtomHeader(h), nil
}

// readHeader consumes the 8-byte header without rewinding.
func readHeader(s bitio.Stream) (AtomHeader, error) {
	h, err := bitio.ReadHeader(s)
	if err != nil {
		return AtomHeader{}, err
	}
	header := toAtomHeader(h)
	if header.Size < 8 {
		return AtomHeader{}, fmt.Errorf("%w: atom %q declares size %d (< 8)", ErrBadFormat, header.Type, header.Size)
	}
	return header, nil
}

// childLoop drives the common container-atom shape (spec.md §4.5): peek a
// child header, bounds-check it against the declared parent size, and let
// visit consume or skip it. visit must leave the stream positioned
// exactly at the end of the child atom it was given.
func childLoop(s bitio.Stream, parent AtomHeader, visit func(child AtomHeader) error) error {
	consumed := int64(8)
	total := int64(parent.Size)
	for consumed < total {
		child, err := peekHeader(s)
		if err != nil {
			return err
		}
		if child.Size < 8 {
			return fmt.Errorf("%w: child %q of %q declares size %d (< 8)", ErrBadFormat, child.Type, parent.Type, child.Size)
		}
		consumed += int64(child.Size)
		if consumed > total {
			return fmt.Errorf("%w: children of %q overflow declared size %d", ErrBadFormat, parent.Type, parent.Size)
		}
		if err := visit(child); err != nil {
			return err
		}
	}
	return nil
}

// skipChild consumes an unrecognised child atom by seeking past it.
func skipChild(s bitio.Stream, child AtomHeader) error {
	if _, err := readHeader(s); err != nil {
		return err
	}
	return bitio.Skip(s, int64(child.Size)-8)
}
