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

const u32AtomSize = 8 + 4

func readU32FieldAtom(s bitio.Stream, header AtomHeader, name string) (uint32, error) {
	if header.Size != u32AtomSize {
		return 0, fmt.Errorf("%w: %s declares size %d, want %d", ErrBadFormat, name, header.Size, u32AtomSize)
	}
	return bitio.U32(s)
}

// TrackInput is the \0\0in atom: one track's entry in a movie's input
// map, naming its input type and object id.
type TrackInput struct {
	InputType *uint32
	ObjectID  *uint32
}

func readTrackInputAtom(s bitio.Stream, header AtomHeader) (TrackInput, error) {
	if _, err := readHeader(s); err != nil {
		return TrackInput{}, err
	}
	var ti TrackInput
	err := childLoop(s, header, func(child AtomHeader) error {
		switch child.Type {
		case TypeInputTyp:
			if _, err := readHeader(s); err != nil {
				return err
			}
			v, err := readU32FieldAtom(s, child, "\\0\\0ty")
			if err != nil {
				return err
			}
			ti.InputType = &v
			return nil
		case TypeObjectID:
			if _, err := readHeader(s); err != nil {
				return err
			}
			v, err := readU32FieldAtom(s, child, "obid")
			if err != nil {
				return err
			}
			ti.ObjectID = &v
			return nil
		default:
			return skipChild(s, child)
		}
	})
	if err != nil {
		return TrackInput{}, err
	}
	return ti, nil
}

// TrackInputMap is the imap atom: a sequence of TrackInput entries.
type TrackInputMap struct {
	Inputs []TrackInput
}

func readTrackInputMapAtom(s bitio.Stream, header AtomHeader, cfg Config) (TrackInputMap, error) {
	if _, err := readHeader(s); err != nil {
		return TrackInputMap{}, err
	}
	var im TrackInputMap
	err := childLoop(s, header, func(child AtomHeader) error {
		switch child.Type {
		case TypeInputMap:
			if len(im.Inputs) >= cfg.MaxTrackReferenceTypeAtoms {
				return fmt.Errorf("%w: imap exceeds %d entries", ErrTooManyAtoms, cfg.MaxTrackReferenceTypeAtoms)
			}
			v, err := readTrackInputAtom(s, child)
			if err != nil {
				return err
			}
			im.Inputs = append(im.Inputs, v)
			return nil
		default:
			return skipChild(s, child)
		}
	})
	if err != nil {
		return TrackInputMap{}, err
	}
	return im, nil
}
