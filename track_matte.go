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

var typeKmat = FourCC{'k', 'm', 'a', 't'}

// CompressedMatte is the kmat atom: a VersionFlags prefix, a
// sample-description-shaped record naming the matte image format, and
// the opaque matte data itself.
type CompressedMatte struct {
	VersionFlags     VersionFlags
	MatteDescription SampleDescriptionEntry
	MatteData        []byte
}

func readCompressedMatteAtom(s bitio.Stream, header AtomHeader) (CompressedMatte, error) {
	vf, err := readVersionFlags(s)
	if err != nil {
		return CompressedMatte{}, err
	}
	desc, err := readSampleDescriptionEntry(s)
	if err != nil {
		return CompressedMatte{}, err
	}
	dataLen := int64(header.Size) - 8 - 4 - int64(desc.Size)
	if dataLen < 0 {
		return CompressedMatte{}, fmt.Errorf("%w: kmat matte description larger than enclosing atom", ErrBadFormat)
	}
	data, err := bitio.Bytes(s, int(dataLen))
	if err != nil {
		return CompressedMatte{}, err
	}
	return CompressedMatte{VersionFlags: vf, MatteDescription: desc, MatteData: data}, nil
}

// TrackMatte is the matt atom: a container whose only recognised child
// is a single compressed-matte (kmat) atom.
type TrackMatte struct {
	CompressedMatte *CompressedMatte
}

func readTrackMatteAtom(s bitio.Stream, header AtomHeader) (TrackMatte, error) {
	if _, err := readHeader(s); err != nil {
		return TrackMatte{}, err
	}
	var matt TrackMatte
	err := childLoop(s, header, func(child AtomHeader) error {
		switch child.Type {
		case typeKmat:
			if _, err := readHeader(s); err != nil {
				return err
			}
			v, err := readCompressedMatteAtom(s, child)
			if err != nil {
				return err
			}
			matt.CompressedMatte = &v
			return nil
		default:
			return skipChild(s, child)
		}
	})
	if err != nil {
		return TrackMatte{}, err
	}
	return matt, nil
}
