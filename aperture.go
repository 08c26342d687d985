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

// ApertureDimensions is the fixed 20-byte payload shared by clef, prof,
// and enof: a width/height pair in 16.16 fixed point.
type ApertureDimensions struct {
	VersionFlags VersionFlags
	Width        Fixed16_16
	Height       Fixed16_16
}

const apertureDimensionsSize = 8 + 4 + 4 + 4

func readApertureDimensionsAtom(s bitio.Stream, header AtomHeader) (ApertureDimensions, error) {
	if header.Size != apertureDimensionsSize {
		return ApertureDimensions{}, fmt.Errorf("%w: %q declares size %d, want %d", ErrBadFormat, header.Type, header.Size, apertureDimensionsSize)
	}
	vf, err := readVersionFlags(s)
	if err != nil {
		return ApertureDimensions{}, err
	}
	w, err := bitio.U32(s)
	if err != nil {
		return ApertureDimensions{}, err
	}
	h, err := bitio.U32(s)
	if err != nil {
		return ApertureDimensions{}, err
	}
	return ApertureDimensions{VersionFlags: vf, Width: Fixed16_16(w), Height: Fixed16_16(h)}, nil
}

// TrackApertureModeDimensions is the tapt atom: the clean-aperture,
// production-aperture, and encoded-pixels dimensions of a video track.
type TrackApertureModeDimensions struct {
	CleanAperture      *ApertureDimensions
	ProductionAperture *ApertureDimensions
	EncodedPixels      *ApertureDimensions
}

func readTrackApertureModeDimensionsAtom(s bitio.Stream, header AtomHeader) (TrackApertureModeDimensions, error) {
	if _, err := readHeader(s); err != nil {
		return TrackApertureModeDimensions{}, err
	}
	var tapt TrackApertureModeDimensions
	err := childLoop(s, header, func(child AtomHeader) error {
		switch child.Type {
		case TypeClef, TypeProf, TypeEnof:
			if _, err := readHeader(s); err != nil {
				return err
			}
			v, err := readApertureDimensionsAtom(s, child)
			if err != nil {
				return err
			}
			switch child.Type {
			case TypeClef:
				tapt.CleanAperture = &v
			case TypeProf:
				tapt.ProductionAperture = &v
			case TypeEnof:
				tapt.EncodedPixels = &v
			}
			return nil
		default:
			return skipChild(s, child)
		}
	})
	if err != nil {
		return TrackApertureModeDimensions{}, err
	}
	return tapt, nil
}
