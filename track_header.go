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

// TrackHeader is the fixed 92-byte tkhd record.
type TrackHeader struct {
	VersionFlags     VersionFlags
	CreationTime     uint32
	ModificationTime uint32
	TrackID          uint32
	Duration         uint32
	Layer            int16
	AlternateGroup   int16
	Volume           Fixed8_8
	Matrix           Matrix3x3
	Width            Fixed16_16
	Height           Fixed16_16
}

const trackHeaderSize = 92

func readTrackHeaderAtom(s bitio.Stream, header AtomHeader) (TrackHeader, error) {
	if header.Size != trackHeaderSize {
		return TrackHeader{}, fmt.Errorf("%w: tkhd declares size %d, want %d", ErrBadFormat, header.Size, trackHeaderSize)
	}
	vf, err := readVersionFlags(s)
	if err != nil {
		return TrackHeader{}, err
	}
	var th TrackHeader
	th.VersionFlags = vf
	if th.CreationTime, err = bitio.U32(s); err != nil {
		return TrackHeader{}, err
	}
	if th.ModificationTime, err = bitio.U32(s); err != nil {
		return TrackHeader{}, err
	}
	if th.TrackID, err = bitio.U32(s); err != nil {
		return TrackHeader{}, err
	}
	if _, err := bitio.Bytes(s, 4); err != nil { // reserved
		return TrackHeader{}, err
	}
	if th.Duration, err = bitio.U32(s); err != nil {
		return TrackHeader{}, err
	}
	if _, err := bitio.Bytes(s, 8); err != nil { // reserved2
		return TrackHeader{}, err
	}
	if th.Layer, err = bitio.I16(s); err != nil {
		return TrackHeader{}, err
	}
	if th.AlternateGroup, err = bitio.I16(s); err != nil {
		return TrackHeader{}, err
	}
	vol, err := bitio.U16(s)
	if err != nil {
		return TrackHeader{}, err
	}
	th.Volume = Fixed8_8(vol)
	if _, err := bitio.Bytes(s, 2); err != nil { // reserved3
		return TrackHeader{}, err
	}
	if th.Matrix, err = readMatrix(s); err != nil {
		return TrackHeader{}, err
	}
	w, err := bitio.U32(s)
	if err != nil {
		return TrackHeader{}, err
	}
	h, err := bitio.U32(s)
	if err != nil {
		return TrackHeader{}, err
	}
	th.Width, th.Height = Fixed16_16(w), Fixed16_16(h)
	return th, nil
}
