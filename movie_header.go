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

// MovieHeader is the fixed 108-byte mvhd record: global timing, rate,
// volume, transform matrix, and preview/selection bookmarks for a movie.
type MovieHeader struct {
	VersionFlags      VersionFlags
	CreationTime      uint32 // seconds since 1904-01-01
	ModificationTime  uint32
	TimeScale         uint32
	Duration          uint32
	PreferredRate     Fixed16_16
	PreferredVolume   Fixed8_8
	Matrix            Matrix3x3
	PreviewTime       uint32
	PreviewDuration   uint32
	PosterTime        uint32
	SelectionTime     uint32
	SelectionDuration uint32
	CurrentTime       uint32
	NextTrackID       uint32
}

const movieHeaderSize = 108

func readMovieHeaderAtom(s bitio.Stream, header AtomHeader) (MovieHeader, error) {
	if header.Size != movieHeaderSize {
		return MovieHeader{}, fmt.Errorf("%w: mvhd declares size %d, want %d", ErrBadFormat, header.Size, movieHeaderSize)
	}
	vf, err := readVersionFlags(s)
	if err != nil {
		return MovieHeader{}, err
	}
	var mh MovieHeader
	mh.VersionFlags = vf
	if mh.CreationTime, err = bitio.U32(s); err != nil {
		return MovieHeader{}, err
	}
	if mh.ModificationTime, err = bitio.U32(s); err != nil {
		return MovieHeader{}, err
	}
	if mh.TimeScale, err = bitio.U32(s); err != nil {
		return MovieHeader{}, err
	}
	if mh.Duration, err = bitio.U32(s); err != nil {
		return MovieHeader{}, err
	}
	rate, err := bitio.U32(s)
	if err != nil {
		return MovieHeader{}, err
	}
	mh.PreferredRate = Fixed16_16(rate)
	vol, err := bitio.U16(s)
	if err != nil {
		return MovieHeader{}, err
	}
	mh.PreferredVolume = Fixed8_8(vol)
	if _, err := bitio.Bytes(s, 10); err != nil { // reserved
		return MovieHeader{}, err
	}
	if mh.Matrix, err = readMatrix(s); err != nil {
		return MovieHeader{}, err
	}
	if mh.PreviewTime, err = bitio.U32(s); err != nil {
		return MovieHeader{}, err
	}
	if mh.PreviewDuration, err = bitio.U32(s); err != nil {
		return MovieHeader{}, err
	}
	if mh.PosterTime, err = bitio.U32(s); err != nil {
		return MovieHeader{}, err
	}
	if mh.SelectionTime, err = bitio.U32(s); err != nil {
		return MovieHeader{}, err
	}
	if mh.SelectionDuration, err = bitio.U32(s); err != nil {
		return MovieHeader{}, err
	}
	if mh.CurrentTime, err = bitio.U32(s); err != nil {
		return MovieHeader{}, err
	}
	if mh.NextTrackID, err = bitio.U32(s); err != nil {
		return MovieHeader{}, err
	}
	return mh, nil
}

// readMatrix reads the 36-byte 3x3 transform matrix shared by mvhd and
// tkhd: a,b,u / c,d,v / x,y,w with a,b,c,d,x,y in 16.16 and u,v,w in 2.30.
func readMatrix(s bitio.Stream) (Matrix3x3, error) {
	var m Matrix3x3
	a, err := bitio.U32(s)
	if err != nil {
		return Matrix3x3{}, err
	}
	b, err := bitio.U32(s)
	if err != nil {
		return Matrix3x3{}, err
	}
	u, err := bitio.I32(s)
	if err != nil {
		return Matrix3x3{}, err
	}
	c, err := bitio.U32(s)
	if err != nil {
		return Matrix3x3{}, err
	}
	d, err := bitio.U32(s)
	if err != nil {
		return Matrix3x3{}, err
	}
	v, err := bitio.I32(s)
	if err != nil {
		return Matrix3x3{}, err
	}
	x, err := bitio.U32(s)
	if err != nil {
		return Matrix3x3{}, err
	}
	y, err := bitio.U32(s)
	if err != nil {
		return Matrix3x3{}, err
	}
	w, err := bitio.I32(s)
	if err != nil {
		return Matrix3x3{}, err
	}
	m.A, m.B, m.U = Fixed16_16(a), Fixed16_16(b), Fixed2_30(u)
	m.C, m.D, m.V = Fixed16_16(c), Fixed16_16(d), Fixed2_30(v)
	m.X, m.Y, m.W = Fixed16_16(x), Fixed16_16(y), Fixed2_30(w)
	return m, nil
}
