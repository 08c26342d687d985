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

// MediaHeader is the fixed 32-byte mdhd record.
type MediaHeader struct {
	VersionFlags     VersionFlags
	CreationTime     uint32
	ModificationTime uint32
	TimeScale        uint32
	Duration         uint32
	Language         uint16 // packed ISO-639-2/T code, legacy encoding
	Quality          uint16
}

const mediaHeaderSize = 32

func readMediaHeaderAtom(s bitio.Stream, header AtomHeader) (MediaHeader, error) {
	if header.Size != mediaHeaderSize {
		return MediaHeader{}, fmt.Errorf("%w: mdhd declares size %d, want %d", ErrBadFormat, header.Size, mediaHeaderSize)
	}
	vf, err := readVersionFlags(s)
	if err != nil {
		return MediaHeader{}, err
	}
	var mh MediaHeader
	mh.VersionFlags = vf
	if mh.CreationTime, err = bitio.U32(s); err != nil {
		return MediaHeader{}, err
	}
	if mh.ModificationTime, err = bitio.U32(s); err != nil {
		return MediaHeader{}, err
	}
	if mh.TimeScale, err = bitio.U32(s); err != nil {
		return MediaHeader{}, err
	}
	if mh.Duration, err = bitio.U32(s); err != nil {
		return MediaHeader{}, err
	}
	if mh.Language, err = bitio.U16(s); err != nil {
		return MediaHeader{}, err
	}
	if mh.Quality, err = bitio.U16(s); err != nil {
		return MediaHeader{}, err
	}
	return mh, nil
}
