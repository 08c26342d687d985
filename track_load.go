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

// TrackLoadSettings is the fixed 24-byte load atom: hints to the player
// about preloading this track.
type TrackLoadSettings struct {
	PreloadStartTime uint32
	PreloadDuration  uint32
	PreloadFlags     uint32
	DefaultHints     uint32
}

const trackLoadSettingsSize = 8 + 4*4

func readTrackLoadSettingsAtom(s bitio.Stream, header AtomHeader) (TrackLoadSettings, error) {
	if header.Size != trackLoadSettingsSize {
		return TrackLoadSettings{}, fmt.Errorf("%w: load declares size %d, want %d", ErrBadFormat, header.Size, trackLoadSettingsSize)
	}
	var t TrackLoadSettings
	var err error
	if t.PreloadStartTime, err = bitio.U32(s); err != nil {
		return TrackLoadSettings{}, err
	}
	if t.PreloadDuration, err = bitio.U32(s); err != nil {
		return TrackLoadSettings{}, err
	}
	if t.PreloadFlags, err = bitio.U32(s); err != nil {
		return TrackLoadSettings{}, err
	}
	if t.DefaultHints, err = bitio.U32(s); err != nil {
		return TrackLoadSettings{}, err
	}
	return t, nil
}
