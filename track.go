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

// Track is the trak atom: one track's header and the optional
// aperture-mode, clipping, matte, edit, reference, load, and input-map
// atoms that refine it, plus its media and user data.
type Track struct {
	TrackHeader                   TrackHeader
	TrackApertureModeDimensions   *TrackApertureModeDimensions
	Clipping                      *Clipping
	TrackMatte                    *TrackMatte
	Edits                         *Edits
	TrackReference                *TrackReference
	TrackExcludeFromAutoSelection *TrackExcludeFromAutoSelection
	TrackLoadSettings             *TrackLoadSettings
	TrackInputMap                 *TrackInputMap
	Media                         *Media
	UserData                      *UserData
}

func readTrackAtom(s bitio.Stream, header AtomHeader, cfg Config) (Track, error) {
	if _, err := readHeader(s); err != nil {
		return Track{}, err
	}
	var t Track
	haveHeader := false
	err := childLoop(s, header, func(child AtomHeader) error {
		switch child.Type {
		case TypeTkhd:
			if haveHeader {
				return fmt.Errorf("%w: trak contains more than one tkhd", ErrTooManyAtoms)
			}
			if _, err := readHeader(s); err != nil {
				return err
			}
			v, err := readTrackHeaderAtom(s, child)
			if err != nil {
				return err
			}
			t.TrackHeader = v
			haveHeader = true
			return nil
		case TypeTapt:
			v, err := readTrackApertureModeDimensionsAtom(s, child)
			if err != nil {
				return err
			}
			t.TrackApertureModeDimensions = &v
			return nil
		case TypeClip:
			v, err := readClippingAtom(s, child)
			if err != nil {
				return err
			}
			t.Clipping = &v
			return nil
		case TypeMatt:
			v, err := readTrackMatteAtom(s, child)
			if err != nil {
				return err
			}
			t.TrackMatte = &v
			return nil
		case TypeEdts:
			v, err := readEditsAtom(s, child, cfg)
			if err != nil {
				return err
			}
			t.Edits = &v
			return nil
		case TypeTref:
			v, err := readTrackReferenceAtom(s, child, cfg)
			if err != nil {
				return err
			}
			t.TrackReference = &v
			return nil
		case TypeTxas:
			if _, err := readHeader(s); err != nil {
				return err
			}
			v, err := readTrackExcludeFromAutoSelectionAtom(child)
			if err != nil {
				return err
			}
			t.TrackExcludeFromAutoSelection = &v
			return nil
		case TypeLoad:
			if _, err := readHeader(s); err != nil {
				return err
			}
			v, err := readTrackLoadSettingsAtom(s, child)
			if err != nil {
				return err
			}
			t.TrackLoadSettings = &v
			return nil
		case TypeImap:
			v, err := readTrackInputMapAtom(s, child, cfg)
			if err != nil {
				return err
			}
			t.TrackInputMap = &v
			return nil
		case TypeMdia:
			v, err := readMediaAtom(s, child, cfg)
			if err != nil {
				return err
			}
			t.Media = &v
			return nil
		case TypeUdta:
			v, err := readUserDataAtom(s, child, cfg)
			if err != nil {
				return err
			}
			t.UserData = &v
			return nil
		default:
			return skipChild(s, child)
		}
	})
	if err != nil {
		return Track{}, err
	}
	if !haveHeader {
		return Track{}, fmt.Errorf("%w: trak is missing its tkhd", ErrBadFormat)
	}
	return t, nil
}
