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

// MovieAtom is the moov atom: the aggregate describing every track in
// the file. It permits at most one each of mvhd, clip, udta, and ctab; a
// second occurrence of any of those is a TooManyAtoms failure, not a
// silent overwrite.
type MovieAtom struct {
	MovieHeader MovieHeader
	Clipping    *Clipping
	Tracks      []Track
	UserData    *UserData
	ColorTable  *ColorTable
}

func readMovieAtom(s bitio.Stream, header AtomHeader, cfg Config) (MovieAtom, error) {
	if _, err := readHeader(s); err != nil {
		return MovieAtom{}, err
	}
	var m MovieAtom
	haveHeader := false
	err := childLoop(s, header, func(child AtomHeader) error {
		switch child.Type {
		case TypeMvhd:
			if haveHeader {
				return fmt.Errorf("%w: moov contains more than one mvhd", ErrTooManyAtoms)
			}
			if _, err := readHeader(s); err != nil {
				return err
			}
			v, err := readMovieHeaderAtom(s, child)
			if err != nil {
				return err
			}
			m.MovieHeader = v
			haveHeader = true
			return nil
		case TypeClip:
			if m.Clipping != nil {
				return fmt.Errorf("%w: moov contains more than one clip", ErrTooManyAtoms)
			}
			v, err := readClippingAtom(s, child)
			if err != nil {
				return err
			}
			m.Clipping = &v
			return nil
		case TypeTrak:
			if len(m.Tracks) >= cfg.MaxTrackAtoms {
				return fmt.Errorf("%w: moov exceeds %d trak atoms", ErrTooManyAtoms, cfg.MaxTrackAtoms)
			}
			v, err := readTrackAtom(s, child, cfg)
			if err != nil {
				return err
			}
			m.Tracks = append(m.Tracks, v)
			return nil
		case TypeUdta:
			if m.UserData != nil {
				return fmt.Errorf("%w: moov contains more than one udta", ErrTooManyAtoms)
			}
			v, err := readUserDataAtom(s, child, cfg)
			if err != nil {
				return err
			}
			m.UserData = &v
			return nil
		case TypeCtab:
			if m.ColorTable != nil {
				return fmt.Errorf("%w: moov contains more than one ctab", ErrTooManyAtoms)
			}
			if _, err := readHeader(s); err != nil {
				return err
			}
			v, err := readColorTableAtom(s, child, cfg)
			if err != nil {
				return err
			}
			m.ColorTable = &v
			return nil
		default:
			return skipChild(s, child)
		}
	})
	if err != nil {
		return MovieAtom{}, err
	}
	if !haveHeader {
		return MovieAtom{}, fmt.Errorf("%w: moov is missing its mvhd", ErrBadFormat)
	}
	return m, nil
}
