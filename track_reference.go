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

// TrackReferenceTypeAtom is one child of tref: a reference-type code
// (e.g. "hint", "cdsc") and the track IDs it refers to.
type TrackReferenceTypeAtom struct {
	ReferenceType FourCC
	TrackIDs      []uint32
}

func readTrackIDTable(s bitio.Stream, header AtomHeader, cap int) ([]uint32, error) {
	n := (int64(header.Size) - 8) / 4
	if n*4 != int64(header.Size)-8 {
		return nil, fmt.Errorf("%w: %q size %d not a multiple of 4 track IDs", ErrBadFormat, header.Type, header.Size)
	}
	if int(n) > cap {
		return nil, fmt.Errorf("%w: %q references %d track IDs", ErrTooManyAtoms, header.Type, n)
	}
	ids := make([]uint32, n)
	for i := range ids {
		v, err := bitio.U32(s)
		if err != nil {
			return nil, err
		}
		ids[i] = v
	}
	return ids, nil
}

// TrackReference is the tref atom: a container of
// TrackReferenceTypeAtom children, bounded by
// Config.MaxTrackReferenceTypeAtoms.
type TrackReference struct {
	References []TrackReferenceTypeAtom
}

func readTrackReferenceAtom(s bitio.Stream, header AtomHeader, cfg Config) (TrackReference, error) {
	if _, err := readHeader(s); err != nil {
		return TrackReference{}, err
	}
	var tr TrackReference
	err := childLoop(s, header, func(child AtomHeader) error {
		if len(tr.References) >= cfg.MaxTrackReferenceTypeAtoms {
			return fmt.Errorf("%w: tref exceeds %d reference-type atoms", ErrTooManyAtoms, cfg.MaxTrackReferenceTypeAtoms)
		}
		if _, err := readHeader(s); err != nil {
			return err
		}
		ids, err := readTrackIDTable(s, child, cfg.MaxTrackReferenceTypeTrackIDs)
		if err != nil {
			return err
		}
		tr.References = append(tr.References, TrackReferenceTypeAtom{ReferenceType: child.Type, TrackIDs: ids})
		return nil
	})
	if err != nil {
		return TrackReference{}, err
	}
	return tr, nil
}

// TrackExcludeFromAutoSelection is the txas atom: a marker with no
// payload beyond its header.
type TrackExcludeFromAutoSelection struct{}

func readTrackExcludeFromAutoSelectionAtom(header AtomHeader) (TrackExcludeFromAutoSelection, error) {
	if header.Size != 8 {
		return TrackExcludeFromAutoSelection{}, fmt.Errorf("%w: txas declares size %d, want 8", ErrBadFormat, header.Size)
	}
	return TrackExcludeFromAutoSelection{}, nil
}
