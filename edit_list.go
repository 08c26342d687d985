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

// EditListEntry is one row of an elst table.
type EditListEntry struct {
	TrackDuration uint32
	MediaTime     uint32
	MediaRate     Fixed16_16
}

const editListEntrySize = 12

// EditList is the elst atom: a VersionFlags-prefixed table of
// EditListEntry, bounded by Config.MaxEditListEntries.
type EditList struct {
	VersionFlags VersionFlags
	Entries      []EditListEntry
}

func readEditListAtom(s bitio.Stream, header AtomHeader, cfg Config) (EditList, error) {
	vf, err := readVersionFlags(s)
	if err != nil {
		return EditList{}, err
	}
	numEntries, err := bitio.U32(s)
	if err != nil {
		return EditList{}, err
	}
	const fixedPrefix = 8 + 4 + 4 // header + version_flags + number_of_entries
	region := int64(header.Size) - fixedPrefix
	if region < 0 || region%editListEntrySize != 0 || region/editListEntrySize != int64(numEntries) {
		return EditList{}, fmt.Errorf("%w: elst size %d inconsistent with %d entries", ErrBadFormat, header.Size, numEntries)
	}
	if int(numEntries) > cfg.MaxEditListEntries {
		return EditList{}, fmt.Errorf("%w: elst has %d entries", ErrTooManyAtoms, numEntries)
	}
	el := EditList{VersionFlags: vf, Entries: make([]EditListEntry, numEntries)}
	for i := range el.Entries {
		dur, err := bitio.U32(s)
		if err != nil {
			return EditList{}, err
		}
		mt, err := bitio.U32(s)
		if err != nil {
			return EditList{}, err
		}
		rate, err := bitio.U32(s)
		if err != nil {
			return EditList{}, err
		}
		el.Entries[i] = EditListEntry{TrackDuration: dur, MediaTime: mt, MediaRate: Fixed16_16(rate)}
	}
	return el, nil
}

// Edits is the edts atom: a container holding at most one elst child.
type Edits struct {
	EditList EditList
}

var typeElst = FourCC{'e', 'l', 's', 't'}

func readEditsAtom(s bitio.Stream, header AtomHeader, cfg Config) (Edits, error) {
	if _, err := readHeader(s); err != nil {
		return Edits{}, err
	}
	var ed Edits
	have := false
	err := childLoop(s, header, func(child AtomHeader) error {
		switch child.Type {
		case typeElst:
			if have {
				return fmt.Errorf("%w: edts contains more than one elst", ErrTooManyAtoms)
			}
			if _, err := readHeader(s); err != nil {
				return err
			}
			el, err := readEditListAtom(s, child, cfg)
			if err != nil {
				return err
			}
			ed.EditList = el
			have = true
			return nil
		default:
			return skipChild(s, child)
		}
	})
	if err != nil {
		return Edits{}, err
	}
	return ed, nil
}
