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

// SampleDescriptionEntry describes one sample format within a track: a
// self-sized record whose trailing bytes are format-specific and opaque
// to this decoder.
type SampleDescriptionEntry struct {
	Size               uint32
	DataFormat         FourCC
	DataReferenceIndex uint16
	Additional         []byte
}

const sampleDescriptionEntryPrefix = 16 // size(4)+data_format(4)+reserved(6)+data_reference_index(2)

func readSampleDescriptionEntry(s bitio.Stream) (SampleDescriptionEntry, error) {
	var e SampleDescriptionEntry
	size, err := bitio.U32(s)
	if err != nil {
		return SampleDescriptionEntry{}, err
	}
	if size < sampleDescriptionEntryPrefix {
		return SampleDescriptionEntry{}, fmt.Errorf("%w: sample description entry declares size %d (< %d)", ErrBadFormat, size, sampleDescriptionEntryPrefix)
	}
	e.Size = size
	var format [4]byte
	if err := s.Read(format[:]); err != nil {
		return SampleDescriptionEntry{}, err
	}
	e.DataFormat = FourCC(format)
	if _, err := bitio.Bytes(s, 6); err != nil { // reserved
		return SampleDescriptionEntry{}, err
	}
	if e.DataReferenceIndex, err = bitio.U16(s); err != nil {
		return SampleDescriptionEntry{}, err
	}
	if e.Additional, err = bitio.Bytes(s, int(size)-sampleDescriptionEntryPrefix); err != nil {
		return SampleDescriptionEntry{}, err
	}
	return e, nil
}

// SampleDescription is the stsd atom: a VersionFlags-prefixed table of
// self-sized SampleDescriptionEntry records, bounded by
// Config.MaxSampleDescriptionTableLen.
type SampleDescription struct {
	VersionFlags VersionFlags
	Entries      []SampleDescriptionEntry
}

func readSampleDescriptionAtom(s bitio.Stream, header AtomHeader, cfg Config) (SampleDescription, error) {
	vf, err := readVersionFlags(s)
	if err != nil {
		return SampleDescription{}, err
	}
	numEntries, err := bitio.U32(s)
	if err != nil {
		return SampleDescription{}, err
	}
	if int(numEntries) > cfg.MaxSampleDescriptionTableLen {
		return SampleDescription{}, fmt.Errorf("%w: stsd has %d entries", ErrTooManyAtoms, numEntries)
	}
	sd := SampleDescription{VersionFlags: vf, Entries: make([]SampleDescriptionEntry, 0, numEntries)}
	consumed := int64(8 + 4 + 4) // header + version_flags + number_of_entries
	for i := uint32(0); i < numEntries; i++ {
		before, err := s.Tell()
		if err != nil {
			return SampleDescription{}, err
		}
		entry, err := readSampleDescriptionEntry(s)
		if err != nil {
			return SampleDescription{}, err
		}
		after, err := s.Tell()
		if err != nil {
			return SampleDescription{}, err
		}
		consumed += after - before
		sd.Entries = append(sd.Entries, entry)
	}
	if consumed != int64(header.Size) {
		return SampleDescription{}, fmt.Errorf("%w: stsd size %d does not match %d entries consumed (%d bytes)", ErrBadFormat, header.Size, numEntries, consumed)
	}
	return sd, nil
}
