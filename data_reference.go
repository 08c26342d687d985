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

// DataReferenceEntry names one location a track's media data may be
// found at (e.g. "self contained within this file", a URL, an alias).
// The data region itself is opaque to this decoder.
type DataReferenceEntry struct {
	Size         uint32
	Type         FourCC
	VersionFlags VersionFlags
	Data         []byte
}

const dataReferenceEntryPrefix = 12 // size(4) + type(4) + version_flags(4)

func readDataReferenceEntry(s bitio.Stream, dataCap int) (DataReferenceEntry, error) {
	var e DataReferenceEntry
	size, err := bitio.U32(s)
	if err != nil {
		return DataReferenceEntry{}, err
	}
	if size < dataReferenceEntryPrefix {
		return DataReferenceEntry{}, fmt.Errorf("%w: data reference entry declares size %d (< %d)", ErrBadFormat, size, dataReferenceEntryPrefix)
	}
	e.Size = size
	var typ [4]byte
	if err := s.Read(typ[:]); err != nil {
		return DataReferenceEntry{}, err
	}
	e.Type = FourCC(typ)
	if e.VersionFlags, err = readVersionFlags(s); err != nil {
		return DataReferenceEntry{}, err
	}
	dataLen := int(size) - dataReferenceEntryPrefix
	if dataLen > dataCap {
		return DataReferenceEntry{}, fmt.Errorf("%w: data reference entry payload %d bytes", ErrTooManyAtoms, dataLen)
	}
	if e.Data, err = bitio.Bytes(s, dataLen); err != nil {
		return DataReferenceEntry{}, err
	}
	return e, nil
}

// DataReference is the dref atom: a VersionFlags-prefixed table of
// DataReferenceEntry, bounded by Config.MaxDataReferences.
type DataReference struct {
	VersionFlags VersionFlags
	Entries      []DataReferenceEntry
}

func readDataReferenceAtom(s bitio.Stream, header AtomHeader, cfg Config) (DataReference, error) {
	vf, err := readVersionFlags(s)
	if err != nil {
		return DataReference{}, err
	}
	numEntries, err := bitio.U32(s)
	if err != nil {
		return DataReference{}, err
	}
	if int(numEntries) > cfg.MaxDataReferences {
		return DataReference{}, fmt.Errorf("%w: dref has %d entries", ErrTooManyAtoms, numEntries)
	}
	dr := DataReference{VersionFlags: vf, Entries: make([]DataReferenceEntry, 0, numEntries)}
	consumed := int64(8 + 4 + 4)
	for i := uint32(0); i < numEntries; i++ {
		before, err := s.Tell()
		if err != nil {
			return DataReference{}, err
		}
		entry, err := readDataReferenceEntry(s, cfg.MaxDataReferenceDataSize)
		if err != nil {
			return DataReference{}, err
		}
		after, err := s.Tell()
		if err != nil {
			return DataReference{}, err
		}
		consumed += after - before
		dr.Entries = append(dr.Entries, entry)
	}
	if consumed != int64(header.Size) {
		return DataReference{}, fmt.Errorf("%w: dref size %d does not match %d entries consumed (%d bytes)", ErrBadFormat, header.Size, numEntries, consumed)
	}
	return dr, nil
}

// DataInformation is the dinf atom: a container holding a single dref.
type DataInformation struct {
	DataReference *DataReference
}

func readDataInformationAtom(s bitio.Stream, header AtomHeader, cfg Config) (DataInformation, error) {
	if _, err := readHeader(s); err != nil {
		return DataInformation{}, err
	}
	var di DataInformation
	err := childLoop(s, header, func(child AtomHeader) error {
		switch child.Type {
		case TypeDref:
			if di.DataReference != nil {
				return fmt.Errorf("%w: dinf contains more than one dref", ErrTooManyAtoms)
			}
			if _, err := readHeader(s); err != nil {
				return err
			}
			v, err := readDataReferenceAtom(s, child, cfg)
			if err != nil {
				return err
			}
			di.DataReference = &v
			return nil
		default:
			return skipChild(s, child)
		}
	})
	if err != nil {
		return DataInformation{}, err
	}
	return di, nil
}
