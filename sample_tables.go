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

// readTableHeader reads the VersionFlags + number_of_entries prefix
// shared by most sample-table atoms and validates it against the
// declared atom size and a fixed row width.
func readTableHeader(s bitio.Stream, header AtomHeader, rowWidth int, cap int, name string) (VersionFlags, uint32, error) {
	vf, err := readVersionFlags(s)
	if err != nil {
		return VersionFlags{}, 0, err
	}
	numEntries, err := bitio.U32(s)
	if err != nil {
		return VersionFlags{}, 0, err
	}
	const fixedPrefix = 8 + 4 + 4
	region := int64(header.Size) - fixedPrefix
	if region < 0 || region%int64(rowWidth) != 0 || region/int64(rowWidth) != int64(numEntries) {
		return VersionFlags{}, 0, fmt.Errorf("%w: %s size %d inconsistent with %d entries of width %d", ErrBadFormat, name, header.Size, numEntries, rowWidth)
	}
	if int(numEntries) > cap {
		return VersionFlags{}, 0, fmt.Errorf("%w: %s has %d entries", ErrTooManyAtoms, name, numEntries)
	}
	return vf, numEntries, nil
}

// TimeToSampleEntry is one row of an stts table.
type TimeToSampleEntry struct {
	SampleCount    uint32
	SampleDuration uint32
}

// TimeToSample is the stts atom.
type TimeToSample struct {
	VersionFlags VersionFlags
	Entries      []TimeToSampleEntry
}

func readTimeToSampleAtom(s bitio.Stream, header AtomHeader, cfg Config) (TimeToSample, error) {
	vf, n, err := readTableHeader(s, header, 8, cfg.MaxTimeToSampleTableLen, "stts")
	if err != nil {
		return TimeToSample{}, err
	}
	tts := TimeToSample{VersionFlags: vf, Entries: make([]TimeToSampleEntry, n)}
	for i := range tts.Entries {
		count, err := bitio.U32(s)
		if err != nil {
			return TimeToSample{}, err
		}
		dur, err := bitio.U32(s)
		if err != nil {
			return TimeToSample{}, err
		}
		tts.Entries[i] = TimeToSampleEntry{SampleCount: count, SampleDuration: dur}
	}
	return tts, nil
}

// CompositionOffsetEntry is one row of a ctts table.
type CompositionOffsetEntry struct {
	SampleCount  uint32
	SampleOffset uint32
}

// CompositionOffset is the ctts atom.
type CompositionOffset struct {
	VersionFlags VersionFlags
	Entries      []CompositionOffsetEntry
}

func readCompositionOffsetAtom(s bitio.Stream, header AtomHeader, cfg Config) (CompositionOffset, error) {
	vf, n, err := readTableHeader(s, header, 8, cfg.MaxCompositionOffsetTableLen, "ctts")
	if err != nil {
		return CompositionOffset{}, err
	}
	co := CompositionOffset{VersionFlags: vf, Entries: make([]CompositionOffsetEntry, n)}
	for i := range co.Entries {
		count, err := bitio.U32(s)
		if err != nil {
			return CompositionOffset{}, err
		}
		off, err := bitio.U32(s)
		if err != nil {
			return CompositionOffset{}, err
		}
		co.Entries[i] = CompositionOffsetEntry{SampleCount: count, SampleOffset: off}
	}
	return co, nil
}

// CompositionShift is the cslg atom (composition-to-decode timing).
type CompositionShift struct {
	VersionFlags                VersionFlags
	CompositionToDTSShift        int32
	LeastDecodeToDisplayDelta    int32
	GreatestDecodeToDisplayDelta int32
	CompositionStartTime         int32
	CompositionEndTime           int32
}

const compositionShiftSize = 8 + 4 + 5*4

func readCompositionShiftAtom(s bitio.Stream, header AtomHeader) (CompositionShift, error) {
	if header.Size != compositionShiftSize {
		return CompositionShift{}, fmt.Errorf("%w: cslg declares size %d, want %d", ErrBadFormat, header.Size, compositionShiftSize)
	}
	vf, err := readVersionFlags(s)
	if err != nil {
		return CompositionShift{}, err
	}
	var cs CompositionShift
	cs.VersionFlags = vf
	fields := []*int32{
		&cs.CompositionToDTSShift, &cs.LeastDecodeToDisplayDelta,
		&cs.GreatestDecodeToDisplayDelta, &cs.CompositionStartTime,
		&cs.CompositionEndTime,
	}
	for _, f := range fields {
		v, err := bitio.I32(s)
		if err != nil {
			return CompositionShift{}, err
		}
		*f = v
	}
	return cs, nil
}

func readDenseU32Table(s bitio.Stream, header AtomHeader, cap int, name string) (VersionFlags, []uint32, error) {
	vf, n, err := readTableHeader(s, header, 4, cap, name)
	if err != nil {
		return VersionFlags{}, nil, err
	}
	table := make([]uint32, n)
	for i := range table {
		v, err := bitio.U32(s)
		if err != nil {
			return VersionFlags{}, nil, err
		}
		table[i] = v
	}
	return vf, table, nil
}

// SyncSample is the stss atom: indices of random-access samples.
type SyncSample struct {
	VersionFlags VersionFlags
	SampleNumber []uint32
}

func readSyncSampleAtom(s bitio.Stream, header AtomHeader, cfg Config) (SyncSample, error) {
	vf, table, err := readDenseU32Table(s, header, cfg.MaxSyncSampleTableLen, "stss")
	if err != nil {
		return SyncSample{}, err
	}
	return SyncSample{VersionFlags: vf, SampleNumber: table}, nil
}

// PartialSyncSample is the stps atom: indices of partial sync samples.
type PartialSyncSample struct {
	VersionFlags VersionFlags
	SampleNumber []uint32
}

func readPartialSyncSampleAtom(s bitio.Stream, header AtomHeader, cfg Config) (PartialSyncSample, error) {
	vf, table, err := readDenseU32Table(s, header, cfg.MaxPartialSyncSampleTableLen, "stps")
	if err != nil {
		return PartialSyncSample{}, err
	}
	return PartialSyncSample{VersionFlags: vf, SampleNumber: table}, nil
}

// ChunkOffset is the stco atom: the file offset of each chunk.
type ChunkOffset struct {
	VersionFlags VersionFlags
	ChunkOffset  []uint32
}

func readChunkOffsetAtom(s bitio.Stream, header AtomHeader, cfg Config) (ChunkOffset, error) {
	vf, table, err := readDenseU32Table(s, header, cfg.MaxChunkOffsetTableLen, "stco")
	if err != nil {
		return ChunkOffset{}, err
	}
	return ChunkOffset{VersionFlags: vf, ChunkOffset: table}, nil
}

// SampleToChunkEntry is one row of an stsc table.
type SampleToChunkEntry struct {
	FirstChunk            uint32
	SamplesPerChunk       uint32
	SampleDescriptionIndex uint32
}

// SampleToChunk is the stsc atom.
type SampleToChunk struct {
	VersionFlags VersionFlags
	Entries      []SampleToChunkEntry
}

func readSampleToChunkAtom(s bitio.Stream, header AtomHeader, cfg Config) (SampleToChunk, error) {
	vf, n, err := readTableHeader(s, header, 12, cfg.MaxSampleToChunkTableLen, "stsc")
	if err != nil {
		return SampleToChunk{}, err
	}
	stc := SampleToChunk{VersionFlags: vf, Entries: make([]SampleToChunkEntry, n)}
	for i := range stc.Entries {
		first, err := bitio.U32(s)
		if err != nil {
			return SampleToChunk{}, err
		}
		spc, err := bitio.U32(s)
		if err != nil {
			return SampleToChunk{}, err
		}
		idx, err := bitio.U32(s)
		if err != nil {
			return SampleToChunk{}, err
		}
		stc.Entries[i] = SampleToChunkEntry{FirstChunk: first, SamplesPerChunk: spc, SampleDescriptionIndex: idx}
	}
	return stc, nil
}

// SampleSize is the stsz atom. If SampleSize is non-zero, every sample
// shares that size and EntrySize is empty; otherwise EntrySize holds the
// wire's number_of_entries per-sample sizes.
type SampleSize struct {
	VersionFlags VersionFlags
	SampleSize   uint32
	EntrySize    []uint32
}

const sampleSizeFixedPrefix = 8 + 4 + 4 + 4 // header + version_flags + sample_size + number_of_entries

func readSampleSizeAtom(s bitio.Stream, header AtomHeader, cfg Config) (SampleSize, error) {
	vf, err := readVersionFlags(s)
	if err != nil {
		return SampleSize{}, err
	}
	sampleSize, err := bitio.U32(s)
	if err != nil {
		return SampleSize{}, err
	}
	numEntries, err := bitio.U32(s)
	if err != nil {
		return SampleSize{}, err
	}
	ss := SampleSize{VersionFlags: vf, SampleSize: sampleSize}
	region := int64(header.Size) - sampleSizeFixedPrefix
	if sampleSize != 0 {
		if region != 0 {
			return SampleSize{}, fmt.Errorf("%w: stsz has fixed sample_size %d but trailing region of %d bytes", ErrBadFormat, sampleSize, region)
		}
		return ss, nil
	}
	if region < 0 || region%4 != 0 || region/4 != int64(numEntries) {
		return SampleSize{}, fmt.Errorf("%w: stsz size %d inconsistent with %d entries", ErrBadFormat, header.Size, numEntries)
	}
	if int(numEntries) > cfg.MaxSampleSizeTableLen {
		return SampleSize{}, fmt.Errorf("%w: stsz has %d entries", ErrTooManyAtoms, numEntries)
	}
	ss.EntrySize = make([]uint32, numEntries)
	for i := range ss.EntrySize {
		v, err := bitio.U32(s)
		if err != nil {
			return SampleSize{}, err
		}
		ss.EntrySize[i] = v
	}
	return ss, nil
}

// SampleDependencyFlags is the sdtp atom: one byte per sample, with no
// explicit entry count on the wire — the count is derived from the
// atom's remaining size after its VersionFlags prefix.
type SampleDependencyFlags struct {
	VersionFlags VersionFlags
	Flags        []byte
}

const sampleDependencyFlagsFixedPrefix = 8 + 4 // header + version_flags

func readSampleDependencyFlagsAtom(s bitio.Stream, header AtomHeader, cfg Config) (SampleDependencyFlags, error) {
	vf, err := readVersionFlags(s)
	if err != nil {
		return SampleDependencyFlags{}, err
	}
	n := int64(header.Size) - sampleDependencyFlagsFixedPrefix
	if n < 0 {
		return SampleDependencyFlags{}, fmt.Errorf("%w: sdtp declares size %d shorter than its prefix", ErrBadFormat, header.Size)
	}
	if n > int64(cfg.MaxSampleDependencyFlagsTableLen) {
		return SampleDependencyFlags{}, fmt.Errorf("%w: sdtp has %d entries", ErrTooManyAtoms, n)
	}
	flags, err := bitio.Bytes(s, int(n))
	if err != nil {
		return SampleDependencyFlags{}, err
	}
	return SampleDependencyFlags{VersionFlags: vf, Flags: flags}, nil
}
