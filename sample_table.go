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

import "github.com/mycophonic/qtff/internal/bitio"

// SampleTable is the stbl atom: the set of tables describing sample
// timing, size, ordering, and file offsets for one track's media.
type SampleTable struct {
	SampleDescription     *SampleDescription
	TimeToSample          *TimeToSample
	CompositionOffset     *CompositionOffset
	CompositionShift      *CompositionShift
	SyncSample            *SyncSample
	PartialSyncSample     *PartialSyncSample
	SampleToChunk         *SampleToChunk
	SampleSize            *SampleSize
	ChunkOffset           *ChunkOffset
	SampleDependencyFlags *SampleDependencyFlags
}

func readSampleTableAtom(s bitio.Stream, header AtomHeader, cfg Config) (SampleTable, error) {
	if _, err := readHeader(s); err != nil {
		return SampleTable{}, err
	}
	var st SampleTable
	err := childLoop(s, header, func(child AtomHeader) error {
		switch child.Type {
		case TypeStsd:
			if _, err := readHeader(s); err != nil {
				return err
			}
			v, err := readSampleDescriptionAtom(s, child, cfg)
			if err != nil {
				return err
			}
			st.SampleDescription = &v
		case TypeStts:
			if _, err := readHeader(s); err != nil {
				return err
			}
			v, err := readTimeToSampleAtom(s, child, cfg)
			if err != nil {
				return err
			}
			st.TimeToSample = &v
		case TypeCtts:
			if _, err := readHeader(s); err != nil {
				return err
			}
			v, err := readCompositionOffsetAtom(s, child, cfg)
			if err != nil {
				return err
			}
			st.CompositionOffset = &v
		case TypeCslg:
			if _, err := readHeader(s); err != nil {
				return err
			}
			v, err := readCompositionShiftAtom(s, child)
			if err != nil {
				return err
			}
			st.CompositionShift = &v
		case TypeStss:
			if _, err := readHeader(s); err != nil {
				return err
			}
			v, err := readSyncSampleAtom(s, child, cfg)
			if err != nil {
				return err
			}
			st.SyncSample = &v
		case TypeStps:
			if _, err := readHeader(s); err != nil {
				return err
			}
			v, err := readPartialSyncSampleAtom(s, child, cfg)
			if err != nil {
				return err
			}
			st.PartialSyncSample = &v
		case TypeStsc:
			if _, err := readHeader(s); err != nil {
				return err
			}
			v, err := readSampleToChunkAtom(s, child, cfg)
			if err != nil {
				return err
			}
			st.SampleToChunk = &v
		case TypeStsz:
			if _, err := readHeader(s); err != nil {
				return err
			}
			v, err := readSampleSizeAtom(s, child, cfg)
			if err != nil {
				return err
			}
			st.SampleSize = &v
		case TypeStco:
			if _, err := readHeader(s); err != nil {
				return err
			}
			v, err := readChunkOffsetAtom(s, child, cfg)
			if err != nil {
				return err
			}
			st.ChunkOffset = &v
		case TypeSdtp:
			if _, err := readHeader(s); err != nil {
				return err
			}
			v, err := readSampleDependencyFlagsAtom(s, child, cfg)
			if err != nil {
				return err
			}
			st.SampleDependencyFlags = &v
		default:
			return skipChild(s, child)
		}
		return nil
	})
	if err != nil {
		return SampleTable{}, err
	}
	return st, nil
}
