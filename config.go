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

// Config holds the capacity ceilings a Parse call enforces on every
// bounded table, sequence, or variable-length region. The source keeps
// these as compile-time constants backing fixed-capacity C arrays; here
// they are runtime values on a Config so a caller can tune them, while
// ErrTooManyAtoms stays reachable as the resource-exhaustion signal that
// bounds allocation against attacker-controlled counts.
type Config struct {
	MaxCompatibleBrands              int
	MaxUserDataItems                 int
	MaxTrackAtoms                    int
	MaxTrackReferenceTypeAtoms       int
	MaxTrackReferenceTypeTrackIDs    int
	MaxLanguageTagLength             int
	MaxComponentNameLength           int
	MaxDataReferences                int
	MaxDataReferenceDataSize         int
	MaxSampleDescriptionTableLen     int
	MaxTimeToSampleTableLen          int
	MaxCompositionOffsetTableLen     int
	MaxSyncSampleTableLen            int
	MaxPartialSyncSampleTableLen     int
	MaxSampleToChunkTableLen         int
	MaxSampleSizeTableLen            int
	MaxChunkOffsetTableLen           int
	MaxSampleDependencyFlagsTableLen int
	MaxEditListEntries               int
	MaxFileTypeCompatibilityAtoms    int
	MaxMovieAtoms                    int
	MaxMovieDataAtoms                int
	MaxFreeAtoms                     int
	MaxSkipAtoms                     int
	MaxWideAtoms                     int
}

// DefaultConfig returns generous limits: large enough to admit any
// real-world QuickTime file's table sizes while still bounding every
// count that arrives on the wire as an attacker-controlled u32.
func DefaultConfig() Config {
	return Config{
		MaxCompatibleBrands:              256,
		MaxUserDataItems:                 4096,
		MaxTrackAtoms:                    256,
		MaxTrackReferenceTypeAtoms:       64,
		MaxTrackReferenceTypeTrackIDs:    4096,
		MaxLanguageTagLength:             256,
		MaxComponentNameLength:           256,
		MaxDataReferences:                64,
		MaxDataReferenceDataSize:         1 << 16,
		MaxSampleDescriptionTableLen:     256,
		MaxTimeToSampleTableLen:          1 << 20,
		MaxCompositionOffsetTableLen:     1 << 20,
		MaxSyncSampleTableLen:            1 << 20,
		MaxPartialSyncSampleTableLen:     1 << 20,
		MaxSampleToChunkTableLen:         1 << 20,
		MaxSampleSizeTableLen:            1 << 22,
		MaxChunkOffsetTableLen:           1 << 20,
		MaxSampleDependencyFlagsTableLen: 1 << 22,
		MaxEditListEntries:               4096,
		MaxFileTypeCompatibilityAtoms:    64,
		MaxMovieAtoms:                    64,
		MaxMovieDataAtoms:                1 << 16,
		MaxFreeAtoms:                     4096,
		MaxSkipAtoms:                     4096,
		MaxWideAtoms:                     4096,
	}
}
