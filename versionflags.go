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

// VersionFlags is the 4-byte prefix on a full box: a 1-byte version and a
// 3-byte flags field. It is always 4 bytes on the wire regardless of the
// version value.
type VersionFlags struct {
	Version uint8
	Flags   uint32 // low 24 bits only
}

// readVersionFlags reads the 1-byte version followed by the 3-byte flags
// field that prefixes every full box.
func readVersionFlags(s bitio.Stream) (VersionFlags, error) {
	b, err := bitio.Bytes(s, 1)
	if err != nil {
		return VersionFlags{}, err
	}
	flags, err := bitio.U24(s)
	if err != nil {
		return VersionFlags{}, err
	}
	return VersionFlags{Version: b[0], Flags: flags}, nil
}
