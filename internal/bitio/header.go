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

package bitio

// Header is the 8-byte prefix common to every atom: a total size
// (including these 8 bytes) and a 4-byte type code.
type Header struct {
	Size uint32
	Type [4]byte
}

// PeekHeader reads the 8-byte header at the stream's current position and
// rewinds so the caller can invoke the full decoder for that atom. It is
// the only other rewind site besides minf variant discrimination.
//
// Fails with io.EOF cleanly when called at stream end; callers at the
// top level use that as their termination signal.
func PeekHeader(s Stream) (Header, error) {
	var h Header
	size, err := U32(s)
	if err != nil {
		return Header{}, err
	}
	if err := s.Read(h.Type[:]); err != nil {
		return Header{}, err
	}
	h.Size = size
	if err := s.Seek(-8); err != nil {
		return Header{}, err
	}
	return h, nil
}

// ReadHeader consumes the 8-byte header without rewinding, for decoders
// that have already peeked and now want to commit past it.
func ReadHeader(s Stream) (Header, error) {
	var h Header
	size, err := U32(s)
	if err != nil {
		return Header{}, err
	}
	if err := s.Read(h.Type[:]); err != nil {
		return Header{}, err
	}
	h.Size = size
	return h, nil
}
