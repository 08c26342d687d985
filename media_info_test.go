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
	"bytes"
	"errors"
	"testing"

	"github.com/mycophonic/qtff/internal/bitio"
)

func vmhdBytes() []byte {
	var buf bytes.Buffer
	u32be(&buf, videoMediaInformationHeaderSize)
	buf.WriteString("vmhd")
	buf.WriteByte(0)
	buf.Write([]byte{0, 0, 1}) // flags = 1, as required by the real vmhd
	u16be(&buf, 0x0040)        // graphics_mode
	u16be(&buf, 0)
	u16be(&buf, 0)
	u16be(&buf, 0)
	return buf.Bytes()
}

func TestReadMediaInformationAtomDiscriminatesVideo(t *testing.T) {
	t.Parallel()

	var minf bytes.Buffer
	u32be(&minf, uint32(8+len(vmhdBytes())))
	minf.WriteString("minf")
	minf.Write(vmhdBytes())

	s := bitio.NewMemoryStream(minf.Bytes())
	header, err := peekHeader(s)
	if err != nil {
		t.Fatalf("peekHeader: %v", err)
	}
	mi, err := readMediaInformationAtom(s, header, DefaultConfig())
	if err != nil {
		t.Fatalf("readMediaInformationAtom: %v", err)
	}
	if mi.Kind != MediaInformationVideo {
		t.Fatalf("Kind = %v; want MediaInformationVideo", mi.Kind)
	}
	if mi.VideoHeader == nil || mi.VideoHeader.GraphicsMode != 0x0040 {
		t.Fatalf("VideoHeader = %+v; want GraphicsMode 0x40", mi.VideoHeader)
	}

	// The rewind-then-redecode pass must leave the stream exactly at the
	// end of minf, ready for the caller's next sibling.
	pos, err := s.Tell()
	if err != nil {
		t.Fatalf("Tell: %v", err)
	}
	if pos != int64(minf.Len()) {
		t.Fatalf("final position = %d; want %d", pos, minf.Len())
	}
}

func TestReadMediaInformationAtomMissingDiscriminator(t *testing.T) {
	t.Parallel()

	var minf bytes.Buffer
	u32be(&minf, 8)
	minf.WriteString("minf")

	s := bitio.NewMemoryStream(minf.Bytes())
	header, err := peekHeader(s)
	if err != nil {
		t.Fatalf("peekHeader: %v", err)
	}
	_, err = readMediaInformationAtom(s, header, DefaultConfig())
	if !errors.Is(err, ErrBadFormat) {
		t.Fatalf("readMediaInformationAtom = %v; want ErrBadFormat", err)
	}
}
