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

func sttsBytes(entries []TimeToSampleEntry) []byte {
	var buf bytes.Buffer
	u32be(&buf, uint32(8+4+4+8*len(entries)))
	buf.WriteString("stts")
	buf.WriteByte(0)
	buf.Write([]byte{0, 0, 0})
	u32be(&buf, uint32(len(entries)))
	for _, e := range entries {
		u32be(&buf, e.SampleCount)
		u32be(&buf, e.SampleDuration)
	}
	return buf.Bytes()
}

func TestReadTimeToSampleAtom(t *testing.T) {
	t.Parallel()

	data := sttsBytes([]TimeToSampleEntry{{SampleCount: 10, SampleDuration: 512}})
	s := bitio.NewMemoryStream(data)
	header, err := readHeader(s)
	if err != nil {
		t.Fatalf("readHeader: %v", err)
	}
	tts, err := readTimeToSampleAtom(s, header, DefaultConfig())
	if err != nil {
		t.Fatalf("readTimeToSampleAtom: %v", err)
	}
	if len(tts.Entries) != 1 || tts.Entries[0].SampleCount != 10 || tts.Entries[0].SampleDuration != 512 {
		t.Fatalf("tts = %+v; want one {10 512} entry", tts)
	}
}

func TestReadTimeToSampleAtomExceedsCap(t *testing.T) {
	t.Parallel()

	data := sttsBytes([]TimeToSampleEntry{{1, 1}, {2, 2}})
	cfg := DefaultConfig()
	cfg.MaxTimeToSampleTableLen = 1

	s := bitio.NewMemoryStream(data)
	header, err := readHeader(s)
	if err != nil {
		t.Fatalf("readHeader: %v", err)
	}
	_, err = readTimeToSampleAtom(s, header, cfg)
	if !errors.Is(err, ErrTooManyAtoms) {
		t.Fatalf("readTimeToSampleAtom = %v; want ErrTooManyAtoms", err)
	}
}

func TestReadTimeToSampleAtomInconsistentRowWidth(t *testing.T) {
	t.Parallel()

	// Declares 1 entry (8 bytes) but the atom size only leaves room for 4.
	var buf bytes.Buffer
	u32be(&buf, 8+4+4+4)
	buf.WriteString("stts")
	buf.WriteByte(0)
	buf.Write([]byte{0, 0, 0})
	u32be(&buf, 1)
	u32be(&buf, 0)

	s := bitio.NewMemoryStream(buf.Bytes())
	header, err := readHeader(s)
	if err != nil {
		t.Fatalf("readHeader: %v", err)
	}
	_, err = readTimeToSampleAtom(s, header, DefaultConfig())
	if !errors.Is(err, ErrBadFormat) {
		t.Fatalf("readTimeToSampleAtom = %v; want ErrBadFormat", err)
	}
}

func TestReadSampleSizeAtomFixedSize(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	u32be(&buf, 8+4+4+4) // no trailing table
	buf.WriteString("stsz")
	buf.WriteByte(0)
	buf.Write([]byte{0, 0, 0})
	u32be(&buf, 1024) // fixed sample_size
	u32be(&buf, 7)    // number_of_entries, ignored when sample_size != 0

	s := bitio.NewMemoryStream(buf.Bytes())
	header, err := readHeader(s)
	if err != nil {
		t.Fatalf("readHeader: %v", err)
	}
	ss, err := readSampleSizeAtom(s, header, DefaultConfig())
	if err != nil {
		t.Fatalf("readSampleSizeAtom: %v", err)
	}
	if ss.SampleSize != 1024 || len(ss.EntrySize) != 0 {
		t.Fatalf("ss = %+v; want SampleSize 1024, no EntrySize", ss)
	}
}

func TestReadSampleDependencyFlagsAtomDerivesCountFromSize(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	u32be(&buf, 8+4+3) // 3 flag bytes, no explicit count field
	buf.WriteString("sdtp")
	buf.WriteByte(0)
	buf.Write([]byte{0, 0, 0})
	buf.Write([]byte{0x01, 0x02, 0x03})

	s := bitio.NewMemoryStream(buf.Bytes())
	header, err := readHeader(s)
	if err != nil {
		t.Fatalf("readHeader: %v", err)
	}
	sdf, err := readSampleDependencyFlagsAtom(s, header, DefaultConfig())
	if err != nil {
		t.Fatalf("readSampleDependencyFlagsAtom: %v", err)
	}
	if !bytes.Equal(sdf.Flags, []byte{0x01, 0x02, 0x03}) {
		t.Fatalf("Flags = %v; want [1 2 3]", sdf.Flags)
	}
}
