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

func movieHeaderBytes() []byte {
	var buf bytes.Buffer
	u32be(&buf, movieHeaderSize)
	buf.WriteString("mvhd")
	buf.WriteByte(0) // version
	buf.Write([]byte{0, 0, 0}) // flags
	u32be(&buf, 1)             // creation_time
	u32be(&buf, 2)             // modification_time
	u32be(&buf, 600)           // time_scale
	u32be(&buf, 1200)          // duration
	u32be(&buf, 0x00010000)    // preferred_rate (1.0)
	u16be(&buf, 0x0100)        // preferred_volume (1.0)
	buf.Write(make([]byte, 10))
	// matrix: a,b,u,c,d,v,x,y,w
	u32be(&buf, 0x00010000)
	u32be(&buf, 0)
	u32be(&buf, 0)
	u32be(&buf, 0)
	u32be(&buf, 0x00010000)
	u32be(&buf, 0)
	u32be(&buf, 0)
	u32be(&buf, 0)
	u32be(&buf, 0x40000000)
	u32be(&buf, 0) // preview_time
	u32be(&buf, 0) // preview_duration
	u32be(&buf, 0) // poster_time
	u32be(&buf, 0) // selection_time
	u32be(&buf, 0) // selection_duration
	u32be(&buf, 0) // current_time
	u32be(&buf, 2) // next_track_id
	return buf.Bytes()
}

func TestReadMovieHeaderAtom(t *testing.T) {
	t.Parallel()

	data := movieHeaderBytes()
	s := bitio.NewMemoryStream(data)
	header, err := readHeader(s)
	if err != nil {
		t.Fatalf("readHeader: %v", err)
	}
	mh, err := readMovieHeaderAtom(s, header)
	if err != nil {
		t.Fatalf("readMovieHeaderAtom: %v", err)
	}
	if mh.TimeScale != 600 || mh.Duration != 1200 || mh.NextTrackID != 2 {
		t.Fatalf("mh = %+v; want TimeScale 600, Duration 1200, NextTrackID 2", mh)
	}
	if mh.PreferredRate.Float64() != 1.0 {
		t.Fatalf("PreferredRate = %v; want 1.0", mh.PreferredRate.Float64())
	}
	if mh.Matrix.W.Float64() != 1.0 {
		t.Fatalf("Matrix.W = %v; want 1.0", mh.Matrix.W.Float64())
	}
}

func TestReadMovieHeaderAtomWrongSize(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	u32be(&buf, movieHeaderSize-1)
	buf.WriteString("mvhd")

	s := bitio.NewMemoryStream(buf.Bytes())
	header, err := readHeader(s)
	if err != nil {
		t.Fatalf("readHeader: %v", err)
	}
	_, err = readMovieHeaderAtom(s, header)
	if !errors.Is(err, ErrBadFormat) {
		t.Fatalf("readMovieHeaderAtom = %v; want ErrBadFormat", err)
	}
}

func TestParseMovieAtomRequiresMovieHeader(t *testing.T) {
	t.Parallel()

	var moov bytes.Buffer
	u32be(&moov, 8)
	moov.WriteString("moov")

	_, err := Parse(bitio.NewMemoryStream(moov.Bytes()), DefaultConfig())
	if !errors.Is(err, ErrBadFormat) {
		t.Fatalf("Parse = %v; want ErrBadFormat", err)
	}
}

func TestParseMovieAtomWithHeaderAndNoTracks(t *testing.T) {
	t.Parallel()

	var moov bytes.Buffer
	u32be(&moov, uint32(8+len(movieHeaderBytes())))
	moov.WriteString("moov")
	moov.Write(movieHeaderBytes())

	mf, err := Parse(bitio.NewMemoryStream(moov.Bytes()), DefaultConfig())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(mf.Movie) != 1 {
		t.Fatalf("len(Movie) = %d; want 1", len(mf.Movie))
	}
	if mf.Movie[0].MovieHeader.TimeScale != 600 {
		t.Fatalf("TimeScale = %d; want 600", mf.Movie[0].MovieHeader.TimeScale)
	}
	if len(mf.Movie[0].Tracks) != 0 {
		t.Fatalf("len(Tracks) = %d; want 0", len(mf.Movie[0].Tracks))
	}
}
