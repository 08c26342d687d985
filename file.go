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

// Package qtff decodes the QuickTime / ISO base-media atom tree: a
// nested, length-prefixed, big-endian binary container, into strongly
// typed records. Only the container is parsed; sample (media payload)
// data is located but never interpreted, and there is no writer.
package qtff

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mycophonic/qtff/internal/bitio"
)

// FileTypeCompatibility is the ftyp atom: the file's major brand and the
// set of brands it is compatible with.
type FileTypeCompatibility struct {
	MajorBrand       FourCC
	MinorVersion     uint32
	CompatibleBrands []FourCC
}

const fileTypeCompatibilityFixedPrefix = 8 + 4 + 4 // header + major_brand + minor_version

func readFileTypeCompatibilityAtom(s bitio.Stream, header AtomHeader, cfg Config) (FileTypeCompatibility, error) {
	var ftyp FileTypeCompatibility
	var major [4]byte
	if err := s.Read(major[:]); err != nil {
		return FileTypeCompatibility{}, err
	}
	ftyp.MajorBrand = FourCC(major)
	minor, err := bitio.U32(s)
	if err != nil {
		return FileTypeCompatibility{}, err
	}
	ftyp.MinorVersion = minor
	region := int64(header.Size) - fileTypeCompatibilityFixedPrefix
	if region < 0 || region%4 != 0 {
		return FileTypeCompatibility{}, fmt.Errorf("%w: ftyp region %d is not a multiple of 4", ErrBadFormat, region)
	}
	count := region / 4
	if int(count) > cfg.MaxCompatibleBrands {
		return FileTypeCompatibility{}, fmt.Errorf("%w: ftyp has %d compatible brands", ErrTooManyAtoms, count)
	}
	ftyp.CompatibleBrands = make([]FourCC, count)
	for i := range ftyp.CompatibleBrands {
		var b [4]byte
		if err := s.Read(b[:]); err != nil {
			return FileTypeCompatibility{}, err
		}
		ftyp.CompatibleBrands[i] = FourCC(b)
	}
	return ftyp, nil
}

// MovieData is the mdat atom: the file's sample data. Its payload is
// never read into memory by this decoder — only its extent is recorded
// — since interpreting sample data is out of scope.
type MovieData struct {
	// Offset is the byte offset of the first payload byte (immediately
	// after the 8-byte header).
	Offset int64
	// Size is the number of payload bytes, excluding the header.
	Size uint32
}

func readMovieDataAtom(s bitio.Stream, header AtomHeader) (MovieData, error) {
	offset, err := s.Tell()
	if err != nil {
		return MovieData{}, err
	}
	if err := bitio.Skip(s, int64(header.Size)-8); err != nil {
		return MovieData{}, err
	}
	return MovieData{Offset: offset, Size: header.Size - 8}, nil
}

// FreeSpace is the free, skip, or wide atom: unused or reserved space
// whose content is ignored.
type FreeSpace struct {
	Size uint32
}

func readFreeSpaceAtom(s bitio.Stream, header AtomHeader) (FreeSpace, error) {
	if err := bitio.Skip(s, int64(header.Size)-8); err != nil {
		return FreeSpace{}, err
	}
	return FreeSpace{Size: header.Size - 8}, nil
}

// PreviewAtom is the pnot atom: a pointer to the atom holding a
// representative preview image for the file.
type PreviewAtom struct {
	ModificationTime uint32
	Version          uint16
	AtomType         FourCC
	AtomIndex        uint16
}

const previewAtomSize = 8 + 4 + 2 + 4 + 2

func readPreviewAtom(s bitio.Stream, header AtomHeader) (PreviewAtom, error) {
	if header.Size != previewAtomSize {
		return PreviewAtom{}, fmt.Errorf("%w: pnot declares size %d, want %d", ErrBadFormat, header.Size, previewAtomSize)
	}
	var p PreviewAtom
	var err error
	if p.ModificationTime, err = bitio.U32(s); err != nil {
		return PreviewAtom{}, err
	}
	if p.Version, err = bitio.U16(s); err != nil {
		return PreviewAtom{}, err
	}
	var atomType [4]byte
	if err := s.Read(atomType[:]); err != nil {
		return PreviewAtom{}, err
	}
	p.AtomType = FourCC(atomType)
	if p.AtomIndex, err = bitio.U16(s); err != nil {
		return PreviewAtom{}, err
	}
	return p, nil
}

// MovieFile is the top-level aggregate: the ordered sequences of every
// recognised top-level atom kind found in the stream.
type MovieFile struct {
	FileType  []FileTypeCompatibility
	MovieData []MovieData
	Movie     []MovieAtom
	Free      []FreeSpace
	Skip      []FreeSpace
	Wide      []FreeSpace
	Preview   []PreviewAtom
}

// Parse reads a stream from its current position to end-of-stream,
// dispatching each top-level atom to its decoder and accumulating the
// result. It terminates successfully when header-peek reports io.EOF at
// a top-level boundary; any other error aborts the parse.
func Parse(s bitio.Stream, cfg Config) (MovieFile, error) {
	var mf MovieFile
	for {
		header, err := peekHeader(s)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return mf, nil
			}
			return MovieFile{}, err
		}
		if header.Size < 8 {
			return MovieFile{}, fmt.Errorf("%w: top-level atom %q declares size %d (< 8)", ErrBadFormat, header.Type, header.Size)
		}

		switch header.Type {
		case TypeFtyp:
			if len(mf.FileType) >= cfg.MaxFileTypeCompatibilityAtoms {
				return MovieFile{}, fmt.Errorf("%w: file exceeds %d ftyp atoms", ErrTooManyAtoms, cfg.MaxFileTypeCompatibilityAtoms)
			}
			if _, err := readHeader(s); err != nil {
				return MovieFile{}, err
			}
			v, err := readFileTypeCompatibilityAtom(s, header, cfg)
			if err != nil {
				return MovieFile{}, err
			}
			mf.FileType = append(mf.FileType, v)
		case TypeMoov:
			if len(mf.Movie) >= cfg.MaxMovieAtoms {
				return MovieFile{}, fmt.Errorf("%w: file exceeds %d moov atoms", ErrTooManyAtoms, cfg.MaxMovieAtoms)
			}
			v, err := readMovieAtom(s, header, cfg)
			if err != nil {
				return MovieFile{}, err
			}
			mf.Movie = append(mf.Movie, v)
		case TypeMdat:
			if len(mf.MovieData) >= cfg.MaxMovieDataAtoms {
				return MovieFile{}, fmt.Errorf("%w: file exceeds %d mdat atoms", ErrTooManyAtoms, cfg.MaxMovieDataAtoms)
			}
			if _, err := readHeader(s); err != nil {
				return MovieFile{}, err
			}
			v, err := readMovieDataAtom(s, header)
			if err != nil {
				return MovieFile{}, err
			}
			mf.MovieData = append(mf.MovieData, v)
		case TypeFree:
			if len(mf.Free) >= cfg.MaxFreeAtoms {
				return MovieFile{}, fmt.Errorf("%w: file exceeds %d free atoms", ErrTooManyAtoms, cfg.MaxFreeAtoms)
			}
			if _, err := readHeader(s); err != nil {
				return MovieFile{}, err
			}
			v, err := readFreeSpaceAtom(s, header)
			if err != nil {
				return MovieFile{}, err
			}
			mf.Free = append(mf.Free, v)
		case TypeSkip:
			if len(mf.Skip) >= cfg.MaxSkipAtoms {
				return MovieFile{}, fmt.Errorf("%w: file exceeds %d skip atoms", ErrTooManyAtoms, cfg.MaxSkipAtoms)
			}
			if _, err := readHeader(s); err != nil {
				return MovieFile{}, err
			}
			v, err := readFreeSpaceAtom(s, header)
			if err != nil {
				return MovieFile{}, err
			}
			mf.Skip = append(mf.Skip, v)
		case TypeWide:
			if len(mf.Wide) >= cfg.MaxWideAtoms {
				return MovieFile{}, fmt.Errorf("%w: file exceeds %d wide atoms", ErrTooManyAtoms, cfg.MaxWideAtoms)
			}
			if _, err := readHeader(s); err != nil {
				return MovieFile{}, err
			}
			v, err := readFreeSpaceAtom(s, header)
			if err != nil {
				return MovieFile{}, err
			}
			mf.Wide = append(mf.Wide, v)
		case TypePnot:
			if _, err := readHeader(s); err != nil {
				return MovieFile{}, err
			}
			v, err := readPreviewAtom(s, header)
			if err != nil {
				return MovieFile{}, err
			}
			mf.Preview = append(mf.Preview, v)
		default:
			if err := skipChild(s, header); err != nil {
				return MovieFile{}, err
			}
		}
	}
}

// ParseFile opens path and parses it as a QuickTime / MP4 container
// using DefaultConfig.
func ParseFile(path string) (MovieFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return MovieFile{}, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()
	return Parse(bitio.NewFileStream(f), DefaultConfig())
}
