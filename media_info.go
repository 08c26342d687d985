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

// VideoMediaInformationHeader is the vmhd atom.
type VideoMediaInformationHeader struct {
	VersionFlags VersionFlags
	GraphicsMode uint16
	OpColor      [3]uint16
}

const videoMediaInformationHeaderSize = 8 + 4 + 2 + 6

func readVideoMediaInformationHeaderAtom(s bitio.Stream, header AtomHeader) (VideoMediaInformationHeader, error) {
	if header.Size != videoMediaInformationHeaderSize {
		return VideoMediaInformationHeader{}, fmt.Errorf("%w: vmhd declares size %d, want %d", ErrBadFormat, header.Size, videoMediaInformationHeaderSize)
	}
	vf, err := readVersionFlags(s)
	if err != nil {
		return VideoMediaInformationHeader{}, err
	}
	v := VideoMediaInformationHeader{VersionFlags: vf}
	if v.GraphicsMode, err = bitio.U16(s); err != nil {
		return VideoMediaInformationHeader{}, err
	}
	for i := range v.OpColor {
		if v.OpColor[i], err = bitio.U16(s); err != nil {
			return VideoMediaInformationHeader{}, err
		}
	}
	return v, nil
}

// SoundMediaInformationHeader is the smhd atom.
type SoundMediaInformationHeader struct {
	VersionFlags VersionFlags
	Balance      int16
}

const soundMediaInformationHeaderSize = 8 + 4 + 2 + 2

func readSoundMediaInformationHeaderAtom(s bitio.Stream, header AtomHeader) (SoundMediaInformationHeader, error) {
	if header.Size != soundMediaInformationHeaderSize {
		return SoundMediaInformationHeader{}, fmt.Errorf("%w: smhd declares size %d, want %d", ErrBadFormat, header.Size, soundMediaInformationHeaderSize)
	}
	vf, err := readVersionFlags(s)
	if err != nil {
		return SoundMediaInformationHeader{}, err
	}
	v := SoundMediaInformationHeader{VersionFlags: vf}
	if v.Balance, err = bitio.I16(s); err != nil {
		return SoundMediaInformationHeader{}, err
	}
	if _, err := bitio.Bytes(s, 2); err != nil { // reserved
		return SoundMediaInformationHeader{}, err
	}
	return v, nil
}

// BaseMediaInfo is the gmin atom: the base-media analogue of vmhd/smhd.
type BaseMediaInfo struct {
	VersionFlags VersionFlags
	GraphicsMode uint16
	OpColor      [3]uint16
	Balance      int16
}

const baseMediaInfoSize = 8 + 4 + 2 + 6 + 2 + 2

func readBaseMediaInfoAtom(s bitio.Stream, header AtomHeader) (BaseMediaInfo, error) {
	if header.Size != baseMediaInfoSize {
		return BaseMediaInfo{}, fmt.Errorf("%w: gmin declares size %d, want %d", ErrBadFormat, header.Size, baseMediaInfoSize)
	}
	vf, err := readVersionFlags(s)
	if err != nil {
		return BaseMediaInfo{}, err
	}
	v := BaseMediaInfo{VersionFlags: vf}
	if v.GraphicsMode, err = bitio.U16(s); err != nil {
		return BaseMediaInfo{}, err
	}
	for i := range v.OpColor {
		if v.OpColor[i], err = bitio.U16(s); err != nil {
			return BaseMediaInfo{}, err
		}
	}
	if v.Balance, err = bitio.I16(s); err != nil {
		return BaseMediaInfo{}, err
	}
	if _, err := bitio.Bytes(s, 2); err != nil { // reserved
		return BaseMediaInfo{}, err
	}
	return v, nil
}

// TextMediaInformation is the text atom: the transform matrix applied to
// a base-media (e.g. text/subtitle) track's display.
type TextMediaInformation struct {
	Matrix Matrix3x3
}

const textMediaInformationSize = 8 + 36

func readTextMediaInformationAtom(s bitio.Stream, header AtomHeader) (TextMediaInformation, error) {
	if header.Size != textMediaInformationSize {
		return TextMediaInformation{}, fmt.Errorf("%w: text declares size %d, want %d", ErrBadFormat, header.Size, textMediaInformationSize)
	}
	m, err := readMatrix(s)
	if err != nil {
		return TextMediaInformation{}, err
	}
	return TextMediaInformation{Matrix: m}, nil
}

// BaseMediaInformationHeader is the gmhd atom: a container wrapping gmin
// and, for base-media tracks that carry one, a text transform.
type BaseMediaInformationHeader struct {
	BaseMediaInfo        *BaseMediaInfo
	TextMediaInformation *TextMediaInformation
}

func readBaseMediaInformationHeaderAtom(s bitio.Stream, header AtomHeader) (BaseMediaInformationHeader, error) {
	if _, err := readHeader(s); err != nil {
		return BaseMediaInformationHeader{}, err
	}
	var gmhd BaseMediaInformationHeader
	err := childLoop(s, header, func(child AtomHeader) error {
		switch child.Type {
		case TypeGmin:
			if _, err := readHeader(s); err != nil {
				return err
			}
			v, err := readBaseMediaInfoAtom(s, child)
			if err != nil {
				return err
			}
			gmhd.BaseMediaInfo = &v
			return nil
		case TypeText:
			if _, err := readHeader(s); err != nil {
				return err
			}
			v, err := readTextMediaInformationAtom(s, child)
			if err != nil {
				return err
			}
			gmhd.TextMediaInformation = &v
			return nil
		default:
			return skipChild(s, child)
		}
	})
	if err != nil {
		return BaseMediaInformationHeader{}, err
	}
	return gmhd, nil
}

// MediaInformationKind discriminates a minf atom's variant.
type MediaInformationKind int

const (
	// MediaInformationUnknown is the zero value; never produced by a
	// successful decode.
	MediaInformationUnknown MediaInformationKind = iota
	MediaInformationVideo
	MediaInformationSound
	MediaInformationBase
)

// MediaInformation is the minf atom: a variant-discriminated container
// that always additionally carries a handler reference, a data
// information atom, and a sample table.
type MediaInformation struct {
	Kind            MediaInformationKind
	VideoHeader     *VideoMediaInformationHeader
	SoundHeader     *SoundMediaInformationHeader
	BaseHeader      *BaseMediaInformationHeader
	Handler         *HandlerReference
	DataInformation *DataInformation
	SampleTable     *SampleTable
}

// readMediaInformationAtom discriminates a minf atom's variant by
// scanning its children for the first of vmhd/smhd/gmhd, then rewinds to
// the atom's start and fully decodes it through the matching variant.
// This is the second of the decoder's two rewind sites (the other is
// header-peek itself).
func readMediaInformationAtom(s bitio.Stream, header AtomHeader, cfg Config) (MediaInformation, error) {
	startOffset, err := s.Tell()
	if err != nil {
		return MediaInformation{}, err
	}

	kind := MediaInformationUnknown
	if _, err := readHeader(s); err != nil {
		return MediaInformation{}, err
	}
	scanErr := childLoop(s, header, func(child AtomHeader) error {
		switch child.Type {
		case TypeVmhd:
			if kind == MediaInformationUnknown {
				kind = MediaInformationVideo
			}
		case TypeSmhd:
			if kind == MediaInformationUnknown {
				kind = MediaInformationSound
			}
		case TypeGmhd:
			if kind == MediaInformationUnknown {
				kind = MediaInformationBase
			}
		}
		return skipChild(s, child)
	})
	if scanErr != nil {
		return MediaInformation{}, scanErr
	}
	if kind == MediaInformationUnknown {
		return MediaInformation{}, fmt.Errorf("%w: minf lacks a vmhd, smhd, or gmhd discriminator", ErrBadFormat)
	}

	afterScan, err := s.Tell()
	if err != nil {
		return MediaInformation{}, err
	}
	if err := s.Seek(startOffset - afterScan); err != nil {
		return MediaInformation{}, err
	}

	if _, err := readHeader(s); err != nil {
		return MediaInformation{}, err
	}
	var mi MediaInformation
	mi.Kind = kind
	err = childLoop(s, header, func(child AtomHeader) error {
		switch child.Type {
		case TypeVmhd:
			if _, err := readHeader(s); err != nil {
				return err
			}
			v, err := readVideoMediaInformationHeaderAtom(s, child)
			if err != nil {
				return err
			}
			mi.VideoHeader = &v
			return nil
		case TypeSmhd:
			if _, err := readHeader(s); err != nil {
				return err
			}
			v, err := readSoundMediaInformationHeaderAtom(s, child)
			if err != nil {
				return err
			}
			mi.SoundHeader = &v
			return nil
		case TypeGmhd:
			v, err := readBaseMediaInformationHeaderAtom(s, child)
			if err != nil {
				return err
			}
			mi.BaseHeader = &v
			return nil
		case TypeHdlr:
			if _, err := readHeader(s); err != nil {
				return err
			}
			v, err := readHandlerReferenceAtom(s, child, cfg)
			if err != nil {
				return err
			}
			mi.Handler = &v
			return nil
		case TypeDinf:
			v, err := readDataInformationAtom(s, child, cfg)
			if err != nil {
				return err
			}
			mi.DataInformation = &v
			return nil
		case TypeStbl:
			v, err := readSampleTableAtom(s, child, cfg)
			if err != nil {
				return err
			}
			mi.SampleTable = &v
			return nil
		default:
			return skipChild(s, child)
		}
	})
	if err != nil {
		return MediaInformation{}, err
	}
	return mi, nil
}
