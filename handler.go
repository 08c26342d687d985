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

// HandlerReference is the hdlr atom: identifies the component that
// interprets a media's or track's data, plus a human-readable name.
type HandlerReference struct {
	VersionFlags           VersionFlags
	ComponentType          FourCC
	ComponentSubtype       FourCC
	ComponentManufacturer  FourCC
	ComponentFlags         uint32
	ComponentFlagsMask     uint32
	ComponentName          []byte
}

const handlerReferenceFixedPrefix = 8 + 4 + 4 + 4 + 4 + 4 + 4

func readHandlerReferenceAtom(s bitio.Stream, header AtomHeader, cfg Config) (HandlerReference, error) {
	vf, err := readVersionFlags(s)
	if err != nil {
		return HandlerReference{}, err
	}
	var hr HandlerReference
	hr.VersionFlags = vf
	readFourCC := func() (FourCC, error) {
		var b [4]byte
		if err := s.Read(b[:]); err != nil {
			return FourCC{}, err
		}
		return FourCC(b), nil
	}
	if hr.ComponentType, err = readFourCC(); err != nil {
		return HandlerReference{}, err
	}
	if hr.ComponentSubtype, err = readFourCC(); err != nil {
		return HandlerReference{}, err
	}
	if hr.ComponentManufacturer, err = readFourCC(); err != nil {
		return HandlerReference{}, err
	}
	if hr.ComponentFlags, err = bitio.U32(s); err != nil {
		return HandlerReference{}, err
	}
	if hr.ComponentFlagsMask, err = bitio.U32(s); err != nil {
		return HandlerReference{}, err
	}
	nameLen := int64(header.Size) - handlerReferenceFixedPrefix
	if nameLen < 0 {
		return HandlerReference{}, fmt.Errorf("%w: hdlr declares size %d shorter than its prefix", ErrBadFormat, header.Size)
	}
	if nameLen > int64(cfg.MaxComponentNameLength) {
		return HandlerReference{}, fmt.Errorf("%w: hdlr component_name is %d bytes", ErrTooManyAtoms, nameLen)
	}
	if hr.ComponentName, err = bitio.Bytes(s, int(nameLen)); err != nil {
		return HandlerReference{}, err
	}
	return hr, nil
}
