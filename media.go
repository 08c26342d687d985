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

// Media is the mdia atom: a track's timing and handler, and the
// discriminated media-information describing how to locate and
// interpret its samples.
type Media struct {
	MediaHeader        MediaHeader
	ExtendedLanguageTag *ExtendedLanguageTag
	Handler             *HandlerReference
	MediaInformation    *MediaInformation
	UserData            *UserData
}

func readMediaAtom(s bitio.Stream, header AtomHeader, cfg Config) (Media, error) {
	if _, err := readHeader(s); err != nil {
		return Media{}, err
	}
	var m Media
	haveHeader := false
	err := childLoop(s, header, func(child AtomHeader) error {
		switch child.Type {
		case TypeMdhd:
			if haveHeader {
				return fmt.Errorf("%w: mdia contains more than one mdhd", ErrTooManyAtoms)
			}
			if _, err := readHeader(s); err != nil {
				return err
			}
			v, err := readMediaHeaderAtom(s, child)
			if err != nil {
				return err
			}
			m.MediaHeader = v
			haveHeader = true
			return nil
		case TypeElng:
			if _, err := readHeader(s); err != nil {
				return err
			}
			v, err := readExtendedLanguageTagAtom(s, child, cfg)
			if err != nil {
				return err
			}
			m.ExtendedLanguageTag = &v
			return nil
		case TypeHdlr:
			if _, err := readHeader(s); err != nil {
				return err
			}
			v, err := readHandlerReferenceAtom(s, child, cfg)
			if err != nil {
				return err
			}
			m.Handler = &v
			return nil
		case TypeMinf:
			v, err := readMediaInformationAtom(s, child, cfg)
			if err != nil {
				return err
			}
			m.MediaInformation = &v
			return nil
		case TypeUdta:
			v, err := readUserDataAtom(s, child, cfg)
			if err != nil {
				return err
			}
			m.UserData = &v
			return nil
		default:
			return skipChild(s, child)
		}
	})
	if err != nil {
		return Media{}, err
	}
	if !haveHeader {
		return Media{}, fmt.Errorf("%w: mdia is missing its mdhd", ErrBadFormat)
	}
	return m, nil
}
