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

	"golang.org/x/text/language"

	"github.com/mycophonic/qtff/internal/bitio"
)

// ExtendedLanguageTag is the elng atom: a BCP-47 language tag naming the
// language of a media's content, superseding the legacy packed
// ISO-639-2/T code carried in a media header.
type ExtendedLanguageTag struct {
	VersionFlags VersionFlags
	Tag          []byte
}

const extendedLanguageTagFixedPrefix = 8 + 4 // header + version_flags

func readExtendedLanguageTagAtom(s bitio.Stream, header AtomHeader, cfg Config) (ExtendedLanguageTag, error) {
	vf, err := readVersionFlags(s)
	if err != nil {
		return ExtendedLanguageTag{}, err
	}
	tagLen := int64(header.Size) - extendedLanguageTagFixedPrefix
	if tagLen < 0 {
		return ExtendedLanguageTag{}, fmt.Errorf("%w: elng declares size %d shorter than its prefix", ErrBadFormat, header.Size)
	}
	if tagLen > int64(cfg.MaxLanguageTagLength) {
		return ExtendedLanguageTag{}, fmt.Errorf("%w: elng tag is %d bytes", ErrTooManyAtoms, tagLen)
	}
	tag, err := bitio.Bytes(s, int(tagLen))
	if err != nil {
		return ExtendedLanguageTag{}, err
	}
	return ExtendedLanguageTag{VersionFlags: vf, Tag: tag}, nil
}

// Parse validates and canonicalizes the tag's bytes as a BCP-47 language
// tag (RFC 5646). A successful container parse never depends on this: an
// elng atom with an unparseable tag still decodes successfully, since
// the core decoder only bounds the tag's length, not its contents.
func (e ExtendedLanguageTag) Parse() (language.Tag, error) {
	return language.Parse(string(e.Tag))
}
