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

// UserDataItem is one child of a udta atom: an opaque, application- or
// vendor-defined record identified by its own FourCC.
type UserDataItem struct {
	Type FourCC
	Data []byte
}

// UserData is the udta atom's payload: an ordered sequence of opaque
// items, bounded by Config.MaxUserDataItems.
type UserData struct {
	Items []UserDataItem
}

func readUserDataAtom(s bitio.Stream, header AtomHeader, cfg Config) (UserData, error) {
	if _, err := readHeader(s); err != nil {
		return UserData{}, err
	}
	var ud UserData
	err := childLoop(s, header, func(child AtomHeader) error {
		if len(ud.Items) >= cfg.MaxUserDataItems {
			return fmt.Errorf("%w: udta exceeds %d items", ErrTooManyAtoms, cfg.MaxUserDataItems)
		}
		if _, err := readHeader(s); err != nil {
			return err
		}
		data, err := bitio.Bytes(s, int(child.Size)-8)
		if err != nil {
			return err
		}
		ud.Items = append(ud.Items, UserDataItem{Type: child.Type, Data: data})
		return nil
	})
	if err != nil {
		return UserData{}, err
	}
	return ud, nil
}
