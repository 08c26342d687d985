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

// FourCC is a 32-bit atom type identifier formed from 4 bytes in file
// order. It is compared numerically, never byte-swapped: unlike the
// scalar fields of an atom body, a FourCC's byte order on the wire IS its
// in-memory representation.
type FourCC [4]byte

// String renders a FourCC as its four raw characters. Atom types outside
// the printable ASCII range (such as the zero bytes of \0\0in and \0\0ty)
// still render, just illegibly.
func (f FourCC) String() string {
	return string(f[:])
}

// Recognised top-level atoms (spec.md §6).
var (
	TypeFtyp = FourCC{'f', 't', 'y', 'p'}
	TypeMoov = FourCC{'m', 'o', 'o', 'v'}
	TypeMdat = FourCC{'m', 'd', 'a', 't'}
	TypeFree = FourCC{'f', 'r', 'e', 'e'}
	TypeSkip = FourCC{'s', 'k', 'i', 'p'}
	TypeWide = FourCC{'w', 'i', 'd', 'e'}
	TypePnot = FourCC{'p', 'n', 'o', 't'}
)

// Atoms inside moov.
var (
	TypeMvhd = FourCC{'m', 'v', 'h', 'd'}
	TypeClip = FourCC{'c', 'l', 'i', 'p'}
	TypeTrak = FourCC{'t', 'r', 'a', 'k'}
	TypeUdta = FourCC{'u', 'd', 't', 'a'}
	TypeCtab = FourCC{'c', 't', 'a', 'b'}
)

// Atoms inside trak.
var (
	TypeTkhd = FourCC{'t', 'k', 'h', 'd'}
	TypeTapt = FourCC{'t', 'a', 'p', 't'}
	TypeMatt = FourCC{'m', 'a', 't', 't'}
	TypeEdts = FourCC{'e', 'd', 't', 's'}
	TypeTref = FourCC{'t', 'r', 'e', 'f'}
	TypeTxas = FourCC{'t', 'x', 'a', 's'}
	TypeLoad = FourCC{'l', 'o', 'a', 'd'}
	TypeImap = FourCC{'i', 'm', 'a', 'p'}
	TypeMdia = FourCC{'m', 'd', 'i', 'a'}
)

// Atoms inside mdia.
var (
	TypeMdhd = FourCC{'m', 'd', 'h', 'd'}
	TypeElng = FourCC{'e', 'l', 'n', 'g'}
	TypeHdlr = FourCC{'h', 'd', 'l', 'r'}
	TypeMinf = FourCC{'m', 'i', 'n', 'f'}
)

// minf variant-selecting children (vmhd, smhd, gmhd), plus the dinf, dref,
// and stbl atoms carried in every variant.
var (
	TypeVmhd = FourCC{'v', 'm', 'h', 'd'}
	TypeSmhd = FourCC{'s', 'm', 'h', 'd'}
	TypeGmhd = FourCC{'g', 'm', 'h', 'd'}
	TypeDinf = FourCC{'d', 'i', 'n', 'f'}
	TypeDref = FourCC{'d', 'r', 'e', 'f'}
	TypeStbl = FourCC{'s', 't', 'b', 'l'}
)

// base-media (gmhd) variant internals.
var (
	TypeGmin = FourCC{'g', 'm', 'i', 'n'}
	TypeText = FourCC{'t', 'e', 'x', 't'}
)

// Atoms inside stbl.
var (
	TypeStsd = FourCC{'s', 't', 's', 'd'}
	TypeStts = FourCC{'s', 't', 't', 's'}
	TypeCtts = FourCC{'c', 't', 't', 's'}
	TypeCslg = FourCC{'c', 's', 'l', 'g'}
	TypeStss = FourCC{'s', 't', 's', 's'}
	TypeStps = FourCC{'s', 't', 'p', 's'}
	TypeStsc = FourCC{'s', 't', 's', 'c'}
	TypeStsz = FourCC{'s', 't', 's', 'z'}
	TypeStco = FourCC{'s', 't', 'c', 'o'}
	TypeSdtp = FourCC{'s', 'd', 't', 'p'}
)

// Atoms inside tapt.
var (
	TypeClef = FourCC{'c', 'l', 'e', 'f'}
	TypeProf = FourCC{'p', 'r', 'o', 'f'}
	TypeEnof = FourCC{'e', 'n', 'o', 'f'}
)

// Atoms inside imap and its \0\0in children.
var (
	TypeInputMap = FourCC{0, 0, 'i', 'n'}
	TypeInputTyp = FourCC{0, 0, 't', 'y'}
	TypeObjectID = FourCC{'o', 'b', 'i', 'd'}
)

// IsContainerType reports whether an atom of this type is a container
// whose payload is a sequence of child atoms, as opposed to a leaf atom
// with fixed or table-structured data.
func IsContainerType(t FourCC) bool {
	switch t {
	case TypeMoov, TypeTrak, TypeMdia, TypeMinf, TypeStbl, TypeUdta,
		TypeEdts, TypeTref, TypeImap, TypeInputMap, TypeTapt, TypeDinf,
		TypeMatt, TypeGmhd, TypeClip:
		return true
	default:
		return false
	}
}

// IsFullBoxType reports whether atoms of this type carry a 4-byte
// VersionFlags prefix ahead of their type-specific payload.
func IsFullBoxType(t FourCC) bool {
	switch t {
	case TypeMvhd, TypeTkhd, TypeMdhd, TypeElng, TypeHdlr, TypeVmhd,
		TypeSmhd, TypeDref, TypeStsd, TypeStts, TypeCtts, TypeCslg,
		TypeStss, TypeStps, TypeStsc, TypeStsz, TypeStco, TypeSdtp,
		TypeClef, TypeProf, TypeEnof, TypeGmin, typeElst, typeKmat:
		return true
	default:
		return false
	}
}
