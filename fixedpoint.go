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

// Fixed-point field types. Each stores its raw wire encoding; turning it
// into a floating value is the consumer's responsibility, not the
// decoder's — the decoder only needs to byte-swap and place the field.

// Fixed16_16 is a 16.16 fixed-point value, used for preferred_rate and
// the a/b/c/d/x/y entries of a 3x3 transform matrix.
type Fixed16_16 uint32

// Float64 returns the value as a float64, for display or comparison.
func (f Fixed16_16) Float64() float64 {
	return float64(f) / 65536.0
}

// Fixed8_8 is an 8.8 fixed-point value, used for preferred_volume.
type Fixed8_8 uint16

// Float64 returns the value as a float64.
func (f Fixed8_8) Float64() float64 {
	return float64(f) / 256.0
}

// Fixed2_30 is a 2.30 fixed-point value, used for the u/v/w entries of a
// 3x3 transform matrix. Signed: the top two bits are the integer part.
type Fixed2_30 int32

// Float64 returns the value as a float64.
func (f Fixed2_30) Float64() float64 {
	return float64(f) / 1073741824.0
}

// Matrix3x3 is a QuickTime 3x3 transformation matrix: a/b/c/d/x/y in
// 16.16, u/v/w in 2.30, stored row-major.
type Matrix3x3 struct {
	A, B Fixed16_16
	U    Fixed2_30
	C, D Fixed16_16
	V    Fixed2_30
	X, Y Fixed16_16
	W    Fixed2_30
}
