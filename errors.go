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
	"errors"

	"github.com/mycophonic/qtff/internal/bitio"
)

// Public sentinel errors for consumer error matching. Together with
// io.EOF (reused directly rather than re-wrapped, since it is already
// Go's standard end-of-stream signal) these form the full failure
// taxonomy a decode can report.
var (
	// ErrIO reports a transport failure on read, write, seek, or tell.
	// An alias of the underlying bitio sentinel so callers never need to
	// import internal/bitio to match on it.
	ErrIO = bitio.ErrIO

	// ErrBadFormat reports a structural violation: size or count
	// arithmetic fails, a child's size overshoots its parent, an
	// unrecognised minf flavour, or a table width that isn't a multiple
	// of its row width.
	ErrBadFormat = errors.New("qtff: malformed atom")

	// ErrTooManyAtoms reports that a bounded table, sequence, or
	// variable-length region exceeded its configured capacity.
	ErrTooManyAtoms = errors.New("qtff: too many atoms")

	// ErrOutOfMemory is reserved: it is never raised by this
	// implementation, since bounded sequences fail with ErrTooManyAtoms
	// before any allocation is attempted. A caller that replaces a
	// Config limit with an unbounded one could still see an ordinary Go
	// out-of-memory condition, which is not represented by this error.
	ErrOutOfMemory = errors.New("qtff: out of memory")
)
