// This file is part of mt32rom.
//
// mt32rom is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mt32rom is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mt32rom.  If not, see <https://www.gnu.org/licenses/>.

package curated_test

import (
	"errors"
	"testing"

	"github.com/pitchbend/mt32rom/curated"
	"github.com/pitchbend/mt32rom/test"
)

const testPattern = "test pattern: %v"
const otherPattern = "other pattern: %v"

func TestIdentity(t *testing.T) {
	e := curated.Errorf(testPattern, "detail")

	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectFailure(t, curated.Is(e, otherPattern))

	// plain errors are never curated errors
	p := errors.New("plain")
	test.ExpectFailure(t, curated.IsAny(p))
	test.ExpectFailure(t, curated.Is(p, testPattern))
	test.ExpectFailure(t, curated.Has(p, testPattern))

	// nil is not an error at all
	test.ExpectFailure(t, curated.IsAny(nil))
	test.ExpectFailure(t, curated.Is(nil, testPattern))
}

func TestHas(t *testing.T) {
	inner := curated.Errorf(testPattern, "detail")
	outer := curated.Errorf(otherPattern, inner)

	// Is() only matches the outermost pattern. Has() walks the chain
	test.ExpectFailure(t, curated.Is(outer, testPattern))
	test.ExpectSuccess(t, curated.Has(outer, testPattern))
	test.ExpectSuccess(t, curated.Has(outer, otherPattern))
}

func TestDeduplication(t *testing.T) {
	// wrapping with the same prefix should not repeat the prefix in the
	// final message
	inner := curated.Errorf("romfs: %v", errors.New("file not found"))
	outer := curated.Errorf("romfs: %v", inner)

	test.ExpectEquality(t, outer.Error(), "romfs: file not found")
}
