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

package romimage_test

import (
	"bytes"
	"testing"

	"github.com/pitchbend/mt32rom/curated"
	"github.com/pitchbend/mt32rom/romdb"
	"github.com/pitchbend/mt32rom/romimage"
	"github.com/pitchbend/mt32rom/test"
)

func TestValidateUnknownStream(t *testing.T) {
	lib := romimage.Library{}

	// arbitrary data of an arbitrary size is not a firmware image
	img, err := lib.Validate(bytes.NewReader([]byte("not a firmware image")))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, romimage.NotRecognised))
	test.ExpectSuccess(t, img == nil)

	// a correctly sized stream of the wrong content is still rejected
	img, err = lib.Validate(bytes.NewReader(make([]byte, 65536)))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, romimage.NotRecognised))
	test.ExpectSuccess(t, img == nil)
}

func TestValidateKnownStream(t *testing.T) {
	// a synthetic image validated against an injected profile table,
	// exercising the whole read/hash/lookup path
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}

	profile := romdb.Profile{
		ShortName:   "ctrl_mt32_1_07",
		Description: "MT-32 Control v1.07",
		Type:        romdb.Control,
		Size:        int64(len(data)),
		SHA1:        "4916d6bdb7f78e6803698cab32d1586ea457dfc8",
	}
	lib := romimage.Library{Profiles: []romdb.Profile{profile}}

	img, err := lib.Validate(bytes.NewReader(data))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Info(), profile)
	test.ExpectSuccess(t, bytes.Equal(img.Data(), data))

	// same size, different content. the digest decides
	other := make([]byte, 256)
	img, err = lib.Validate(bytes.NewReader(other))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, romimage.NotRecognised))
	test.ExpectSuccess(t, img == nil)

	// right content prefix, wrong size. rejected before hashing
	img, err = lib.Validate(bytes.NewReader(data[:100]))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, romimage.NotRecognised))
	test.ExpectSuccess(t, img == nil)
}

func TestRelease(t *testing.T) {
	lib := romimage.Library{}

	info := romdb.Profile{ShortName: "ctrl_mt32_1_07", Type: romdb.Control}
	img := romimage.New(info, []byte{0x01, 0x02, 0x03})
	test.ExpectEquality(t, len(img.Data()), 3)

	lib.Release(img)
	test.ExpectSuccess(t, img.Data() == nil)

	// the profile survives release. only the data is dropped
	test.ExpectEquality(t, img.Info().ShortName, "ctrl_mt32_1_07")

	// releasing nil is a no-op
	lib.Release(nil)
}
