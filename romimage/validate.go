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

package romimage

import (
	"crypto/sha1"
	"fmt"
	"io"

	"github.com/pitchbend/mt32rom/curated"
	"github.com/pitchbend/mt32rom/romdb"
)

// NotRecognised is the error pattern returned by Validate() when the stream
// is not a known firmware image.
const NotRecognised = "romimage: not a recognised ROM image"

// Library is the production validator. It identifies raw firmware dumps
// against the romdb database.
type Library struct {
	// Profiles overrides the romdb database when not nil. Intended for
	// validating against synthetic images in tests
	Profiles []romdb.Profile
}

func (lib Library) table() []romdb.Profile {
	if lib.Profiles != nil {
		return lib.Profiles
	}
	return romdb.All()
}

// Validate reads the entire stream and identifies it by size and SHA1
// digest. The image takes its own copy of the data so the stream can be
// closed as soon as Validate() returns, whatever the outcome.
func (lib Library) Validate(stream io.ReadSeeker) (*Image, error) {
	table := lib.table()

	size, err := stream.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, curated.Errorf("romimage: %v", err)
	}

	// a stream whose size matches no known image cannot be a firmware dump.
	// deciding that before the read saves hashing every large file
	// encountered during a scan
	sized := false
	for _, p := range table {
		sized = sized || p.Size == size
	}
	if !sized {
		return nil, curated.Errorf(NotRecognised)
	}

	if _, err := stream.Seek(0, io.SeekStart); err != nil {
		return nil, curated.Errorf("romimage: %v", err)
	}

	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, curated.Errorf("romimage: %v", err)
	}

	digest := fmt.Sprintf("%x", sha1.Sum(data))

	info, ok := romdb.LookupIn(table, digest, int64(len(data)))
	if !ok {
		return nil, curated.Errorf(NotRecognised)
	}

	return New(info, data), nil
}

// Release disposes of an image. Releasing a nil image is a no-op.
func (lib Library) Release(img *Image) {
	if img == nil {
		return
	}
	img.data = nil
}
