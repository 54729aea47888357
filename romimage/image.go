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

import "github.com/pitchbend/mt32rom/romdb"

// Image is a validated firmware image. An Image is only ever created by a
// validator; once handed to a store the store owns it and is responsible for
// releasing it.
type Image struct {
	info romdb.Profile
	data []byte
}

// New creates an Image from a profile and the image data. It is intended for
// validator implementations, including test doubles.
func New(info romdb.Profile, data []byte) *Image {
	return &Image{
		info: info,
		data: data,
	}
}

// Info returns the profile the image was validated against.
func (img *Image) Info() romdb.Profile {
	return img.info
}

// Data returns the raw image data. The returned slice is nil once the image
// has been released.
func (img *Image) Data() []byte {
	return img.data
}
