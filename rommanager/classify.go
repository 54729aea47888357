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

package rommanager

import (
	"github.com/pitchbend/mt32rom/curated"
	"github.com/pitchbend/mt32rom/romdb"
)

// NotClassifiable is the error pattern returned when an image cannot be
// mapped onto a slot.
const NotClassifiable = "rommanager: image cannot be classified (%s)"

// character positions in the short name token that carry the sub-variant
// identity. the positions are a contract with the romdb naming scheme
const (
	controlVariantPos = 10
	pcmVariantPos     = 4
)

// marker values found at those positions.
const (
	markerOldRev1  = '1' // first generation MT-32 firmware
	markerOldBlue  = 'b' // the BlueRidge firmware, also first generation
	markerNew      = '2' // second generation MT-32 firmware
	markerMT32Bank = 'm' // the MT-32 PCM bank
)

// classify decodes an image's short name token into the slot the image
// belongs to. The decode happens here and nowhere else; everything
// downstream deals in Slot values only.
func classify(info romdb.Profile) (Slot, error) {
	switch info.Type {
	case romdb.Control:
		if len(info.ShortName) <= controlVariantPos {
			return -1, curated.Errorf(NotClassifiable, info.ShortName)
		}
		switch info.ShortName[controlVariantPos] {
		case markerOldRev1, markerOldBlue:
			return MT32OldControl, nil
		case markerNew:
			return MT32NewControl, nil
		}
		// any other marker is assumed to be a CM-32L image. there is no
		// positive CM-32L signature check, which means an unanticipated
		// control variant would be filed here too
		return CM32LControl, nil

	case romdb.PCM:
		if len(info.ShortName) <= pcmVariantPos {
			return -1, curated.Errorf(NotClassifiable, info.ShortName)
		}
		if info.ShortName[pcmVariantPos] == markerMT32Bank {
			return MT32PCM, nil
		}
		return CM32LPCM, nil
	}

	return -1, curated.Errorf(NotClassifiable, info.ShortName)
}
