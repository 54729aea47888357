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

// Slot identifies where a classified image is kept. There are five slots and
// each can hold at most one image.
type Slot int

// List of valid Slot values.
const (
	MT32OldControl Slot = iota
	MT32NewControl
	CM32LControl
	MT32PCM
	CM32LPCM
)

// allSlots gives a deterministic traversal order over the slots.
var allSlots = []Slot{MT32OldControl, MT32NewControl, CM32LControl, MT32PCM, CM32LPCM}

// controlSlots in order of selection priority for the Any set.
var controlSlots = []Slot{MT32OldControl, MT32NewControl, CM32LControl}

// pcmSlots. no ordering significance.
var pcmSlots = []Slot{MT32PCM, CM32LPCM}

func (s Slot) String() string {
	switch s {
	case MT32OldControl:
		return "MT-32 (old) control"
	case MT32NewControl:
		return "MT-32 (new) control"
	case CM32LControl:
		return "CM-32L control"
	case MT32PCM:
		return "MT-32 PCM"
	case CM32LPCM:
		return "CM-32L PCM"
	}
	return "unknown slot"
}
