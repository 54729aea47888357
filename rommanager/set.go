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

// Set names a usable (control, PCM) pairing. The named sets are fixed
// pairings of their variant's slots. Any is not a stored pairing at all: it
// means "some control image and some PCM image", with the selection rule
// implemented by GetROMSet().
type Set int

// List of valid Set values.
const (
	Any Set = iota
	MT32Old
	MT32New
	CM32L
)

// pairs maps each named set onto its fixed (control, PCM) slots. Any is
// absent because its pairing is decided at selection time.
var pairs = map[Set][2]Slot{
	MT32Old: {MT32OldControl, MT32PCM},
	MT32New: {MT32NewControl, MT32PCM},
	CM32L:   {CM32LControl, CM32LPCM},
}

func (s Set) String() string {
	switch s {
	case Any:
		return "any"
	case MT32Old:
		return "MT-32 (old)"
	case MT32New:
		return "MT-32 (new)"
	case CM32L:
		return "CM-32L"
	}
	return "unknown set"
}
