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
	"fmt"
	"io"

	"github.com/pitchbend/mt32rom/curated"
	"github.com/pitchbend/mt32rom/romfs"
	"github.com/pitchbend/mt32rom/romimage"
)

// SlotOccupied is the error pattern returned by StoreROM() when the target
// slot already holds an image.
const SlotOccupied = "rommanager: slot already filled (%s)"

// Validator is the ROM validation library consulted during scanning.
// romimage.Library is the production implementation.
type Validator interface {
	// Validate returns a descriptor for the stream, or an error if the
	// stream is not a recognised firmware image
	Validate(stream io.ReadSeeker) (*romimage.Image, error)

	// Release disposes of a descriptor. The manager releases every image it
	// owns exactly once
	Release(img *romimage.Image)
}

// ROMManager discovers, classifies and holds the firmware images needed to
// emulate the synth. It is populated once, by ScanROMs(), and is read-only
// afterwards. The manager is not safe for concurrent use; it is intended to
// be driven by a single startup routine.
type ROMManager struct {
	vol *romfs.Volume
	val Validator

	// at most one image per slot. absent key means the slot is empty
	slots map[Slot]*romimage.Image
}

// NewROMManager is the preferred method of initialisation for the ROMManager
// type. No I/O takes place until ScanROMs() is called.
func NewROMManager(vol *romfs.Volume, val Validator) *ROMManager {
	return &ROMManager{
		vol:   vol,
		val:   val,
		slots: make(map[Slot]*romimage.Image, len(allSlots)),
	}
}

// Close releases every image the manager owns. Each image is released
// exactly once; calling Close() again is a no-op.
func (mgr *ROMManager) Close() {
	for _, s := range allSlots {
		if img := mgr.slots[s]; img != nil {
			mgr.val.Release(img)
			delete(mgr.slots, s)
		}
	}
}

// StoreROM classifies the image and files it into its slot. On success the
// manager takes ownership of the image. On failure ownership stays with the
// caller, who must release the image; the previously stored image, if any,
// is never replaced.
func (mgr *ROMManager) StoreROM(img *romimage.Image) error {
	slot, err := classify(img.Info())
	if err != nil {
		return err
	}

	if mgr.slots[slot] != nil {
		return curated.Errorf(SlotOccupied, slot)
	}

	mgr.slots[slot] = img
	return nil
}

// HaveROMSet indicates whether the named set is usable. A named set is
// usable when both of its slots are filled; Any is usable when at least one
// control slot and at least one PCM slot are filled.
func (mgr *ROMManager) HaveROMSet(set Set) bool {
	if set == Any {
		control := false
		for _, s := range controlSlots {
			control = control || mgr.slots[s] != nil
		}
		pcm := false
		for _, s := range pcmSlots {
			pcm = pcm || mgr.slots[s] != nil
		}
		return control && pcm
	}

	p, ok := pairs[set]
	return ok && mgr.slots[p[0]] != nil && mgr.slots[p[1]] != nil
}

// GetROMSet returns the (control, PCM) pairing for the named set. The final
// return value is false, and the images are nil, if the set is not usable.
//
// For the Any set the control image is chosen in slot priority order: old
// MT-32, new MT-32, CM-32L. The CM-32L PCM bank is only ever paired with a
// CM-32L control image; its sound banks are incompatible with the MT-32
// control firmware. The MT-32 PCM bank, on the other hand, can substitute
// under a CM-32L control when no CM-32L bank is present.
func (mgr *ROMManager) GetROMSet(set Set) (*romimage.Image, *romimage.Image, bool) {
	if !mgr.HaveROMSet(set) {
		return nil, nil, false
	}

	if set != Any {
		p := pairs[set]
		return mgr.slots[p[0]], mgr.slots[p[1]], true
	}

	var chosen Slot
	var control *romimage.Image
	for _, s := range controlSlots {
		if mgr.slots[s] != nil {
			chosen = s
			control = mgr.slots[s]
			break
		}
	}

	pcm := mgr.slots[MT32PCM]
	if chosen == CM32LControl && mgr.slots[CM32LPCM] != nil {
		pcm = mgr.slots[CM32LPCM]
	}

	return control, pcm, true
}

// Report summarises the manager's holdings, one line per slot followed by
// one line per named set. Intended for presentation to the user after a
// scan.
func (mgr *ROMManager) Report() []string {
	rep := make([]string, 0, len(allSlots)+len(pairs)+1)

	for _, s := range allSlots {
		if img := mgr.slots[s]; img != nil {
			rep = append(rep, fmt.Sprintf("%s: %s", s, img.Info().Description))
		} else {
			rep = append(rep, fmt.Sprintf("%s: empty", s))
		}
	}

	for _, set := range []Set{MT32Old, MT32New, CM32L, Any} {
		if control, pcm, ok := mgr.GetROMSet(set); ok {
			rep = append(rep, fmt.Sprintf("%s set: %s + %s", set, control.Info().ShortName, pcm.Info().ShortName))
		} else {
			rep = append(rep, fmt.Sprintf("%s set: not available", set))
		}
	}

	return rep
}
