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
	"github.com/pitchbend/mt32rom/logger"
)

// ROMPath is the well-known directory on the volume that is scanned for
// firmware images.
const ROMPath = "roms"

// Filenames for the original single-set loading behaviour. Tried from the
// volume root when the directory scan yields no complete set.
const (
	MT32ControlROMName = "MT32_CONTROL.ROM"
	MT32PCMROMName     = "MT32_PCM.ROM"
)

// ScanROMs walks the ROM directory once, attempting to validate, classify
// and store every file it finds. An entry that fails at any stage is simply
// not stored; the walk continues with the next entry.
//
// If the walk produces no complete set (in the Any sense), including when
// the directory cannot be read at all, the scan falls back on the original
// loading behaviour: the two fixed filenames at the volume root. The
// fallback succeeds only if both files validate and store.
//
// Returns true if a complete set is available by either route.
func (mgr *ROMManager) ScanROMs() bool {
	entries, err := mgr.vol.List(ROMPath)
	if err != nil {
		logger.Logf(logger.Allow, "rommanager", "couldn't read '%s' directory", ROMPath)
	}

	for _, e := range entries {
		// a candidate failing is not fatal to the scan
		_ = mgr.checkROM(e)
	}

	if !mgr.HaveROMSet(Any) {
		return mgr.checkROM(MT32ControlROMName) == nil && mgr.checkROM(MT32PCMROMName) == nil
	}

	return true
}

// checkROM opens the file at path and attempts to validate and store it as a
// firmware image. On any failure the candidate's resources are given back:
// the file is closed and, if a descriptor was produced but rejected by the
// store, the descriptor is released.
func (mgr *ROMManager) checkROM(path string) error {
	f, err := mgr.vol.Open(path)
	if err != nil {
		logger.Logf(logger.Allow, "rommanager", "couldn't open '%s' for reading", path)
		return curated.Errorf("rommanager: %v", err)
	}
	defer f.Close()

	// the descriptor takes its own copy of the data so the file can be
	// closed regardless of what happens next
	img, err := mgr.val.Validate(f)
	if err != nil {
		// not a recognised image. common during a scan of a shared
		// directory and not worth logging
		return curated.Errorf("rommanager: %v", err)
	}

	if err := mgr.StoreROM(img); err != nil {
		mgr.val.Release(img)
		return curated.Errorf("rommanager: %v", err)
	}

	return nil
}
