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

// Package rommanager finds and holds the firmware images needed to emulate
// the MT-32 family of synths. The manager scans a well-known directory on
// the storage volume, asks the validator whether each file is a recognised
// image, and files the recognised ones into variant slots: three control
// slots (old MT-32, new MT-32, CM-32L) and two PCM slots (MT-32, CM-32L).
//
// Each slot holds at most one image. The first valid image wins; later
// candidates for the same slot are rejected and their resources released.
//
// After the scan the emulation engine asks for a (control, PCM) pairing with
// GetROMSet(). The named sets are fixed pairings; the Any set picks the best
// available pairing, preferring the oldest control firmware and never
// pairing the CM-32L PCM bank with an MT-32 control image.
//
// The typical sequence:
//
//	mgr := rommanager.NewROMManager(vol, romimage.Library{})
//	defer mgr.Close()
//	if !mgr.ScanROMs() {
//		// no usable set. the caller decides what to do
//	}
//	control, pcm, _ := mgr.GetROMSet(rommanager.Any)
package rommanager
