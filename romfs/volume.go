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

package romfs

import (
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/pitchbend/mt32rom/curated"
)

// Volume is the storage volume firmware images are read from. The underlying
// filesystem is abstracted through billy so that tests can run against an
// in-memory volume.
type Volume struct {
	fs billy.Filesystem
}

// NewVolume is the preferred method of initialisation for the Volume type.
func NewVolume(fs billy.Filesystem) *Volume {
	return &Volume{fs: fs}
}

// the FAT hidden attribute does not survive the billy abstraction so the
// dot-prefix convention stands in for it
func hidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// entries written by other operating systems onto FAT volumes. the
// equivalent of the FAT system attribute for our purposes
var systemEntries = map[string]bool{
	"System Volume Information": true,
	"$RECYCLE.BIN":              true,
}

// List enumerates the files in the named directory. Entries that a scan
// should never consider are filtered out: sub-directories, hidden entries
// and system entries. The returned names are full paths relative to the
// volume root, in whatever order the filesystem supplies them.
func (v *Volume) List(dir string) ([]string, error) {
	entries, err := v.fs.ReadDir(dir)
	if err != nil {
		return nil, curated.Errorf("romfs: %v", err)
	}

	names := []string{}
	for _, e := range entries {
		if e.IsDir() || hidden(e.Name()) || systemEntries[e.Name()] {
			continue
		}
		names = append(names, v.fs.Join(dir, e.Name()))
	}

	return names, nil
}

// Open the named file for reading. The returned file is seekable, so a
// consumer that wants the file's size can find it without a separate stat.
// The caller is responsible for closing the file.
func (v *Volume) Open(name string) (billy.File, error) {
	f, err := v.fs.Open(name)
	if err != nil {
		return nil, curated.Errorf("romfs: %v", err)
	}

	return f, nil
}
