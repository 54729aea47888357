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

package romfs_test

import (
	"io"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/pitchbend/mt32rom/romfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "roms/MT32_CONTROL.ROM", []byte("control"), 0o644))
	require.NoError(t, util.WriteFile(fs, "roms/MT32_PCM.ROM", []byte("pcm"), 0o644))
	require.NoError(t, util.WriteFile(fs, "roms/.hidden", []byte("hidden"), 0o644))
	require.NoError(t, util.WriteFile(fs, "roms/System Volume Information", []byte("sys"), 0o644))
	require.NoError(t, util.WriteFile(fs, "roms/subdir/nested.rom", []byte("nested"), 0o644))

	vol := romfs.NewVolume(fs)

	names, err := vol.List("roms")
	require.NoError(t, err)

	// sub-directories, hidden entries and system entries are filtered out
	assert.ElementsMatch(t, names, []string{"roms/MT32_CONTROL.ROM", "roms/MT32_PCM.ROM"})
}

func TestListMissingDirectory(t *testing.T) {
	vol := romfs.NewVolume(memfs.New())

	_, err := vol.List("roms")
	assert.Error(t, err)
}

func TestOpen(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "MT32_CONTROL.ROM", []byte("firmware bytes"), 0o644))

	vol := romfs.NewVolume(fs)

	f, err := vol.Open("MT32_CONTROL.ROM")
	require.NoError(t, err)
	defer f.Close()

	// the file is seekable so consumers can size it without a stat
	size, err := f.Seek(0, io.SeekEnd)
	require.NoError(t, err)
	assert.Equal(t, int64(len("firmware bytes")), size)

	_, err = f.Seek(0, io.SeekStart)
	require.NoError(t, err)

	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "firmware bytes", string(data))
}

func TestOpenMissingFile(t *testing.T) {
	vol := romfs.NewVolume(memfs.New())

	_, err := vol.Open("MT32_CONTROL.ROM")
	assert.Error(t, err)
}
