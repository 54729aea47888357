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

// Package romdb is the database of known MT-32 and CM-32L firmware images.
// An image file is identified by its exact size and SHA1 digest; there is no
// header to sniff in a raw firmware dump.
//
// The short name tokens follow the naming scheme of the mt32emu ROMInfo
// table. The scheme is positional: character 10 of a control image token and
// character 4 of a PCM image token carry the sub-variant identity. The
// rommanager package decodes these positions when classifying an image.
package romdb
