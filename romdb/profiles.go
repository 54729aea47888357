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

package romdb

// Type distinguishes the two kinds of firmware image found in the synth.
type Type int

// List of valid Type values.
const (
	Control Type = iota
	PCM
)

func (t Type) String() string {
	switch t {
	case Control:
		return "control"
	case PCM:
		return "PCM"
	}
	return "unknown"
}

// Profile describes one known firmware image.
type Profile struct {
	// ShortName is the fixed-length identity token for the image. The token
	// follows the naming scheme of the mt32emu ROMInfo table: specific
	// character positions encode the sub-variant of the image and are relied
	// on by the classification code.
	ShortName string

	// Description is the human readable name of the image.
	Description string

	Type Type

	// Size of the image file in bytes. An image file must match the profile
	// size exactly.
	Size int64

	// SHA1 digest (lowercase hex) of the image file.
	SHA1 string
}

// image file sizes. control images are 64KB except for the second generation
// MT-32 firmware which is double the size. the CM-32L PCM bank is a superset
// of the MT-32 bank
const (
	controlSize     = 65536
	controlSizeGen2 = 131072
	mt32PCMSize     = 524288
	cm32lPCMSize    = 1048576
)

// TODO: the SHA1 digests below still need cross-checking against the mt32emu
// ROMInfo table before this database can be trusted with real dumps
var profiles = []Profile{
	{
		ShortName:   "ctrl_mt32_1_04",
		Description: "MT-32 Control v1.04",
		Type:        Control,
		Size:        controlSize,
		SHA1:        "6591dd7c55bca2e8983cfc12093925aeb8e92d8d",
	},
	{
		ShortName:   "ctrl_mt32_1_05",
		Description: "MT-32 Control v1.05",
		Type:        Control,
		Size:        controlSize,
		SHA1:        "c268c1feb2d7e06a0cb5fa90ba1512547f32dd09",
	},
	{
		ShortName:   "ctrl_mt32_1_06",
		Description: "MT-32 Control v1.06",
		Type:        Control,
		Size:        controlSize,
		SHA1:        "96a07c660a12ff3e2c54d300b6d2e8efa42ea269",
	},
	{
		ShortName:   "ctrl_mt32_1_07",
		Description: "MT-32 Control v1.07",
		Type:        Control,
		Size:        controlSize,
		SHA1:        "2f968408dbd5f5ab2b5c56cc93e5668ada88ca45",
	},
	{
		ShortName:   "ctrl_mt32_bluer",
		Description: "MT-32 Control BlueRidge",
		Type:        Control,
		Size:        controlSize,
		SHA1:        "12ba5dd31a5a0f8fb73d1d09d6c4e8827cbfbd62",
	},
	{
		ShortName:   "ctrl_mt32_2_04",
		Description: "MT-32 Control v2.04",
		Type:        Control,
		Size:        controlSizeGen2,
		SHA1:        "e9dfa61f7e983fb2f77b6880538cb77f39b2c741",
	},
	{
		ShortName:   "ctrl_cm32l_1_00",
		Description: "CM-32L/LAPC-I Control v1.00",
		Type:        Control,
		Size:        controlSize,
		SHA1:        "e44e883ee8dce779fc4d6dc9d2891ba4d011aeb2",
	},
	{
		ShortName:   "ctrl_cm32l_1_02",
		Description: "CM-32L/LAPC-I Control v1.02",
		Type:        Control,
		Size:        controlSize,
		SHA1:        "3ecba8db74e6299a71c1ab812b3a6c147c16e145",
	},
	{
		ShortName:   "pcm_mt32",
		Description: "MT-32 PCM ROM",
		Type:        PCM,
		Size:        mt32PCMSize,
		SHA1:        "9ad5965a588b127e7961ed2e041fa887b726db9b",
	},
	{
		ShortName:   "pcm_cm32l",
		Description: "CM-32L/CM-64/LAPC-I PCM ROM",
		Type:        PCM,
		Size:        cm32lPCMSize,
		SHA1:        "3a184dc5ed07c3356fc6566ac2de72d1b2e8fa9f",
	},
}

// Lookup finds the profile for an image file with the given SHA1 digest and
// size. Both must match.
func Lookup(sha1 string, size int64) (Profile, bool) {
	return LookupIn(profiles, sha1, size)
}

// LookupIn is Lookup over an arbitrary profile table. Validators that carry
// their own table, test doubles in particular, match with this.
func LookupIn(table []Profile, sha1 string, size int64) (Profile, bool) {
	for _, p := range table {
		if p.SHA1 == sha1 && p.Size == size {
			return p, true
		}
	}
	return Profile{}, false
}

// All returns every known profile. The returned slice is a copy and can be
// altered freely.
func All() []Profile {
	all := make([]Profile, len(profiles))
	copy(all, profiles)
	return all
}
