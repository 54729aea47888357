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

// Package curated provides the error type used throughout the project.
// Errors are created with a pattern string rather than a format string; the
// pattern is the identity of the error and can be tested for with the Is()
// and Has() functions without losing the fmt verb convenience.
//
// A typical pattern is prefixed with the package name of the originating
// code:
//
//	curated.Errorf("romfs: %v", err)
//
// The Error() function normalises the message chain so that repeated parts
// (common when an error is wrapped by several layers that use the same
// prefix) appear only once.
package curated
