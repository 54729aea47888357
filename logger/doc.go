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

// Package logger is the central log for the project. Packages log with a tag
// (by convention, the package name) and a detail string. The log is bounded
// and held in memory so that a frontend can replay it; the SetEcho()
// function forwards entries to an io.Writer as they arrive, which is how the
// command line tool prints them.
package logger
