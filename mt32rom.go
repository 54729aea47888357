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

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/pitchbend/mt32rom/logger"
	"github.com/pitchbend/mt32rom/romfs"
	"github.com/pitchbend/mt32rom/romimage"
	"github.com/pitchbend/mt32rom/rommanager"
)

func main() {
	verbose := flag.Bool("v", false, "echo the log to stderr during the scan")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [volume]\n\n", os.Args[0])
		fmt.Fprintf(flag.CommandLine.Output(), "scans a storage volume for MT-32/CM-32L firmware images and reports\nwhich ROM sets an emulator could use. the volume defaults to the\ncurrent directory.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	volume := "."
	if flag.NArg() > 0 {
		volume = flag.Arg(0)
	}

	if *verbose {
		logger.SetEcho(os.Stderr, true)
	}

	mgr := rommanager.NewROMManager(romfs.NewVolume(osfs.New(volume)), romimage.Library{})
	defer mgr.Close()

	ok := mgr.ScanROMs()

	for _, l := range mgr.Report() {
		fmt.Println(l)
	}

	if !ok {
		fmt.Fprintln(os.Stderr, "no usable ROM set found")
		os.Exit(10)
	}
}
