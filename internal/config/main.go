package config

import (
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	Directory  = kingpin.Arg("directory", "Songs directory, one sub directory per song").Required().ExistingDir()
	Output     = kingpin.Flag("output", "Directory to write chart json to").Default("output").Short('o').String()
	Database   = kingpin.Flag("db", "Chart cache database, disabled when empty").Default("").String()
	Jobs       = kingpin.Flag("jobs", "Chart files processed in parallel").Default("4").Short('j').Uint()
	ProbeAudio = kingpin.Flag("probe-audio", "Decode each song's music to record its length").Bool()
	Dump       = kingpin.Flag("dump", "Print the resolved timeline of charts of this difficulty").Default("").String()
	Quiet      = kingpin.Flag("quiet", "Only print failures").Short('q').Bool()
	Color      = kingpin.Flag("color", "Colorize output").Default("auto").Enum("auto", "always", "never")
)

func init() {
	kingpin.Version("0.3.0")
	kingpin.Parse()
}
