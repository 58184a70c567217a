// Package audio reads the length of a song's music file.
package audio

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"
	"github.com/pkg/errors"
)

// Supported reports whether Length can decode the file.
func Supported(file string) bool {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".mp3", ".ogg", ".wav":
		return true
	}
	return false
}

// Length decodes the header of an mp3, ogg or wav file and returns how long
// it plays for.
func Length(file string) (time.Duration, error) {
	f, err := os.Open(file)
	if nil != err {
		return 0, err
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format
	switch strings.ToLower(filepath.Ext(file)) {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	default:
		f.Close()
		return 0, errors.Errorf("unsupported audio file %v", file)
	}
	if nil != err {
		f.Close()
		return 0, errors.Wrapf(err, "unable to decode %v", file)
	}
	// Closing the streamer closes f
	defer streamer.Close()

	return format.SampleRate.D(streamer.Len()), nil
}
