// Package drop classifies dropped or opened files and routes them to the
// matching load operation of the renderer.
package drop

import (
	"errors"
	"path"
	"regexp"
	"strings"
)

// SurfaceExt is the extension of surface meshes; everything else loads as a volume
const SurfaceExt = ".geo"

// FileScheme is the URL scheme accepted from drag and drop
const FileScheme = "file://"

// VolumeExts lists the volume formats the renderer is known to read.
// Classification does not depend on it; any non-surface file is a volume.
var VolumeExts = []string{".pvm", ".ima", ".dcm", ".rek", ".raw"}

// ErrEmptyPayload is returned when there is nothing to load
var ErrEmptyPayload = errors.New("empty drop payload")

// Kind is the load operation a payload maps to
type Kind int

const (
	Volume Kind = iota
	Surface
	Series
)

func (k Kind) String() string {
	switch k {
	case Volume:
		return "volume"
	case Surface:
		return "surface"
	case Series:
		return "series"
	default:
		return "unknown"
	}
}

// Decision is the classified payload
type Decision struct {
	Kind  Kind
	Paths []string
}

var driveLetter = regexp.MustCompile(`^/[A-Za-z]:`)

// Normalize strips a file:// prefix, converts backslashes to forward
// slashes and drops the separator in front of a drive letter.
func Normalize(file string) string {
	file = strings.TrimPrefix(file, FileScheme)
	file = strings.ReplaceAll(file, `\`, "/")
	if driveLetter.MatchString(file) {
		file = file[1:]
	}
	return file
}

// IsSurface reports whether the path names a surface mesh
func IsSurface(file string) bool {
	return strings.EqualFold(path.Ext(file), SurfaceExt)
}

// IsKnownVolume reports whether the path has one of the known volume extensions
func IsKnownVolume(file string) bool {
	ext := strings.ToLower(path.Ext(file))
	for _, v := range VolumeExts {
		if ext == v {
			return true
		}
	}
	return false
}

// Classify normalizes the paths and decides how to load them
func Classify(files []string) (Decision, error) {
	if len(files) == 0 {
		return Decision{}, ErrEmptyPayload
	}

	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = Normalize(f)
	}

	if len(paths) > 1 {
		return Decision{Kind: Series, Paths: paths}, nil
	}
	if IsSurface(paths[0]) {
		return Decision{Kind: Surface, Paths: paths}, nil
	}
	return Decision{Kind: Volume, Paths: paths}, nil
}

// FileURLs keeps the file:// URLs of a drop, in order, and skips the rest
func FileURLs(urls []string) []string {
	files := make([]string, 0, len(urls))
	for _, u := range urls {
		if strings.HasPrefix(u, FileScheme) {
			files = append(files, u)
		}
	}
	return files
}

// CommonPrefix returns the longest common string prefix of the paths.
// It labels a series after the part all its slices share.
func CommonPrefix(paths []string) string {
	if len(paths) == 0 {
		return ""
	}
	prefix := paths[0]
	for _, p := range paths[1:] {
		n := 0
		for n < len(prefix) && n < len(p) && prefix[n] == p[n] {
			n++
		}
		prefix = prefix[:n]
	}
	return prefix
}
