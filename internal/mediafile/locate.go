package mediafile

import (
	"fmt"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Container types missing from many system MIME tables.
var videoTypes = map[string]string{
	".mp4":  "video/mp4",
	".mkv":  "video/x-matroska",
	".avi":  "video/x-msvideo",
	".mov":  "video/quicktime",
	".m4v":  "video/x-m4v",
	".wmv":  "video/x-ms-wmv",
	".flv":  "video/x-flv",
	".webm": "video/webm",
	".ts":   "video/mp2t",
	".m2ts": "video/mp2t",
	".mpg":  "video/mpeg",
	".mpeg": "video/mpeg",
	".rmvb": "video/vnd.rn-realvideo",
}

var subtitleExtensions = map[string]struct{}{
	".ass": {},
	".smi": {},
	".srt": {},
	".ssa": {},
	".vtt": {},
}

func init() {
	for ext, typ := range videoTypes {
		_ = mime.AddExtensionType(ext, typ)
	}
}

// IsVideo reports whether the extension of path maps to a video MIME type.
func IsVideo(path string) bool {
	typ := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if typ == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(typ)
	if err != nil {
		return false
	}
	category, _, _ := strings.Cut(mediaType, "/")
	return category == "video"
}

// IsSubtitleExt reports whether path carries a subtitle extension.
func IsSubtitleExt(path string) bool {
	_, ok := subtitleExtensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

// IsSubtitle reports whether path is an existing regular file with a
// subtitle extension.
func IsSubtitle(path string) bool {
	if !IsSubtitleExt(path) {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Locator scans directories for media files.
type Locator struct {
	Recursive bool
	// Exclude holds glob patterns matched against base names.
	Exclude []string
}

// Validate checks the exclusion patterns.
func (l Locator) Validate() error {
	for _, pattern := range l.Exclude {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return fmt.Errorf("exclude pattern %q: %w", pattern, err)
		}
	}
	return nil
}

// Videos lists video files under dir.
func (l Locator) Videos(dir string) ([]string, error) {
	return l.find(dir, IsVideo)
}

// Subtitles lists subtitle files under dir.
func (l Locator) Subtitles(dir string) ([]string, error) {
	return l.find(dir, IsSubtitle)
}

// FindVideoFiles lists video files in dir, descending when recursive is set.
func FindVideoFiles(dir string, recursive bool) ([]string, error) {
	return Locator{Recursive: recursive}.Videos(dir)
}

// FindSubtitleFiles lists subtitle files in dir, descending when recursive is set.
func FindSubtitleFiles(dir string, recursive bool) ([]string, error) {
	return Locator{Recursive: recursive}.Subtitles(dir)
}

func (l Locator) find(dir string, accept func(string) bool) ([]string, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	var results []string
	consider := func(path string) {
		if l.excluded(filepath.Base(path)) {
			return
		}
		if accept(path) {
			results = append(results, path)
		}
	}

	if l.Recursive {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.Type().IsRegular() {
				consider(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", dir, err)
		}
	} else {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("read directory %s: %w", dir, err)
		}
		for _, entry := range entries {
			if entry.Type().IsRegular() {
				consider(filepath.Join(dir, entry.Name()))
			}
		}
	}
	sort.Strings(results)
	return results, nil
}

func (l Locator) excluded(name string) bool {
	for _, pattern := range l.Exclude {
		if ok, _ := filepath.Match(pattern, name); ok {
			return true
		}
	}
	return false
}
