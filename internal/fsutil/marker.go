package fsutil

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

// MarkerNotFoundError reports that a marker file was found in none of the
// locations that were checked.
type MarkerNotFoundError struct {
	Marker  string
	Checked []string
}

func (e *MarkerNotFoundError) Error() string {
	return fmt.Sprintf("cannot locate %s in %s", e.Marker, strings.Join(e.Checked, " or "))
}

// LocateMarker looks for marker directly inside root and then inside
// root/subdir. It returns the directory that contains the marker: root
// unchanged when found at the top level, root joined with subdir when found
// one level down. Only that single fixed level is searched. An empty subdir
// restricts the search to root.
func LocateMarker(fsys afero.Fs, root, marker, subdir string) (string, error) {
	checked := []string{joinPath(root, marker)}
	if Exists(fsys, checked[0]) {
		return root, nil
	}

	if subdir != "" {
		nested := joinPath(root, subdir)
		candidate := joinPath(nested, marker)
		checked = append(checked, candidate)
		if Exists(fsys, candidate) {
			return nested, nil
		}
	}

	return "", &MarkerNotFoundError{Marker: marker, Checked: checked}
}
