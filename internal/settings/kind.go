package settings

import "fmt"

// Kind selects the verification rule applied to a setting.
type Kind int

const (
	// KindEnumerated accepts one of a fixed set of lower-case choices.
	KindEnumerated Kind = iota + 1
	// KindIntegerRange accepts a whole number within optional bounds.
	KindIntegerRange
	// KindFile accepts a readable path.
	KindFile
	// KindPath accepts a readable directory.
	KindPath
	// KindLOVDPath accepts a readable directory that holds an LOVD
	// configuration file, either directly or in its source subdirectory.
	KindLOVDPath
)

var kindNames = map[Kind]string{
	KindEnumerated:   "enumerated",
	KindIntegerRange: "integer_range",
	KindFile:         "file",
	KindPath:         "path",
	KindLOVDPath:     "lovd_path",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// isPath reports whether k is one of the filesystem kinds.
func (k Kind) isPath() bool {
	return k == KindFile || k == KindPath || k == KindLOVDPath
}
