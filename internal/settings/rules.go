package settings

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"github.com/vk/geneloader/internal/config"
	"github.com/vk/geneloader/internal/fsutil"
)

// rule is the acceptance check of one verification kind. accept receives
// the effective input and the stored default for the key. It returns the
// normalised value, a *Rejection for bad input, or any other error for a
// failure that must stop the prompt loop.
type rule interface {
	accept(input, def string) (config.Value, error)
}

// newRule builds the rule for req. Requests that are malformed, as opposed
// to bad user input, fail here before anything is prompted.
func (v *Verifier) newRule(req Request) (rule, error) {
	switch req.Kind {
	case KindEnumerated:
		if len(req.Choices) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoChoices, req.Key)
		}
		choices := make([]string, len(req.Choices))
		for i, c := range req.Choices {
			choices[i] = strings.ToLower(c)
		}
		return enumRule{choices: choices}, nil
	case KindIntegerRange:
		if err := req.Range.validate(); err != nil {
			return nil, fmt.Errorf("setting %s: %w", req.Key, err)
		}
		return rangeRule{bounds: req.Range}, nil
	case KindFile, KindPath, KindLOVDPath:
		return pathRule{
			kind:     req.Kind,
			fsys:     v.fsys,
			literals: req.Choices,
			marker:   v.layout.MarkerFile,
			subdir:   v.layout.SourceDir,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %s for setting %s", ErrUnknownKind, req.Kind, req.Key)
	}
}

type enumRule struct {
	choices []string
}

func (r enumRule) accept(input, _ string) (config.Value, error) {
	s := strings.ToLower(input)
	if slices.Contains(r.choices, s) {
		return config.StringValue(s), nil
	}
	return config.Value{}, reject("Please choose one of: " + strings.Join(r.choices, ", ") + ".")
}

type rangeRule struct {
	bounds Range
}

func (r rangeRule) accept(input, _ string) (config.Value, error) {
	n, err := strconv.Atoi(input)
	if err != nil {
		return config.Value{}, reject("Please enter a whole number.")
	}
	if !r.bounds.Contains(n) {
		return config.Value{}, reject(fmt.Sprintf("Please enter a number %s.", r.bounds))
	}
	return config.IntValue(n), nil
}

type pathRule struct {
	kind     Kind
	fsys     afero.Fs
	literals []string
	marker   string
	subdir   string
}

func (r pathRule) accept(input, def string) (config.Value, error) {
	if input == "" {
		return config.Value{}, reject("Please enter a value.")
	}

	// The stored default and the given literals are always accepted.
	if def != "" && input == def {
		return config.StringValue(input), nil
	}
	for _, lit := range r.literals {
		if strings.EqualFold(input, lit) {
			return config.StringValue(lit), nil
		}
	}

	if r.kind != KindFile && !fsutil.IsDir(r.fsys, input) {
		return config.Value{}, reject("Given path is not a directory.")
	}
	if !fsutil.IsReadable(r.fsys, input) {
		return config.Value{}, reject("Cannot read given path.")
	}

	if r.kind == KindLOVDPath {
		dir, err := fsutil.LocateMarker(r.fsys, input, r.marker, r.subdir)
		if err != nil {
			var notFound *fsutil.MarkerNotFoundError
			if !errors.As(err, &notFound) {
				return config.Value{}, err
			}
			return config.Value{}, reject(fmt.Sprintf(
				"Cannot locate %s in given path (checked %s).\nPlease check that the given path is a correct path to an LOVD installation.",
				r.marker, strings.Join(notFound.Checked, " and ")))
		}
		if !fsutil.IsReadable(r.fsys, filepath.Join(dir, r.marker)) {
			return config.Value{}, reject("Cannot read configuration file in given LOVD directory.")
		}
		input = dir
	}

	return config.StringValue(input), nil
}
