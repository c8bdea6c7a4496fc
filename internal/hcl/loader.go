package hcl

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/spf13/afero"
	"github.com/vk/geneloader/internal/config"
	"github.com/vk/geneloader/internal/ctxlog"
	"github.com/vk/geneloader/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	fsys afero.Fs
}

// NewLoader creates a new HCL settings loader reading from fsys.
func NewLoader(fsys afero.Fs) *Loader {
	return &Loader{fsys: fsys}
}

// fileRoot is a struct used to decode all possible top-level content of a settings file.
type fileRoot struct {
	Version *string    `hcl:"version,optional"`
	User    *userBlock `hcl:"user,block"`
	HGNC    *hgncBlock `hcl:"hgnc,block"`
	LOVD    *lovdBlock `hcl:"lovd,block"`
}

type userBlock struct {
	Remain hcl.Body `hcl:",remain"`
}

type hgncBlock struct {
	BadLocusGroups []string          `hcl:"bad_locus_groups,optional"`
	BadLocusTypes  []string          `hcl:"bad_locus_types,optional"`
	Columns        map[string]string `hcl:"columns,optional"`
}

type lovdBlock struct {
	MarkerFile        string   `hcl:"marker_file,optional"`
	SourceDir         string   `hcl:"source_dir,optional"`
	GeneColumns       []string `hcl:"gene_columns,optional"`
	TranscriptColumns []string `hcl:"transcript_columns,optional"`
}

// Load overlays every settings file found under paths on the built-in
// defaults. Files are applied in path order; within a directory, in lexical
// order, so later files win.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Settings, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	settings := config.Default()

	hclFiles, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(hclFiles))

	parser := hclparse.NewParser()

	for _, file := range hclFiles {
		data, err := afero.ReadFile(l.fsys, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read HCL file %s: %w", file, err)
		}

		hclFile, diags := parser.ParseHCL(data, file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		if err := apply(settings, &root); err != nil {
			return nil, fmt.Errorf("invalid settings in %s: %w", file, err)
		}
		logger.Debug("Applied settings file.", "file", file)
	}

	logger.Debug("HCL loading complete.", "files", len(hclFiles), "user_settings", len(settings.User))
	return settings, nil
}

// apply merges the decoded content of one file into settings.
func apply(settings *config.Settings, root *fileRoot) error {
	if root.Version != nil {
		settings.Version = *root.Version
	}

	if root.User != nil {
		values, err := decodeUserValues(root.User.Remain)
		if err != nil {
			return err
		}
		for k, v := range values {
			settings.User[k] = v
		}
	}

	if h := root.HGNC; h != nil {
		if h.BadLocusGroups != nil {
			settings.HGNC.BadLocusGroups = h.BadLocusGroups
		}
		if h.BadLocusTypes != nil {
			settings.HGNC.BadLocusTypes = h.BadLocusTypes
		}
		if h.Columns != nil {
			settings.HGNC.Columns = h.Columns
		}
	}

	if lv := root.LOVD; lv != nil {
		if lv.MarkerFile != "" {
			settings.LOVD.MarkerFile = lv.MarkerFile
		}
		if lv.SourceDir != "" {
			settings.LOVD.SourceDir = lv.SourceDir
		}
		if lv.GeneColumns != nil {
			settings.LOVD.GeneColumns = lv.GeneColumns
		}
		if lv.TranscriptColumns != nil {
			settings.LOVD.TranscriptColumns = lv.TranscriptColumns
		}
	}
	return nil
}

// findAllHCLFiles walks all given paths and returns a flat list of all .hcl files found.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})

	for _, path := range paths {
		info, err := l.fsys.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue // It's not an error if a configured path doesn't exist.
			}
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		var found []string
		if info.IsDir() {
			found, err = fsutil.FindFilesByExtension(l.fsys, path, ".hcl")
			if err != nil {
				return nil, err
			}
			sort.Strings(found)
		} else {
			found = []string{path}
		}

		for _, f := range found {
			if _, wasSeen := seen[f]; !wasSeen {
				allFiles = append(allFiles, f)
				seen[f] = struct{}{}
			}
		}
	}
	return allFiles, nil
}
