package genelist

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/vk/geneloader/internal/config"
	"github.com/vk/geneloader/internal/ctxlog"
)

// Keywords accepted instead of a list file.
const (
	KeywordAll  = "all"
	KeywordBest = "best"
)

// TranscriptMode says which transcripts are created per gene.
type TranscriptMode int

const (
	// TranscriptsBest lets the loader pick the best transcript per gene.
	TranscriptsBest TranscriptMode = iota
	// TranscriptsAll creates every transcript.
	TranscriptsAll
	// TranscriptsListed creates only the listed transcripts.
	TranscriptsListed
)

func (m TranscriptMode) String() string {
	switch m {
	case TranscriptsBest:
		return "best"
	case TranscriptsAll:
		return "all"
	case TranscriptsListed:
		return "listed"
	default:
		return fmt.Sprintf("TranscriptMode(%d)", int(m))
	}
}

// Selection is the resolved set of genes and transcripts to create.
type Selection struct {
	// AllGenes is set when no gene list restricts the genes.
	AllGenes    bool
	Genes       []string
	Transcripts TranscriptMode
	// TranscriptIDs is only filled for TranscriptsListed.
	TranscriptIDs []string

	genes       map[string]struct{}
	transcripts map[string]struct{}
}

// IncludesGene reports whether the gene with the given symbol is selected.
// Symbols compare case-insensitively.
func (s *Selection) IncludesGene(symbol string) bool {
	if s.AllGenes {
		return true
	}
	_, ok := s.genes[strings.ToUpper(symbol)]
	return ok
}

// IncludesTranscript reports whether the transcript with the given accession
// is selected. For TranscriptsBest it reports true for every transcript; the
// caller narrows the choice per gene.
func (s *Selection) IncludesTranscript(id string) bool {
	if s.Transcripts != TranscriptsListed {
		return true
	}
	_, ok := s.transcripts[id]
	return ok
}

// Filter resolves list settings and applies the HGNC locus filters.
type Filter struct {
	fsys      afero.Fs
	badGroups map[string]struct{}
	badTypes  map[string]struct{}
}

// New creates a Filter reading list files from fsys.
func New(fsys afero.Fs, hgnc config.HGNC) *Filter {
	return &Filter{
		fsys:      fsys,
		badGroups: lowerSet(hgnc.BadLocusGroups),
		badTypes:  lowerSet(hgnc.BadLocusTypes),
	}
}

// Select resolves the gene_list and transcript_list setting values.
func (f *Filter) Select(ctx context.Context, geneList, transcriptList string) (*Selection, error) {
	logger := ctxlog.FromContext(ctx)
	sel := &Selection{}

	switch strings.ToLower(geneList) {
	case "", KeywordAll:
		sel.AllGenes = true
	default:
		genes, err := readList(f.fsys, geneList)
		if err != nil {
			return nil, fmt.Errorf("failed to load gene list: %w", err)
		}
		if len(genes) == 0 {
			return nil, fmt.Errorf("gene list %s contains no gene symbols", geneList)
		}
		sel.Genes = genes
		sel.genes = make(map[string]struct{}, len(genes))
		for _, g := range genes {
			sel.genes[strings.ToUpper(g)] = struct{}{}
		}
	}

	switch strings.ToLower(transcriptList) {
	case "", KeywordBest:
		sel.Transcripts = TranscriptsBest
	case KeywordAll:
		sel.Transcripts = TranscriptsAll
	default:
		ids, err := readList(f.fsys, transcriptList)
		if err != nil {
			return nil, fmt.Errorf("failed to load transcript list: %w", err)
		}
		if len(ids) == 0 {
			return nil, fmt.Errorf("transcript list %s contains no transcripts", transcriptList)
		}
		sel.Transcripts = TranscriptsListed
		sel.TranscriptIDs = ids
		sel.transcripts = make(map[string]struct{}, len(ids))
		for _, id := range ids {
			sel.transcripts[id] = struct{}{}
		}
	}

	logger.Debug("Gene selection resolved.", "all_genes", sel.AllGenes, "genes", len(sel.Genes), "transcripts", sel.Transcripts.String(), "transcript_ids", len(sel.TranscriptIDs))
	return sel, nil
}

// KeepLocus reports whether a gene with the given HGNC locus group and type
// can be loaded. Genes in an excluded group or of an excluded type are dropped.
func (f *Filter) KeepLocus(group, locusType string) bool {
	if _, bad := f.badGroups[strings.ToLower(group)]; bad {
		return false
	}
	_, bad := f.badTypes[strings.ToLower(locusType)]
	return !bad
}

func lowerSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[strings.ToLower(v)] = struct{}{}
	}
	return set
}
