package app

import (
	"context"
	"fmt"

	"github.com/vk/geneloader/internal/config"
	"github.com/vk/geneloader/internal/ctxlog"
)

// Run asks for every setting, then hands the verified values to the
// installation bootstrap and the gene list filter.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	fmt.Fprintf(a.outW, "Gene Loader v%s.\n", a.settings.Version)

	for _, req := range prompts {
		if _, err := a.verifier.Verify(ctx, req); err != nil {
			return fmt.Errorf("failed to verify setting %s: %w", req.Key, err)
		}
	}
	for _, key := range a.store.Keys() {
		a.logger.Debug("Resolved setting.", "key", key, "value", a.store.String(key))
	}
	a.logger.Info("All settings verified.",
		config.KeyLOVDPath, a.store.String(config.KeyLOVDPath),
		config.KeyGeneList, a.store.String(config.KeyGeneList),
		config.KeyTranscriptList, a.store.String(config.KeyTranscriptList),
	)

	// The installation is only opened after all questions are answered.
	inst, err := a.bootstrapper.Bootstrap(ctx, a.store.String(config.KeyLOVDPath))
	if err != nil {
		return fmt.Errorf("failed to bootstrap LOVD installation: %w", err)
	}
	a.installation = inst
	a.logger.Info("LOVD installation found.",
		"root", inst.Root,
		"dsn", inst.Database.RedactedDSN(),
		"genes_table", inst.Database.Table("genes"),
		"transcripts_table", inst.Database.Table("transcripts"),
	)

	sel, err := a.selector.Select(ctx, a.store.String(config.KeyGeneList), a.store.String(config.KeyTranscriptList))
	if err != nil {
		return fmt.Errorf("failed to resolve gene selection: %w", err)
	}
	a.selection = sel

	genes := "all genes"
	if !sel.AllGenes {
		genes = fmt.Sprintf("%d listed genes", len(sel.Genes))
	}
	fmt.Fprintf(a.outW, "\nUsing LOVD installation at %s (database %s).\n", inst.Root, inst.Database.Name)
	fmt.Fprintf(a.outW, "Creating %s with %s transcripts.\n", genes, sel.Transcripts)

	a.logger.Debug("App.Run method finished.")
	return nil
}
