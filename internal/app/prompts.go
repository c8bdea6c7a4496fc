package app

import (
	"github.com/vk/geneloader/internal/config"
	"github.com/vk/geneloader/internal/genelist"
	"github.com/vk/geneloader/internal/settings"
)

// prompts lists the settings asked for on every run, in order.
var prompts = []settings.Request{
	{
		Key:     config.KeyLOVDPath,
		Message: "Path of LOVD installation to load data into",
		Kind:    settings.KindLOVDPath,
	},
	{
		Key: config.KeyGeneList,
		Message: "File containing the gene symbols that you want created,\n" +
			"    or just press enter to create all genes",
		Kind:    settings.KindFile,
		Choices: []string{genelist.KeywordAll},
	},
	{
		Key: config.KeyTranscriptList,
		Message: "File containing the transcripts that you want created,\n" +
			"    type 'all' to have all transcripts created,\n" +
			"    or just press enter to let LOVD pick the best transcript per gene",
		Kind:    settings.KindFile,
		Choices: []string{genelist.KeywordAll, genelist.KeywordBest},
	},
}
