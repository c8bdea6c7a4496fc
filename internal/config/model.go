package config

// Version is the release of the gene loader reported in its banner.
const Version = "0.1"

// Settings is the unified, format-agnostic representation of the
// application settings.
type Settings struct {
	Version string
	// User holds the initial contents of the Configuration Store.
	User map[string]Value
	HGNC HGNC
	LOVD LOVD
}

// HGNC holds the settings that drive filtering of HGNC gene records.
type HGNC struct {
	// BadLocusGroups lists locus groups whose genes are never loaded.
	BadLocusGroups []string
	// BadLocusTypes lists locus types whose genes are never loaded.
	BadLocusTypes []string
	// Columns maps HGNC download column identifiers to their header labels.
	Columns map[string]string
}

// LOVD describes the layout of an LOVD installation and its import columns.
type LOVD struct {
	MarkerFile        string
	SourceDir         string
	GeneColumns       []string
	TranscriptColumns []string
}

// Default returns the built-in settings.
func Default() *Settings {
	return &Settings{
		Version: Version,
		User: map[string]Value{
			KeyLOVDPath:       StringValue(""),
			KeyGeneList:       StringValue("all"),
			KeyTranscriptList: StringValue("best"),
		},
		HGNC: HGNC{
			BadLocusGroups: []string{
				"phenotype", // no transcripts
				"withdrawn",
			},
			BadLocusTypes: []string{
				"endogenous retrovirus",
				"fragile site",
				"immunoglobulin gene",
				"region",
				"transposable element",
				"unknown",
				"virus integration site",
				"immunoglobulin pseudogene",
			},
			Columns: map[string]string{
				"gd_hgnc_id":        "HGNC ID",
				"gd_app_sym":        "Approved Symbol",
				"gd_app_name":       "Approved Name",
				"gd_locus_type":     "Locus Type",
				"gd_locus_group":    "Locus Group",
				"gd_pub_chrom_map":  "Chromosome",
				"gd_pub_eg_id":      "Entrez Gene ID",
				"gd_pub_refseq_ids": "RefSeq IDs",
				"md_mim_id":         "OMIM ID(supplied by OMIM)",
				"md_refseq_id":      "RefSeq(supplied by NCBI)",
			},
		},
		LOVD: LOVD{
			MarkerFile: "config.ini.php",
			SourceDir:  "src",
			GeneColumns: []string{
				"id",
				"name",
				"chromosome",
				"chrom_band",
				"refseq_genomic",
				"refseq_UD",
				"id_hgnc",
				"id_entrez",
				"id_omim",
			},
			TranscriptColumns: []string{
				"id",
				"geneid",
				"name",
				"id_mutalyzer",
				"id_ncbi",
				"id_protein_ncbi",
				"position_c_mrna_start",
				"position_c_mrna_end",
				"position_c_cds_end",
				"position_g_mrna_start",
				"position_g_mrna_end",
			},
		},
	}
}
