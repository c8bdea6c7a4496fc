// Package genelist turns the committed gene_list and transcript_list
// settings into concrete inclusion lists, and filters HGNC records by their
// locus group and type.
package genelist
