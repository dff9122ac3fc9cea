package constants

/*
	Defines a set of base level
	constants and enums to be used
	throughout the variant viewer and
	it's associated services.
*/
type GenomeBuild string

var VcfHeaders = []string{"chrom", "pos", "id", "ref", "alt", "qual", "filter", "info", "format"}
