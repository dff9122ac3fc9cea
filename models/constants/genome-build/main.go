package genomeBuild

import (
	"pvv/api/models/constants"
	"strings"
)

const (
	Unknown constants.GenomeBuild = "Unknown"

	GRCh38 constants.GenomeBuild = "GRCh38"
	GRCh37 constants.GenomeBuild = "GRCh37"
)

func CastToGenomeBuild(text string) constants.GenomeBuild {
	switch strings.ToLower(text) {
	case "grch38":
		return GRCh38
	case "grch37":
		return GRCh37
	default:
		return Unknown
	}
}

func IsKnownGenomeBuild(text string) bool {
	// attempt to cast to genomeBuild and
	// return if unknown build
	return CastToGenomeBuild(text) != Unknown
}
