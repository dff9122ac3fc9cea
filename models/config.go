package models

type Config struct {
	Debug bool `envconfig:"PVV_DEBUG" default:"false"`

	Api struct {
		Port                           string `envconfig:"PVV_API_INTERNAL_PORT" default:"5000"`
		Url                            string `envconfig:"PVV_API_URL"`
		DatabasePath                   string `envconfig:"PVV_API_DATABASE_PATH" default:"instance/parkinsons.db"`
		VcfPath                        string `envconfig:"PVV_API_VCF_PATH" default:"data/input"`
		FileProcessingConcurrencyLevel int    `envconfig:"PVV_API_FILE_PROCESSING_CONCURRENCY_LEVEL" default:"2"`
	}

	Annotation struct {
		GenomeBuild  string `envconfig:"PVV_ANNOTATION_GENOME_BUILD" default:"GRCh38"`
		LovdUrl      string `envconfig:"PVV_ANNOTATION_LOVD_URL" default:"https://rest.variantvalidator.org/LOVD/lovd"`
		EutilsUrl    string `envconfig:"PVV_ANNOTATION_EUTILS_URL" default:"https://eutils.ncbi.nlm.nih.gov/entrez/eutils"`
		SweepEnabled bool   `envconfig:"PVV_ANNOTATION_SWEEP_ENABLED" default:"false"`
	}
}
