package dtos

import (
	"time"

	"pvv/api/models"
)

type VariantsResponseDTO struct {
	Status  int                    `json:"status"`
	Message string                 `json:"message"`
	Data    []models.JoinedVariant `json:"data"`
}

type InputsResponseDTO struct {
	Status  int                   `json:"status"`
	Message string                `json:"message"`
	Data    []models.VariantInput `json:"data"`
}

type OutputResponseDTO struct {
	Status  int                   `json:"status"`
	Message string                `json:"message"`
	Data    *models.VariantOutput `json:"data"`
}

type CreateInputRequestDTO struct {
	PatientId     int    `json:"patient_id" form:"patient_id" query:"patient_id"`
	VariantNumber int    `json:"variant_number" form:"variant_number" query:"variant_number"`
	Chrom         string `json:"chrom" form:"chrom" query:"chrom"`
	Pos           int    `json:"pos" form:"pos" query:"pos"`
	Id            string `json:"id" form:"id" query:"id"`
	Ref           string `json:"ref" form:"ref" query:"ref"`
	Alt           string `json:"alt" form:"alt" query:"alt"`
}

type VariantsOverviewResponseDTO struct {
	Status  int    `json:"status"`
	Message string `json:"message"`

	InputsCount      int `json:"inputsCount"`
	OutputsCount     int `json:"outputsCount"`
	UnannotatedCount int `json:"unannotatedCount"`

	Chromosomes           map[string]int `json:"chromosomes"`
	ClinicalSignificances map[string]int `json:"clinicalSignificances"`
}

type AnnotationRunResponseDTO struct {
	Status    int    `json:"status"`
	Message   string `json:"message"`
	Annotated int    `json:"annotated"`
	Failed    int    `json:"failed"`
}

type DatabaseResetResponseDTO struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// -- errors

type GeneralErrorResponseDto struct {
	Code      int            `json:"code"`
	Message   string         `json:"message"`
	Timestamp time.Time      `json:"timestamp"`
	Errors    []GeneralError `json:"errors"`
}

type GeneralError struct {
	Message string `json:"message"`
}
