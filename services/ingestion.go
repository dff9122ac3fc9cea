package services

import (
	"bufio"
	"context"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"pvv/api/models"
	"pvv/api/models/ingest"
	sqliteRepo "pvv/api/repositories/sqlite"
)

type (
	IngestionService struct {
		Initialized                  bool
		IngestRequestChan            chan *ingest.IngestRequest
		IngestRequestMap             map[string]*ingest.IngestRequest
		IngestRequestMapMux          sync.RWMutex
		ConcurrentFileIngestionQueue chan bool
		Repository                   *sqliteRepo.Store
	}
)

func NewIngestionService(repo *sqliteRepo.Store, cfg *models.Config) *IngestionService {
	iz := &IngestionService{
		Initialized:                  false,
		IngestRequestChan:            make(chan *ingest.IngestRequest),
		IngestRequestMap:             map[string]*ingest.IngestRequest{},
		IngestRequestMapMux:          sync.RWMutex{},
		ConcurrentFileIngestionQueue: make(chan bool, cfg.Api.FileProcessingConcurrencyLevel),
		Repository:                   repo,
	}

	iz.Init()

	return iz
}

func (i *IngestionService) Init() {
	// safeguard to prevent multiple initilizations
	if !i.Initialized {
		// spin up a go routine acting as a listener
		// for ingest request updates
		go func() {
			for {
				ingestionRequest := <-i.IngestRequestChan
				if ingestionRequest.State == ingest.Queued {
					fmt.Printf("Queueing a new variant ingestion request for %s\n", ingestionRequest.Filename)
				}

				ingestionRequest.UpdatedAt = time.Now().String()
				i.IngestRequestMapMux.Lock()
				i.IngestRequestMap[ingestionRequest.Id.String()] = ingestionRequest
				i.IngestRequestMapMux.Unlock()
			}
		}()

		i.Initialized = true
	}
}

// FilterVcfFiles lists the names of all .vcf files in the given directory.
func (i *IngestionService) FilterVcfFiles(dirPath string) ([]string, error) {
	fileInfo, err := ioutil.ReadDir(dirPath)
	if err != nil {
		return nil, err
	}

	var vcfFiles []string
	for _, file := range fileInfo {
		if strings.HasSuffix(strings.ToLower(file.Name()), ".vcf") {
			vcfFiles = append(vcfFiles, file.Name())
		} else {
			fmt.Printf("Skipping %s\n", file.Name())
		}
	}

	return vcfFiles, nil
}

// ExtractPatientId parses the patient id out of file names
// like Patient1.vcf / patient12.vcf
func ExtractPatientId(filename string) (int, error) {
	stem := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))

	if !strings.HasPrefix(strings.ToLower(stem), "patient") {
		return 0, fmt.Errorf("not a patient VCF: %s", filename)
	}

	patientId, err := strconv.Atoi(stem[len("patient"):])
	if err != nil {
		return 0, fmt.Errorf("cannot parse patient id from %s: %w", filename, err)
	}

	return patientId, nil
}

// ParseVcfLine splits a single tab-separated VCF data line into an
// input row (without its key). A "." id is treated as absent.
func ParseVcfLine(line string) (*models.VariantInput, error) {
	fields := strings.Split(strings.TrimRight(line, "\r\n"), "\t")
	if len(fields) < 5 {
		return nil, fmt.Errorf("malformed VCF line (%d columns): %q", len(fields), line)
	}

	pos, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("invalid POS %q: %w", fields[1], err)
	}

	vid := fields[2]
	if vid == "." {
		vid = ""
	}

	return &models.VariantInput{
		Chrom: fields[0],
		Pos:   pos,
		Id:    vid,
		Ref:   fields[3],
		Alt:   fields[4],
	}, nil
}

// ProcessVcf parses a VCF for a single patient and inserts its variants
// into the inputs table.
//   - the patient id is extracted from filenames like Patient1.vcf
//   - variant numbers start at 1 for each file
//   - existing variants are skipped (counted) to avoid duplicates
func (i *IngestionService) ProcessVcf(ctx context.Context, vcfPath string) (insertedCount int, skippedCount int, err error) {
	patientId, err := ExtractPatientId(vcfPath)
	if err != nil {
		return 0, 0, err
	}

	f, err := os.Open(vcfPath)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	fmt.Printf("Loading variants for Patient %d from %s\n", patientId, vcfPath)

	scanner := bufio.NewScanner(f)
	variantNumber := 1

	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}

		input, parseErr := ParseVcfLine(line)
		if parseErr != nil {
			return insertedCount, skippedCount, parseErr
		}
		input.PatientId = patientId
		input.VariantNumber = variantNumber

		createErr := i.Repository.CreateInput(ctx, input)
		if sqliteRepo.IsUniqueKeyViolation(createErr) {
			fmt.Printf("Skipping duplicate: Patient %d, Variant %d\n", patientId, variantNumber)
			skippedCount++
			variantNumber++
			continue
		}
		if createErr != nil {
			return insertedCount, skippedCount, createErr
		}

		insertedCount++
		variantNumber++
	}
	if scanErr := scanner.Err(); scanErr != nil {
		return insertedCount, skippedCount, scanErr
	}

	fmt.Printf("Finished Patient %d: %d inserted, %d skipped.\n", patientId, insertedCount, skippedCount)

	return insertedCount, skippedCount, nil
}
