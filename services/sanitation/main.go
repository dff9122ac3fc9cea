package sanitation

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"

	"pvv/api/models"
	gb "pvv/api/models/constants/genome-build"
	sqliteRepo "pvv/api/repositories/sqlite"
	"pvv/api/services/annotation"
)

type (
	SanitationService struct {
		Initialized       bool
		Repository        *sqliteRepo.Store
		AnnotationService *annotation.AnnotationService
		Config            *models.Config
	}
)

func NewSanitationService(repo *sqliteRepo.Store, az *annotation.AnnotationService, cfg *models.Config) *SanitationService {
	ss := &SanitationService{
		Initialized:       false,
		Repository:        repo,
		AnnotationService: az,
		Config:            cfg,
	}

	ss.Init()

	return ss
}

func (ss *SanitationService) Init() {
	// initialization if necessary
	if !ss.Initialized {
		// - spin up a go routine that will periodically
		//   run through the inputs table and annotate any
		//   rows that are still missing their output row,
		//   keeping the store "sanitary"; i.e. every input
		//   eventually carries its derived annotation
		go func() {
			// setup cron job
			s := gocron.NewScheduler(time.UTC)

			s.Every(1).Days().At("04:00:00").Do(func() { // 12am EST
				fmt.Printf("[%s] - Running annotation sweep..\n", time.Now())

				pending, pendingErr := ss.Repository.ListUnannotated(context.Background())
				if pendingErr != nil {
					fmt.Printf("[%s] - Error listing unannotated inputs : %v..\n", time.Now(), pendingErr)
					return
				}
				fmt.Printf("[%s] - Found %d unannotated inputs..\n", time.Now(), len(pending))
				if len(pending) == 0 {
					return
				}

				build := gb.CastToGenomeBuild(ss.Config.Annotation.GenomeBuild)

				annotated, failed, sweepErr := ss.AnnotationService.AnnotateAllPending(context.Background(), build)
				if sweepErr != nil {
					fmt.Printf("[%s] - Error running annotation sweep : %v..\n", time.Now(), sweepErr)
					return
				}

				fmt.Printf("[%s] - Annotation sweep done : %d annotated, %d failed..\n", time.Now(), annotated, failed)
			})

			// starts the scheduler in blocking mode, which blocks
			// the current execution path
			s.StartBlocking()
		}()

		ss.Initialized = true
		fmt.Println("Sanitation Service Initialized ..")
	}
}
