package common

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"runtime"
	"testing"

	"pvv/api/contexts"
	"pvv/api/models"
	genomeBuild "pvv/api/models/constants/genome-build"
	sqliteRepo "pvv/api/repositories/sqlite"
	"pvv/api/services"
	"pvv/api/services/annotation"

	"github.com/labstack/echo"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v2"
)

func InitConfig() *models.Config {
	var cfg models.Config

	// get this file's path
	_, filename, _, _ := runtime.Caller(0)
	folderpath := path.Dir(filename)

	// retrieve common's test.config
	f, err := os.Open(fmt.Sprintf("%s/test.config.yml", folderpath))
	if err != nil {
		processError(err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	err = decoder.Decode(&cfg)
	if err != nil {
		processError(err)
	}

	return &cfg
}

func processError(err error) {
	fmt.Println(err)
	os.Exit(2)
}

// NewServerContext wraps a request in a fully wired application
// context backed by a throwaway on-disk store, the way the server's
// context middleware does at runtime.
func NewServerContext(t *testing.T, request *http.Request) (*contexts.PvvContext, *httptest.ResponseRecorder) {
	t.Helper()

	cfg := InitConfig()

	store, err := sqliteRepo.Open(path.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	recorder := httptest.NewRecorder()
	echoContext := echo.New().NewContext(request, recorder)

	pc := &contexts.PvvContext{
		Context:           echoContext,
		Config:            cfg,
		Repository:        store,
		IngestionService:  services.NewIngestionService(store, cfg),
		AnnotationService: annotation.NewAnnotationService(store, cfg),
		GenomeBuild:       genomeBuild.CastToGenomeBuild(cfg.Annotation.GenomeBuild),
	}

	return pc, recorder
}
