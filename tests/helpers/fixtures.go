package helpers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/theoremus-urban-solutions/routes-to-journeys/journey"
	"github.com/theoremus-urban-solutions/routes-to-journeys/normalizer"
)

// GetTestDataPath returns absolute path to testdata/
func GetTestDataPath() string {
	wd, _ := os.Getwd()
	for {
		testdataPath := filepath.Join(wd, "testdata")
		if _, err := os.Stat(testdataPath); err == nil {
			return testdataPath
		}
		parent := filepath.Dir(wd)
		if parent == wd {
			panic("Could not find testdata directory")
		}
		wd = parent
	}
}

// LoadPayload reads a raw route payload fixture from testdata/payloads/.
func LoadPayload(t *testing.T, filename string) []byte {
	t.Helper()
	path := filepath.Join(GetTestDataPath(), "payloads", filename)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to load payload fixture %s: %v", filename, err)
	}
	return data
}

// LoadResultSet loads and normalizes a payload fixture, failing the test on
// any schema error or warning.
func LoadResultSet(t *testing.T, filename string) journey.SearchResultSet {
	t.Helper()
	rs, warnings, err := normalizer.Normalize(LoadPayload(t, filename))
	if err != nil {
		t.Fatalf("Fixture %s did not normalize: %v", filename, err)
	}
	if warnings.Total() != 0 {
		t.Fatalf("Fixture %s should be warning-free, got %d warnings", filename, warnings.Total())
	}
	return *rs
}
