package study

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/idr/studytool/internal/schema"
)

// writeAnnotationFile creates <dir>/<slug>/<name> as an empty file.
func writeAnnotationFile(t *testing.T, dir, slug, name string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(dir, slug), 0755); err != nil {
		t.Fatalf("creating slug dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, slug, name), nil, 0644); err != nil {
		t.Fatalf("writing annotation file: %v", err)
	}
}

func parseInDir(t *testing.T, dir string, opts ...Option) *Parsed {
	t.Helper()
	path := writeStudyFile(t, dir, studyLines())
	parsed, err := NewParser(schema.Default(), opts...).ParseFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return parsed
}

func TestResolveAnnotationFile_CSVPreferred(t *testing.T) {
	dir := t.TempDir()
	writeAnnotationFile(t, dir, "experimentA", "idr0001-experimentA-annotation.csv")
	writeAnnotationFile(t, dir, "experimentA", "idr0001-experimentA-annotation.csv.gz")

	parsed := parseInDir(t, dir)
	url := parsed.Components[0].Fields["Annotation File"]
	want := "https://github.com/IDR/idr-metadata/blob/master/" +
		"idr0001-smith-test/experimentA/idr0001-experimentA-annotation.csv"
	if url != want {
		t.Errorf("expected %q, got %q", want, url)
	}
}

func TestResolveAnnotationFile_GzipFallback(t *testing.T) {
	dir := t.TempDir()
	writeAnnotationFile(t, dir, "experimentA", "idr0001-experimentA-annotation.csv.gz")

	parsed := parseInDir(t, dir)
	url := parsed.Components[0].Fields["Annotation File"]
	if !strings.HasSuffix(url, ".csv.gz") {
		t.Errorf("expected a .csv.gz URL, got %q", url)
	}
}

func TestResolveAnnotationFile_AbsentIsNotAnError(t *testing.T) {
	parsed := parseInDir(t, t.TempDir())
	if _, ok := parsed.Components[0].Fields["Annotation File"]; ok {
		t.Error("expected Annotation File to be absent")
	}
}

func TestResolveAnnotationFile_LocalCheckout(t *testing.T) {
	dir := t.TempDir()
	writeAnnotationFile(t, dir, "experimentA", "idr0001-experimentA-annotation.csv")
	if err := os.MkdirAll(filepath.Join(dir, ".git"), 0755); err != nil {
		t.Fatalf("creating .git marker: %v", err)
	}

	parsed := parseInDir(t, dir)
	url := parsed.Components[0].Fields["Annotation File"]
	want := "https://github.com/IDR/idr0001-smith-test/blob/master/" +
		"experimentA/idr0001-experimentA-annotation.csv"
	if url != want {
		t.Errorf("expected %q, got %q", want, url)
	}
}

func TestResolveAnnotationFile_UnmatchedName(t *testing.T) {
	lines := studyLines()
	for i, l := range lines {
		if strings.HasPrefix(l, "Comment[IDR Experiment Name]\t") {
			lines[i] = "Comment[IDR Experiment Name]\tsomething-else/experimentA"
		}
	}
	path := writeStudyFile(t, t.TempDir(), lines)
	_, err := NewParser(schema.Default()).ParseFile(path)
	var un UnmatchedNameError
	if !errors.As(err, &un) {
		t.Fatalf("expected UnmatchedNameError, got %v", err)
	}
	if un.Name != "something-else/experimentA" {
		t.Errorf("unexpected name in error: %q", un.Name)
	}
}

func TestResolveAnnotationFile_ConfiguredBase(t *testing.T) {
	dir := t.TempDir()
	writeAnnotationFile(t, dir, "experimentA", "idr0001-experimentA-annotation.csv")

	parsed := parseInDir(t, dir,
		WithGitHubBase("https://github.example.org/mirror/"),
		WithFallbackRepo("mirror-metadata"))
	url := parsed.Components[0].Fields["Annotation File"]
	want := "https://github.example.org/mirror/mirror-metadata/blob/master/" +
		"idr0001-smith-test/experimentA/idr0001-experimentA-annotation.csv"
	if url != want {
		t.Errorf("expected %q, got %q", want, url)
	}
}
