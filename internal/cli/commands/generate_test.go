package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setFlags(t *testing.T, dir string) {
	t.Helper()
	dirFlag = dir
	checkMode = false
	dryRun = false
	write = true
	jsonOutput = false
	t.Cleanup(func() {
		dirFlag = ""
		checkMode = false
		dryRun = false
		write = true
		jsonOutput = false
	})
}

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

// fixtureDir builds a directory with a template and two tool pages:
// a.html has a title, b.html relies on the filename fallback.
func fixtureDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFixture(t, dir, "index.template.html", "<html><body><ul>\n<!-- TOOLS_LIST -->\n</ul></body></html>\n")
	writeFixture(t, dir, "a.html", "<html><title>A Tool</title><meta name=\"description\" content=\"Does A\"></html>")
	writeFixture(t, dir, "b.html", "<html><meta name=\"description\" content=\"Does B\"></html>")
	return dir
}

func TestRunGenerate_WritesIndex(t *testing.T) {
	dir := fixtureDir(t)
	setFlags(t, dir)

	if code := runGenerate(); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}

	data, err := os.ReadFile(filepath.Join(dir, "index.html"))
	if err != nil {
		t.Fatalf("index.html not written: %v", err)
	}
	content := string(data)

	aPos := strings.Index(content, `href="a.html"`)
	bPos := strings.Index(content, `href="b.html"`)
	if aPos < 0 || bPos < 0 {
		t.Fatalf("expected both tools in index, got:\n%s", content)
	}
	if aPos > bPos {
		t.Errorf("expected a.html before b.html")
	}
	if !strings.Contains(content, `<span class="tool-title">A Tool</span>`) {
		t.Errorf("missing extracted title for a.html")
	}
	// b.html has no <title>; the filename fallback applies.
	if !strings.Contains(content, `<span class="tool-title">B</span>`) {
		t.Errorf("missing derived title for b.html")
	}
}

func TestRunGenerate_Idempotent(t *testing.T) {
	dir := fixtureDir(t)
	setFlags(t, dir)

	if code := runGenerate(); code != 0 {
		t.Fatalf("first run failed: %d", code)
	}
	first, _ := os.ReadFile(filepath.Join(dir, "index.html"))

	if code := runGenerate(); code != 0 {
		t.Fatalf("second run failed: %d", code)
	}
	second, _ := os.ReadFile(filepath.Join(dir, "index.html"))

	if string(first) != string(second) {
		t.Errorf("expected byte-identical output across runs")
	}

	// An up-to-date index passes --check with exit 0.
	checkMode = true
	if code := runGenerate(); code != 0 {
		t.Errorf("expected --check to pass on fresh index, got %d", code)
	}
}

func TestRunGenerate_CheckStale(t *testing.T) {
	dir := fixtureDir(t)
	setFlags(t, dir)
	checkMode = true

	if code := runGenerate(); code != 1 {
		t.Fatalf("expected exit code 1 for stale index, got %d", code)
	}
	if _, err := os.Stat(filepath.Join(dir, "index.html")); !os.IsNotExist(err) {
		t.Errorf("--check must not write the index")
	}
}

func TestRunGenerate_DryRunDoesNotWrite(t *testing.T) {
	dir := fixtureDir(t)
	setFlags(t, dir)
	dryRun = true

	if code := runGenerate(); code != 0 {
		t.Fatalf("expected exit code 0 for dry run, got %d", code)
	}
	if _, err := os.Stat(filepath.Join(dir, "index.html")); !os.IsNotExist(err) {
		t.Errorf("--dry-run must not write the index")
	}
}

func TestRunGenerate_DryRunLeavesStaleIndex(t *testing.T) {
	dir := fixtureDir(t)
	writeFixture(t, dir, "index.html", "stale content")
	setFlags(t, dir)
	dryRun = true

	if code := runGenerate(); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	data, _ := os.ReadFile(filepath.Join(dir, "index.html"))
	if string(data) != "stale content" {
		t.Errorf("--dry-run modified the index file")
	}
}

func TestRunGenerate_ConfigRenamesFiles(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, ".toolindex.yaml", "index: listing.html\ntemplate: listing.template.html\n")
	writeFixture(t, dir, "listing.template.html", "<ul>\n<!-- TOOLS_LIST -->\n</ul>\n")
	writeFixture(t, dir, "a.html", "<html><title>A Tool</title><meta name=\"description\" content=\"Does A\"></html>")
	setFlags(t, dir)

	if code := runGenerate(); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}

	data, err := os.ReadFile(filepath.Join(dir, "listing.html"))
	if err != nil {
		t.Fatalf("renamed index not written: %v", err)
	}
	if !strings.Contains(string(data), `href="a.html"`) {
		t.Errorf("renamed index missing tool entry:\n%s", data)
	}
	if _, err := os.Stat(filepath.Join(dir, "index.html")); !os.IsNotExist(err) {
		t.Errorf("default index name must not be written when renamed")
	}

	// The renamed files exclude themselves: a second run scans neither
	// listing.html nor the template, so the index stays fresh.
	checkMode = true
	if code := runGenerate(); code != 0 {
		t.Errorf("expected --check to pass after rename, got %d", code)
	}
}

func TestRunGenerate_WriteDisabled(t *testing.T) {
	dir := fixtureDir(t)
	setFlags(t, dir)
	write = false

	if code := runGenerate(); code != 0 {
		t.Fatalf("expected exit code 0 with --write=false, got %d", code)
	}
	if _, err := os.Stat(filepath.Join(dir, "index.html")); !os.IsNotExist(err) {
		t.Errorf("--write=false must not write the index")
	}
}

func TestRunGenerate_MissingTemplate(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "a.html", "<html><title>A</title><meta name=\"description\" content=\"Does A\"></html>")
	setFlags(t, dir)

	if code := runGenerate(); code != 1 {
		t.Fatalf("expected exit code 1 without template, got %d", code)
	}
	if _, err := os.Stat(filepath.Join(dir, "index.html")); !os.IsNotExist(err) {
		t.Errorf("no index may be written on fatal error")
	}
}

func TestRunGenerate_MissingDescription(t *testing.T) {
	dir := fixtureDir(t)
	writeFixture(t, dir, "c.html", "<html><title>C</title></html>")
	setFlags(t, dir)

	if code := runGenerate(); code != 1 {
		t.Fatalf("expected exit code 1 for missing description, got %d", code)
	}
	if _, err := os.Stat(filepath.Join(dir, "index.html")); !os.IsNotExist(err) {
		t.Errorf("no index may be written on fatal error")
	}
}

func TestRunValidate(t *testing.T) {
	dir := fixtureDir(t)
	setFlags(t, dir)
	validateQuiet = true
	t.Cleanup(func() { validateQuiet = false; validateStrict = false })

	if code := runValidate(); code != 0 {
		t.Fatalf("expected exit code 0 for valid dir, got %d", code)
	}

	// b.html has no <title>, which is a warning; --strict escalates it.
	validateStrict = true
	if code := runValidate(); code != 1 {
		t.Errorf("expected exit code 1 under --strict with warnings, got %d", code)
	}
	validateStrict = false

	writeFixture(t, dir, "c.html", "<html><title>C</title></html>")
	if code := runValidate(); code != 1 {
		t.Errorf("expected exit code 1 with invalid file, got %d", code)
	}
}
