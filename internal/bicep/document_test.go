package bicep

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsTemplate(t *testing.T) {
	if !IsTemplate("main.bicep") {
		t.Error("want main.bicep recognised as a template")
	}
	if !IsTemplate("deploy/modules/storage.bicep") {
		t.Error("want nested path recognised as a template")
	}
	if IsTemplate("main.json") {
		t.Error("want main.json rejected")
	}
	if IsTemplate("main.bicep.bak") {
		t.Error("want main.bicep.bak rejected")
	}
	// Extension matching is case-sensitive, mirroring the deploy pipeline.
	if IsTemplate("main.BICEP") {
		t.Error("want main.BICEP rejected")
	}
}

func TestLoad_Success(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.bicep")

	content := "resource kv 'Microsoft.KeyVault/vaults@2023-07-01' = {\n  name: 'kv-app'\n}\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Path != path {
		t.Errorf("path: got %q; want %q", doc.Path, path)
	}
	if doc.Content != content {
		t.Errorf("content: got %q; want %q", doc.Content, content)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.bicep"))
	if err == nil {
		t.Fatal("want error for missing file")
	}
}
