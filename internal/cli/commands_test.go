package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tvalden/schemaguard/pkg/schemaguard"
)

func resetExportFlags() {
	exportFlags = exportFlagValues{}
	for _, name := range []string{"metadata", "output", "verify", "charset", "dialect",
		"drop", "format", "delimiter", "properties", "prop"} {
		if f := exportCmd.Flags().Lookup(name); f != nil {
			f.Changed = false
		}
	}
}

// writeTestProject creates a project directory with a schemaguard.yaml and a
// single-entity metadata file, returning its path.
func writeTestProject(t *testing.T, configYAML string) string {
	t.Helper()
	dir := t.TempDir()

	if err := os.WriteFile(filepath.Join(dir, "schemaguard.yaml"), []byte(configYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := os.MkdirAll(filepath.Join(dir, "schema"), 0o755); err != nil {
		t.Fatal(err)
	}
	entities := `entities:
  - name: Account
    columns:
      - name: id
        type: bigint
        primaryKey: true
      - name: email
        type: varchar(255)
        notNull: true
`
	if err := os.WriteFile(filepath.Join(dir, "schema", "entities.yaml"), []byte(entities), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestExportCmd_ArgsValidation(t *testing.T) {
	err := exportCmd.Args(exportCmd, []string{})
	if err == nil {
		t.Fatal("Expected error for missing args")
	}
}

func TestExportCmd_ArgsValidation_TooMany(t *testing.T) {
	err := exportCmd.Args(exportCmd, []string{"a", "b"})
	if err == nil {
		t.Fatal("Expected error for too many args")
	}
}

func TestRunExport_NoConfigNoMetadataFlag(t *testing.T) {
	resetExportFlags()

	err := runExport(exportCmd, []string{t.TempDir()})
	if err == nil {
		t.Fatal("Expected error for missing config")
	}
	if schemaguard.ExitCodeForError(err) != schemaguard.ExitConfigError {
		t.Errorf("Expected config error exit code, got %d for: %v", schemaguard.ExitCodeForError(err), err)
	}
}

func TestRunExport_EndToEnd(t *testing.T) {
	resetExportFlags()
	dir := writeTestProject(t, `
metadata: schema
output: target/schema.ddl
verify: NONE
`)

	if err := runExport(exportCmd, []string{dir}); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	out, err := os.ReadFile(filepath.Join(dir, "target", "schema.ddl"))
	if err != nil {
		t.Fatalf("Expected output file to exist: %v", err)
	}
	if !strings.Contains(string(out), "create table account") {
		t.Errorf("Expected create table statement, got: %s", out)
	}
}

func TestRunExport_VerificationMismatch(t *testing.T) {
	resetExportFlags()
	dir := writeTestProject(t, `
metadata: schema
output: target/schema.ddl
verify: baseline.ddl
`)
	if err := os.WriteFile(filepath.Join(dir, "baseline.ddl"), []byte("something else\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := runExport(exportCmd, []string{dir})
	if err == nil {
		t.Fatal("Expected verification mismatch")
	}
	if !errors.Is(err, schemaguard.ErrSchemaMismatch) {
		t.Errorf("Expected schema mismatch error, got: %v", err)
	}
	if schemaguard.ExitCodeForError(err) != schemaguard.ExitSchemaMismatch {
		t.Errorf("Expected exit code %d, got %d", schemaguard.ExitSchemaMismatch, schemaguard.ExitCodeForError(err))
	}
}

func TestRunExport_BaselineRegenerationRoundTrip(t *testing.T) {
	resetExportFlags()
	dir := writeTestProject(t, `
metadata: schema
output: baseline.ddl
verify: NONE
`)

	// First run writes the baseline.
	if err := runExport(exportCmd, []string{dir}); err != nil {
		t.Fatalf("Baseline run failed: %v", err)
	}

	// Second run verifies against it.
	resetExportFlags()
	if err := exportCmd.Flags().Set("output", schemaguard.NoneSentinel); err != nil {
		t.Fatal(err)
	}
	if err := exportCmd.Flags().Set("verify", filepath.Join(dir, "baseline.ddl")); err != nil {
		t.Fatal(err)
	}
	if err := runExport(exportCmd, []string{dir}); err != nil {
		t.Fatalf("Verification against fresh baseline failed: %v", err)
	}
}

func TestRunExport_FixupsApplied(t *testing.T) {
	resetExportFlags()
	dir := writeTestProject(t, `
metadata: schema
output: target/schema.ddl
verify: NONE
fixups:
  - pattern: "bigint"
    replacement: "int8"
    modificationRequired: true
`)

	if err := runExport(exportCmd, []string{dir}); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	out, err := os.ReadFile(filepath.Join(dir, "target", "schema.ddl"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(out), "bigint") {
		t.Errorf("Expected bigint to be rewritten, got: %s", out)
	}
	if !strings.Contains(string(out), "int8") {
		t.Errorf("Expected int8 in output, got: %s", out)
	}
}

func TestRunExport_RequiredFixupNotApplied(t *testing.T) {
	resetExportFlags()
	dir := writeTestProject(t, `
metadata: schema
output: target/schema.ddl
verify: NONE
fixups:
  - pattern: "no_such_token"
    replacement: "x"
    modificationRequired: true
`)

	err := runExport(exportCmd, []string{dir})
	if err == nil {
		t.Fatal("Expected error for unapplied required fixup")
	}
	if schemaguard.ExitCodeForError(err) != schemaguard.ExitFixupNotApplied {
		t.Errorf("Expected exit code %d, got %d for: %v",
			schemaguard.ExitFixupNotApplied, schemaguard.ExitCodeForError(err), err)
	}
}

func TestRunExport_MetadataFlagWithoutConfig(t *testing.T) {
	resetExportFlags()
	projectDir := writeTestProject(t, `metadata: schema`)

	// Point at a bare directory; metadata comes from the flag.
	bareDir := t.TempDir()
	exportFlags.metadata = filepath.Join(projectDir, "schema")

	if err := runExport(exportCmd, []string{bareDir}); err != nil {
		t.Fatalf("Expected no error with --metadata, got: %v", err)
	}
}

func TestRunExport_InvalidDialect(t *testing.T) {
	resetExportFlags()
	dir := writeTestProject(t, `
metadata: schema
dialect: oracle
`)

	err := runExport(exportCmd, []string{dir})
	if err == nil {
		t.Fatal("Expected error for unknown dialect")
	}
	if schemaguard.ExitCodeForError(err) != schemaguard.ExitConfigError {
		t.Errorf("Expected config error exit code, got %d for: %v", schemaguard.ExitCodeForError(err), err)
	}
}

func TestBuildExportConfig_PropertiesLayering(t *testing.T) {
	resetExportFlags()
	dir := writeTestProject(t, `
metadata: schema
charset: utf-8
properties:
  - overrides.env
`)
	props := "charset=latin1\ndrop=true\n"
	if err := os.WriteFile(filepath.Join(dir, "overrides.env"), []byte(props), 0o644); err != nil {
		t.Fatal(err)
	}
	exportFlags.props = []string{"charset=us-ascii"}

	cfg, err := buildExportConfig(exportCmd, dir, false)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if cfg.Charset != "us-ascii" {
		t.Errorf("Expected --prop to win over properties file, got charset %q", cfg.Charset)
	}
	if !cfg.Drop {
		t.Error("Expected drop=true from properties file")
	}
}

func TestBuildExportConfig_UnknownProperty(t *testing.T) {
	resetExportFlags()
	dir := writeTestProject(t, `metadata: schema`)
	exportFlags.props = []string{"timeout=30"}

	_, err := buildExportConfig(exportCmd, dir, false)
	if err == nil {
		t.Fatal("Expected error for unknown property")
	}
	if !errors.Is(err, schemaguard.ErrInvalidConfig) {
		t.Errorf("Expected invalid config error, got: %v", err)
	}
}

func TestVerifyCmd_ArgsValidation(t *testing.T) {
	if err := verifyCmd.Args(verifyCmd, []string{"only-one"}); err == nil {
		t.Fatal("Expected error for missing baseline arg")
	}
}

func TestRunVerify_Match(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.sql")
	b := filepath.Join(dir, "b.sql")
	for _, p := range []string{a, b} {
		if err := os.WriteFile(p, []byte("create table t (id bigint);\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	if err := runVerify(verifyCmd, []string{a, b}); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
}

func TestRunVerify_MissingBaseline(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.sql")
	if err := os.WriteFile(a, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := runVerify(verifyCmd, []string{a, filepath.Join(dir, "missing.sql")})
	if err == nil {
		t.Fatal("Expected error for missing baseline")
	}
	if schemaguard.ExitCodeForError(err) != schemaguard.ExitBaselineMissing {
		t.Errorf("Expected exit code %d, got %d", schemaguard.ExitBaselineMissing, schemaguard.ExitCodeForError(err))
	}
}

func TestRunFixup_AppliesRules(t *testing.T) {
	dir := writeTestProject(t, `
metadata: schema
fixups:
  - pattern: "INTEGER"
    replacement: "INT"
`)
	artifact := filepath.Join(dir, "schema.sql")
	if err := os.WriteFile(artifact, []byte("create table t (id INTEGER);\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	fixupProjectPath = dir
	if err := runFixup(fixupCmd, []string{artifact}); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	out, err := os.ReadFile(artifact)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "id INT)") {
		t.Errorf("Expected fixup applied, got: %s", out)
	}
}

func TestRunFixup_NoFixupsConfigured(t *testing.T) {
	dir := writeTestProject(t, `metadata: schema`)
	fixupProjectPath = dir

	// No artifact needed: an empty rule set never opens the file.
	if err := runFixup(fixupCmd, []string{filepath.Join(dir, "absent.sql")}); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
}
