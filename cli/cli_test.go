package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	icl "gradegen/internal/cli"
)

func readFile(t *testing.T, path string) []byte {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return b
}

func runSession(t *testing.T, args []string, session string) (icl.RunResult, string, error) {
	t.Helper()
	var out strings.Builder
	res, err := icl.Run(args, strings.NewReader(session), &out)
	return res, out.String(), err
}

// TestRun_FullSession drives a complete session through the public
// entrypoint: two records entered, report printed, CSV written where the
// -output flag points.
func TestRun_FullSession(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "grades.csv")
	session := "Essay draft\nFA\n80\n20\ny\nFinal exam\nSA\n60\n80\nn\n"

	res, stdout, err := runSession(t, []string{"-output", outPath}, session)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.ExitCode != icl.ExitSuccess {
		t.Fatalf("ExitCode = %d, want %d", res.ExitCode, icl.ExitSuccess)
	}
	if res.OutputPath != outPath {
		t.Errorf("OutputPath = %q, want %q", res.OutputPath, outPath)
	}
	if res.Summary == nil || !res.Summary.Passed {
		t.Errorf("Summary = %+v, want a passing summary", res.Summary)
	}

	for _, line := range []string{
		"--- Grade Summary ---",
		"Final grade: 64.00",
		"GPA (5-point scale): 3.20",
		"Pass status: PASS",
		"Saved CSV to ",
	} {
		if !strings.Contains(stdout, line) {
			t.Errorf("stdout missing %q", line)
		}
	}

	want := "Assignment,Category,Grade,Weight\r\n" +
		"Essay draft,FA,80.00,20.00\r\n" +
		"Final exam,SA,60.00,80.00\r\n"
	if got := string(readFile(t, outPath)); got != want {
		t.Errorf("csv bytes:\n%q\nwant:\n%q", got, want)
	}
}

// TestRun_EmptySession verifies the degenerate case: no records entered
// means no summary, no file, and a successful exit after the notice.
func TestRun_EmptySession(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "grades.csv")

	res, stdout, err := runSession(t, []string{"-output", outPath}, "")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.ExitCode != icl.ExitSuccess {
		t.Errorf("ExitCode = %d, want %d", res.ExitCode, icl.ExitSuccess)
	}
	if res.Summary != nil {
		t.Errorf("Summary = %+v, want nil for an empty session", res.Summary)
	}
	if !strings.Contains(stdout, "No assignments were entered. Exiting.") {
		t.Errorf("stdout missing empty-session notice:\n%q", stdout)
	}
	if _, statErr := os.Stat(outPath); !os.IsNotExist(statErr) {
		t.Errorf("stat %s = %v, want not-exist (no file for an empty session)", outPath, statErr)
	}
}

// TestRun_InvalidFlag verifies the invalid-invocation exit code for an
// undefined flag.
func TestRun_InvalidFlag(t *testing.T) {
	res, _, err := runSession(t, []string{"--bogus"}, "")
	if err == nil {
		t.Fatal("Run succeeded, want error")
	}
	if res.ExitCode != icl.ExitInvalidInvocation {
		t.Errorf("ExitCode = %d, want %d", res.ExitCode, icl.ExitInvalidInvocation)
	}
}

// TestRun_ExportFailure verifies the export-failure exit code when the CSV
// destination directory does not exist. The literal number is asserted:
// wrapper scripts branch on 4, not on the constant's name.
func TestRun_ExportFailure(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "missing", "grades.csv")
	session := "HW1\nFA\n80\n20\nn\n"

	res, _, err := runSession(t, []string{"-output", outPath}, session)
	if err == nil {
		t.Fatal("Run succeeded, want error")
	}
	if res.ExitCode != 4 {
		t.Errorf("ExitCode = %d, want 4 (export failure)", res.ExitCode)
	}
	if res.ExitCode != icl.ExitExportFailure {
		t.Errorf("ExitCode = %d, want ExitExportFailure (%d)", res.ExitCode, icl.ExitExportFailure)
	}
}

// TestRun_EnvironmentOutput verifies that the GRADEGEN_OUTPUT variable
// selects the destination when no flag is given.
func TestRun_EnvironmentOutput(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "env-grades.csv")
	t.Setenv("GRADEGEN_OUTPUT", outPath)

	res, _, err := runSession(t, nil, "HW1\nFA\n80\n20\nn\n")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.OutputPath != outPath {
		t.Errorf("OutputPath = %q, want %q", res.OutputPath, outPath)
	}
	if _, statErr := os.Stat(outPath); statErr != nil {
		t.Errorf("stat %s: %v", outPath, statErr)
	}
}

// TestRun_IdenticalSessionsIdenticalArtifacts verifies that two runs over
// the same scripted session produce byte-identical CSV files.
func TestRun_IdenticalSessionsIdenticalArtifacts(t *testing.T) {
	session := "Quiz 1\nFA\n42.5\n12.5\ny\nMidterm\nSA\n77.7\n50\nn\n"
	dir := t.TempDir()
	first := filepath.Join(dir, "first.csv")
	second := filepath.Join(dir, "second.csv")

	if _, _, err := runSession(t, []string{"-output", first}, session); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if _, _, err := runSession(t, []string{"-output", second}, session); err != nil {
		t.Fatalf("second run: %v", err)
	}

	if !bytes.Equal(readFile(t, first), readFile(t, second)) {
		t.Error("identical sessions produced different artifacts")
	}
}
