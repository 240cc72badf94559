// Package compliance checks Python source against the pep257
// documentation convention by delegating to the external pydocstyle
// tool and normalizing its report.
package compliance

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
)

// Violation is one reported deviation from the convention standard.
type Violation struct {
	// Line is the 1-based source line the violation refers to.
	Line int
	// Code is the short rule identifier (e.g. "D103").
	Code string
	// Message is the checker's human-readable description.
	Message string
}

// pydocstyleBin is the checker executable; a variable so tests can point
// it elsewhere.
var pydocstyleBin = "pydocstyle"

// Available reports whether the external checker is on PATH.
func Available() bool {
	_, err := exec.LookPath(pydocstyleBin)
	return err == nil
}

// Check writes source to a temporary file, runs the convention checker
// over it, and returns its violations in report order. Codes and
// messages are passed through unchanged. A checker failure that produced
// no violations (malformed input included) surfaces as an error.
func Check(source string) ([]Violation, error) {
	tmp, err := os.CreateTemp("", "pydocgen-*.py")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	path := tmp.Name()
	defer os.Remove(path)

	if _, err := tmp.WriteString(source); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("close temp file: %w", err)
	}

	cmd := exec.Command(pydocstyleBin, path)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	runErr := cmd.Run()

	violations := parseReport(stdout.Bytes())
	if runErr != nil {
		// pydocstyle exits 1 when it reports violations; that is not a
		// failure. Anything else (parse errors, bad invocation) is.
		if _, isExit := runErr.(*exec.ExitError); !isExit || len(violations) == 0 {
			msg := strings.TrimSpace(stderr.String())
			if msg == "" {
				msg = strings.TrimSpace(stdout.String())
			}
			return nil, fmt.Errorf("%s: %s: %w", pydocstyleBin, msg, runErr)
		}
	}
	return violations, nil
}

// reportHeaderRe matches the location line of a pydocstyle record:
// "/tmp/x.py:3 in public function `hello`:".
var reportHeaderRe = regexp.MustCompile(`^.+:(\d+) `)

// reportDetailRe matches the detail line: "        D103: Missing docstring ...".
var reportDetailRe = regexp.MustCompile(`^\s+(D\d+):\s*(.*)$`)

// parseReport converts pydocstyle's two-line record format into
// violations. Unrecognized lines are skipped.
func parseReport(output []byte) []Violation {
	var violations []Violation
	line := 0
	for _, raw := range strings.Split(string(output), "\n") {
		if m := reportHeaderRe.FindStringSubmatch(raw); m != nil {
			line, _ = strconv.Atoi(m[1])
			continue
		}
		if m := reportDetailRe.FindStringSubmatch(raw); m != nil && line > 0 {
			violations = append(violations, Violation{
				Line:    line,
				Code:    m[1],
				Message: strings.TrimSpace(m[2]),
			})
			line = 0
		}
	}
	return violations
}
