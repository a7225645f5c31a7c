// Package deps reports the availability of external binaries docsort can use.
package deps

import (
	"fmt"
	"os/exec"
	"strings"
)

// TesseractCommand is the OCR binary consulted for image text extraction.
const TesseractCommand = "tesseract"

// Requirement defines an external dependency docsort relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// DefaultRequirements lists the external binaries docsort can make use of.
// All of them are optional: a missing binary disables its backend rather than
// failing the run.
func DefaultRequirements() []Requirement {
	return []Requirement{
		{
			Name:        "Tesseract OCR",
			Command:     TesseractCommand,
			Description: "text extraction from image files",
			Optional:    true,
		},
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if _, err := exec.LookPath(cmd); err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}
