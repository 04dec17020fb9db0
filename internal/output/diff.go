package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"
)

// DiffInput is one side of a YAML diff.
type DiffInput struct {
	// Name labels the side in the report (a path, "base", ...).
	Name string
	// YAML is the document content.
	YAML []byte
}

// DiffYAML computes a YAML-aware diff with dyff. It returns an empty string
// when the documents are semantically equal; key order is not a change.
func DiffYAML(from, to DiffInput, useColor bool) (string, error) {
	if len(bytes.TrimSpace(from.YAML)) == 0 && len(bytes.TrimSpace(to.YAML)) == 0 {
		return "", nil
	}

	fromInput, err := parseYAMLInput(from)
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", from.Name, err)
	}

	toInput, err := parseYAMLInput(to)
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", to.Name, err)
	}

	report, err := dyff.CompareInputFiles(fromInput, toInput)
	if err != nil {
		return "", fmt.Errorf("comparing documents: %w", err)
	}

	if len(report.Diffs) == 0 {
		return "", nil
	}

	return renderDyffReport(report, useColor)
}

// parseYAMLInput parses YAML bytes into a dyff input file.
func parseYAMLInput(in DiffInput) (ytbx.InputFile, error) {
	data := bytes.TrimSpace(in.YAML)
	if len(data) == 0 {
		return ytbx.InputFile{Location: in.Name}, nil
	}

	docs, err := ytbx.LoadYAMLDocuments(data)
	if err != nil {
		return ytbx.InputFile{}, err
	}

	return ytbx.InputFile{
		Location:  in.Name,
		Documents: docs,
	}, nil
}

// renderDyffReport renders a dyff report to a string with trailing
// whitespace stripped from every line.
func renderDyffReport(report dyff.Report, useColor bool) (string, error) {
	var buf bytes.Buffer

	reportWriter := &dyff.HumanReport{
		Report:            report,
		DoNotInspectCerts: true,
		NoTableStyle:      !useColor,
		OmitHeader:        true,
	}

	if err := reportWriter.WriteReport(&buf); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	lines := strings.Split(buf.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}
