package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/ArmisSecurity/beautify-cli/internal/beautify"
	"github.com/ArmisSecurity/beautify-cli/internal/cli"
	"github.com/ArmisSecurity/beautify-cli/internal/model"
)

func sampleResult() *model.Result {
	return model.NewResult("fields.txt", false, []model.Label{
		{Input: "first_name", Label: "First Name", Mode: beautify.ModeUnderscore, Line: 1},
		{Input: "camelCase", Label: "Camel Case", Mode: beautify.ModeCamel, Line: 2},
		{Input: "_name", Label: " Name", Mode: beautify.ModeUnderscore, Line: 3},
		{Input: "", Error: "invalid argument: empty identifier", Line: 4},
	})
}

func noColor(t *testing.T) {
	t.Helper()
	cli.InitColors(cli.ColorModeNever)
	SyncStylesWithColorMode()
}

func TestGetFormatter(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		wantErr  bool
		wantType interface{}
	}{
		{name: "human formatter", format: "human", wantType: &HumanFormatter{}},
		{name: "plain formatter", format: "plain", wantType: &PlainFormatter{}},
		{name: "json formatter", format: "json", wantType: &JSONFormatter{}},
		{name: "csv formatter", format: "csv", wantType: &CSVFormatter{}},
		{name: "junit formatter", format: "junit", wantType: &JUnitFormatter{}},
		{name: "case insensitive", format: "JSON", wantType: &JSONFormatter{}},
		{name: "unsupported formatter", format: "xml", wantErr: true},
		{name: "empty format", format: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter, err := GetFormatter(tt.format)
			if tt.wantErr {
				if err == nil {
					t.Errorf("GetFormatter(%q) expected error, got nil", tt.format)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetFormatter(%q) unexpected error: %v", tt.format, err)
			}
			if got, want := typeName(formatter), typeName(tt.wantType); got != want {
				t.Errorf("GetFormatter(%q) = %s, want %s", tt.format, got, want)
			}
		})
	}
}

func typeName(v interface{}) string {
	switch v.(type) {
	case *HumanFormatter:
		return "human"
	case *PlainFormatter:
		return "plain"
	case *JSONFormatter:
		return "json"
	case *CSVFormatter:
		return "csv"
	case *JUnitFormatter:
		return "junit"
	default:
		return "unknown"
	}
}

func TestShouldFail(t *testing.T) {
	if !ShouldFail(sampleResult()) {
		t.Error("Expected ShouldFail to be true when an identifier failed")
	}
	ok := model.NewResult("args", false, []model.Label{{Input: "a", Label: "A", Mode: beautify.ModeCamel}})
	if ShouldFail(ok) {
		t.Error("Expected ShouldFail to be false when nothing failed")
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONFormatter{}).Format(sampleResult(), &buf); err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	var decoded model.Result
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Failed to decode JSON output: %v", err)
	}
	if decoded.Source != "fields.txt" {
		t.Errorf("Expected source fields.txt, got %q", decoded.Source)
	}
	if len(decoded.Labels) != 4 {
		t.Fatalf("Expected 4 labels, got %d", len(decoded.Labels))
	}
	if decoded.Summary.Failed != 1 {
		t.Errorf("Expected 1 failed, got %d", decoded.Summary.Failed)
	}
	if !strings.Contains(buf.String(), "\n  \"source\"") {
		t.Error("Expected indented JSON output")
	}
}

func TestPlainFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&PlainFormatter{}).Format(sampleResult(), &buf); err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	want := "First Name\nCamel Case\n Name\n\n"
	if buf.String() != want {
		t.Errorf("PlainFormatter output = %q, want %q", buf.String(), want)
	}
}

func TestCSVFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&CSVFormatter{}).Format(sampleResult(), &buf); err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse CSV output: %v", err)
	}
	if len(records) != 5 {
		t.Fatalf("Expected header + 4 rows, got %d", len(records))
	}
	if strings.Join(records[0], ",") != "input,label,mode,line,error" {
		t.Errorf("Unexpected header: %v", records[0])
	}
	if records[1][1] != "First Name" || records[1][2] != "underscore" || records[1][3] != "1" {
		t.Errorf("Unexpected first row: %v", records[1])
	}
	if records[3][1] != " Name" {
		t.Errorf("Expected leading space preserved, got %q", records[3][1])
	}
	if records[4][4] == "" {
		t.Error("Expected error column for failed row")
	}
}

func TestJUnitFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JUnitFormatter{}).Format(sampleResult(), &buf); err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "<?xml version") {
		t.Error("Expected XML header")
	}

	var suites junitTestSuites
	if err := xml.Unmarshal(buf.Bytes(), &suites); err != nil {
		t.Fatalf("Failed to decode JUnit XML: %v", err)
	}
	if len(suites.Suites) != 1 {
		t.Fatalf("Expected 1 test suite, got %d", len(suites.Suites))
	}

	suite := suites.Suites[0]
	if suite.Tests != 4 {
		t.Errorf("Expected 4 tests, got %d", suite.Tests)
	}
	if suite.Failures != 1 {
		t.Errorf("Expected 1 failure, got %d", suite.Failures)
	}
	if suite.Cases[0].Classname != "underscore" || suite.Cases[0].SystemOut != "First Name" {
		t.Errorf("Unexpected first case: %+v", suite.Cases[0])
	}
	failed := suite.Cases[3]
	if failed.Failure == nil {
		t.Fatal("Expected failure element for invalid identifier")
	}
	if failed.Classname != "invalid" {
		t.Errorf("Expected classname invalid, got %q", failed.Classname)
	}
	if !strings.Contains(failed.Failure.Content, "entry 4") {
		t.Errorf("Expected location in failure content, got %q", failed.Failure.Content)
	}
}

func TestHumanFormatter(t *testing.T) {
	noColor(t)

	var buf bytes.Buffer
	if err := (&HumanFormatter{Width: 60}).Format(sampleResult(), &buf); err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"BEAUTIFY RESULTS",
		"Source: fields.txt",
		"Rules:  corrected",
		"   1  first_name  →  First Name  underscore",
		"   2  camelCase   →  Camel Case  camel",
		`   3  _name       →  " Name"  underscore`,
		"   4  <empty>     ✗  invalid argument: empty identifier",
		"4 identifiers · 2 underscore · 1 camel · 1 failed",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Error("Expected no ANSI codes with colors disabled")
	}
}

func TestHumanFormatter_Empty(t *testing.T) {
	noColor(t)

	var buf bytes.Buffer
	if err := (&HumanFormatter{Width: 60}).Format(model.NewResult("stdin", true, nil), &buf); err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No identifiers found.") {
		t.Errorf("Expected empty notice, got:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "legacy (compat)") {
		t.Errorf("Expected compat rules name, got:\n%s", buf.String())
	}
}

func TestInputColumnWidth_Truncates(t *testing.T) {
	labels := []model.Label{{Input: strings.Repeat("x", 100)}}
	if got := inputColumnWidth(labels, 60); got != 20 {
		t.Errorf("inputColumnWidth() = %d, want 20", got)
	}
	if got := inputColumnWidth([]model.Label{{Input: "ab"}}, 60); got != 2 {
		t.Errorf("inputColumnWidth() = %d, want 2", got)
	}
	if got := inputColumnWidth(labels, 9); got != minInputCols {
		t.Errorf("inputColumnWidth() = %d, want %d", got, minInputCols)
	}
}

func TestGetModeStyle(t *testing.T) {
	noColor(t)
	s := DefaultStyles()
	for _, mode := range []beautify.Mode{beautify.ModeUnderscore, beautify.ModeCamel, ""} {
		if rendered := s.GetModeStyle(mode).Render("x"); !strings.Contains(rendered, "x") {
			t.Errorf("GetModeStyle(%q) rendered %q", mode, rendered)
		}
	}
}

func TestTerminalWidth(t *testing.T) {
	// Tests run without a TTY on stdout
	w := TerminalWidth()
	if w < MinBoxWidth || w > MaxBoxWidth {
		t.Errorf("TerminalWidth() = %d, want within [%d, %d]", w, MinBoxWidth, MaxBoxWidth)
	}
}

func TestHighlightJSON_NoColor(t *testing.T) {
	noColor(t)

	src := "{\n  \"label\": \"First Name\"\n}\n"
	if got := HighlightJSON(src); got != src {
		t.Errorf("HighlightJSON() with colors disabled = %q, want input unchanged", got)
	}
	if GetChromaStyle() != nil {
		t.Error("Expected nil chroma style with colors disabled")
	}
}

func TestHighlightJSON_Forced(t *testing.T) {
	cli.InitColors(cli.ColorModeAlways)
	SyncStylesWithColorMode()
	t.Cleanup(func() { noColor(t) })

	src := "{\n  \"label\": \"First Name\"\n}\n"
	got := HighlightJSON(src)
	if !strings.Contains(got, "\033[") {
		t.Errorf("Expected ANSI codes in highlighted JSON, got %q", got)
	}
	if !strings.Contains(got, "First Name") {
		t.Errorf("Expected highlighted JSON to keep values, got %q", got)
	}
}

func TestJSONFormatter_Highlight(t *testing.T) {
	cli.InitColors(cli.ColorModeAlways)
	SyncStylesWithColorMode()
	t.Cleanup(func() { noColor(t) })

	formatter, err := GetFormatter("json")
	if err != nil {
		t.Fatalf("GetFormatter(json) unexpected error: %v", err)
	}
	if !formatter.(*JSONFormatter).Highlight {
		t.Error("Expected highlighting with --color=always")
	}

	var buf bytes.Buffer
	if err := formatter.Format(sampleResult(), &buf); err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if !strings.Contains(buf.String(), "\033[") {
		t.Error("Expected ANSI codes in highlighted output")
	}
}
