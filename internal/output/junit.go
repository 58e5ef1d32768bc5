package output

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/ArmisSecurity/beautify-cli/internal/model"
)

// JUnitFormatter formats results as JUnit XML. Each identifier is a test case
// and identifiers that could not be beautified are failures.
type JUnitFormatter struct{}

type junitTestSuites struct {
	XMLName xml.Name         `xml:"testsuites"`
	Suites  []junitTestSuite `xml:"testsuite"`
}

type junitTestSuite struct {
	Name     string          `xml:"name,attr"`
	Tests    int             `xml:"tests,attr"`
	Failures int             `xml:"failures,attr"`
	Errors   int             `xml:"errors,attr"`
	Time     string          `xml:"time,attr"`
	Cases    []junitTestCase `xml:"testcase"`
}

type junitTestCase struct {
	Name      string        `xml:"name,attr"`
	Classname string        `xml:"classname,attr"`
	Time      string        `xml:"time,attr"`
	SystemOut string        `xml:"system-out,omitempty"`
	Failure   *junitFailure `xml:"failure,omitempty"`
}

type junitFailure struct {
	Message string `xml:"message,attr"`
	Type    string `xml:"type,attr"`
	Content string `xml:",chardata"`
}

// Format formats the result as JUnit XML.
func (f *JUnitFormatter) Format(result *model.Result, w io.Writer) error {
	suites := junitTestSuites{
		Suites: []junitTestSuite{
			{
				Name:     "Beautify " + result.Source,
				Tests:    result.Summary.Total,
				Failures: result.Summary.Failed,
				Errors:   0,
				Time:     "0",
				Cases:    convertToJUnitCases(result.Labels),
			},
		},
	}

	if _, err := w.Write([]byte(xml.Header)); err != nil {
		return err
	}

	encoder := xml.NewEncoder(w)
	encoder.Indent("", "  ")
	if err := encoder.Encode(suites); err != nil {
		return err
	}
	_, err := w.Write([]byte("\n"))
	return err
}

func convertToJUnitCases(labels []model.Label) []junitTestCase {
	cases := make([]junitTestCase, 0, len(labels))

	for _, l := range labels {
		classname := string(l.Mode)
		if classname == "" {
			classname = "invalid"
		}
		testCase := junitTestCase{
			Name:      l.Input,
			Classname: classname,
			Time:      "0",
		}

		if l.Failed() {
			location := "unknown"
			if l.Line > 0 {
				location = fmt.Sprintf("entry %d", l.Line)
			}
			testCase.Failure = &junitFailure{
				Message: l.Error,
				Type:    "InvalidArgument",
				Content: fmt.Sprintf("%s\nLocation: %s", l.Error, location),
			}
		} else {
			testCase.SystemOut = l.Label
		}

		cases = append(cases, testCase)
	}

	return cases
}
