// Package reference holds the clinical background shown alongside each
// question: what the sign means physiologically, how to read it on the
// trace and where the evidence comes from.
package reference

import (
	"bytes"
	_ "embed"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/ctgdx/internal/catalog"
)

//go:embed data/reference.yaml
var referenceYAML []byte

// Physiology names the organ a question probes and its normal sign.
type Physiology struct {
	Icon  string `yaml:"icon"`
	Organ string `yaml:"organ"`
	Sign  string `yaml:"sign"`
}

// Section is one block of reference text. Any field may be empty.
type Section struct {
	Heading string   `yaml:"heading"`
	Text    string   `yaml:"text"`
	Bullets []string `yaml:"bullets"`
}

// Entry is the reference material for one question.
type Entry struct {
	Title      string     `yaml:"title"`
	Physiology Physiology `yaml:"physiology"`
	Sections   []Section  `yaml:"sections"`
	Figures    []string   `yaml:"figures"`
	References []string   `yaml:"references"`
}

// OverviewRow maps an organ to the sign that shows it is coping.
type OverviewRow struct {
	Icon  string `yaml:"icon"`
	Organ string `yaml:"organ"`
	Sign  string `yaml:"sign"`
}

// Intro is the material shown before an assessment starts.
type Intro struct {
	Title    string        `yaml:"title"`
	Headline string        `yaml:"headline"`
	Lines    []string      `yaml:"intro"`
	Overview []OverviewRow `yaml:"overview"`
	Citation string        `yaml:"citation"`
}

type document struct {
	Intro     `yaml:",inline"`
	Questions map[catalog.QuestionID]Entry `yaml:"questions"`
}

var doc document

func init() {
	dec := yaml.NewDecoder(bytes.NewReader(referenceYAML))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		panic(fmt.Sprintf("reference: embedded data is invalid: %v", err))
	}
}

// For returns the reference entry for a question.
func For(id catalog.QuestionID) (Entry, bool) {
	e, ok := doc.Questions[id]
	return e, ok
}

// Overview returns the introduction: headline, intro lines, the
// organ/sign table and the source citation.
func Overview() Intro {
	in := doc.Intro
	in.Lines = slices.Clone(in.Lines)
	in.Overview = slices.Clone(in.Overview)
	return in
}
