package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/linkprep"
	"github.com/hupe1980/linkprep/expr"
)

// Fixture is the YAML form of a sentence:
//
//	words:
//	  - string: John
//	    expr: "S+"
//	  - string: saw
//	    expr: "S- & {O+}"
//	    alternatives:
//	      - string: saw.n
//	        expr: "{D-} & {S+}"
//	  - string: Mary
//	    expr: "O-"
type Fixture struct {
	Words []FixtureWord `yaml:"words"`
}

// FixtureWord is one sentence position. Expr is the first alternative.
type FixtureWord struct {
	String       string               `yaml:"string"`
	Expr         string               `yaml:"expr"`
	Alternatives []FixtureAlternative `yaml:"alternatives"`
}

// FixtureAlternative is an additional dictionary entry of a word.
type FixtureAlternative struct {
	String string `yaml:"string"`
	Expr   string `yaml:"expr"`
}

// LoadFixture reads a fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseFixture(data)
}

// ParseFixture decodes a YAML fixture.
func ParseFixture(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	if len(f.Words) == 0 {
		return nil, fmt.Errorf("parse fixture: %w", linkprep.ErrEmptySentence)
	}
	return &f, nil
}

// Sentence parses the fixture's expressions, interning connector names in
// descs.
func (f *Fixture) Sentence(descs *expr.DescTable) (*linkprep.Sentence, error) {
	words := make([]linkprep.Word, len(f.Words))
	for i, fw := range f.Words {
		entries := append([]FixtureAlternative{{String: fw.String, Expr: fw.Expr}}, fw.Alternatives...)
		for _, alt := range entries {
			if alt.Expr == "" {
				continue
			}
			e, err := expr.Parse(descs, alt.Expr)
			if err != nil {
				return nil, fmt.Errorf("word %d (%s): %w", i, alt.String, err)
			}
			words[i].Expressions = append(words[i].Expressions, linkprep.WordExpression{
				String: alt.String,
				Expr:   e,
			})
		}
		if len(words[i].Expressions) == 0 {
			return nil, fmt.Errorf("word %d (%s): no expression", i, fw.String)
		}
	}
	return linkprep.NewSentence(words...), nil
}
