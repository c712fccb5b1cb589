package linkprep

import (
	"github.com/hupe1980/linkprep/disjunct"
	"github.com/hupe1980/linkprep/expr"
)

// WordExpression is one dictionary entry of a sentence word.
type WordExpression struct {
	// String is the dictionary word the expression belongs to. In generation
	// mode a leading space marks a hexadecimal category number.
	String string

	// Expr is read, never modified.
	Expr expr.Node

	// Words is the set of input words the entry originates from. Nil means
	// just the word's own index.
	Words *disjunct.WordSet
}

// Word is one position of a sentence with its alternative expressions.
type Word struct {
	Expressions []WordExpression
}

// Sentence is the input of a preparation.
type Sentence struct {
	Words []Word
}

// NewSentence creates a sentence from its words.
func NewSentence(words ...Word) *Sentence {
	return &Sentence{Words: words}
}

// NewWord creates a word with a single expression.
func NewWord(str string, e expr.Node) Word {
	return Word{Expressions: []WordExpression{{String: str, Expr: e}}}
}

// Len returns the number of words.
func (s *Sentence) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Words)
}
