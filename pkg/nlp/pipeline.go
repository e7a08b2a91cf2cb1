// Package nlp provides the natural-language pipeline used by the scoring
// engine: sentence segmentation, part-of-speech tagging, noun keyword
// extraction, and passive-voice detection.
package nlp

import (
	"strings"
	"unicode"

	"github.com/jdkato/prose/v2"
	"github.com/kljensen/snowball"
	"github.com/pkg/errors"
)

// KeywordSet maps a stemmed keyword to the surface form it was first seen
// as. Set operations run on the stems; the surface forms are what callers
// show to users.
type KeywordSet map[string]string

// beForms are the conjugations of the copula "be" that open a passive
// construction.
//
//nolint:gochecknoglobals // Grammar vocabulary constants
var beForms = map[string]bool{
	"am": true, "is": true, "are": true,
	"was": true, "were": true,
	"be": true, "been": true, "being": true,
}

// nounTags are the Penn Treebank tags treated as keyword candidates.
//
//nolint:gochecknoglobals // Grammar vocabulary constants
var nounTags = map[string]bool{
	"NN": true, "NNS": true, "NNP": true, "NNPS": true,
}

// Pipeline is the language toolchain handle. It is immutable after
// construction and safe to share across concurrent callers.
type Pipeline struct{}

// NewPipeline constructs the language pipeline. Construct once at process
// start and pass it into the evaluator and analyzer.
func NewPipeline() (pipeline *Pipeline, err error) {
	pipeline = &Pipeline{}
	return pipeline, err
}

// Sentences segments text into sentences.
func (p *Pipeline) Sentences(text string) (sentences []string, err error) {
	if strings.TrimSpace(text) == "" {
		return sentences, err
	}

	var doc *prose.Document
	doc, err = prose.NewDocument(text, prose.WithExtraction(false), prose.WithTagging(false))
	if err != nil {
		err = errors.Wrap(err, "failed to segment text")
		return sentences, err
	}

	for _, sentence := range doc.Sentences() {
		sentences = append(sentences, sentence.Text)
	}

	return sentences, err
}

// PassiveSentences counts sentences containing a passive construction: a
// form of "be" immediately followed by a past-participle token.
func (p *Pipeline) PassiveSentences(text string) (passive, total int, err error) {
	var sentences []string
	sentences, err = p.Sentences(text)
	if err != nil {
		return passive, total, err
	}

	for _, sentence := range sentences {
		total++

		var doc *prose.Document
		doc, err = prose.NewDocument(sentence, prose.WithExtraction(false), prose.WithSegmentation(false))
		if err != nil {
			err = errors.Wrap(err, "failed to tag sentence")
			return passive, total, err
		}

		tokens := doc.Tokens()
		for i := 0; i < len(tokens)-1; i++ {
			if beForms[strings.ToLower(tokens[i].Text)] && tokens[i+1].Tag == "VBN" {
				passive++
				break
			}
		}
	}

	return passive, total, err
}

// Keywords extracts noun keywords from text: individual nouns and proper
// nouns (stemmed, standing in for lemmatization) plus multi-word noun
// chunks.
func (p *Pipeline) Keywords(text string) (keywords KeywordSet, err error) {
	keywords = KeywordSet{}
	if strings.TrimSpace(text) == "" {
		return keywords, err
	}

	var doc *prose.Document
	doc, err = prose.NewDocument(strings.ToLower(text), prose.WithExtraction(false))
	if err != nil {
		err = errors.Wrap(err, "failed to tag text")
		return keywords, err
	}

	tokens := doc.Tokens()

	for _, token := range tokens {
		if !nounTags[token.Tag] || !isWordLike(token.Text) {
			continue
		}
		stem := stemOf(token.Text)
		if _, seen := keywords[stem]; !seen {
			keywords[stem] = token.Text
		}
	}

	addNounChunks(tokens, keywords)

	return keywords, err
}

// addNounChunks collects contiguous adjective/noun runs ending in a noun,
// approximating the noun chunks the scoring heuristics expect.
func addNounChunks(tokens []prose.Token, keywords KeywordSet) {
	var run []string
	endsInNoun := false

	flush := func() {
		if len(run) >= 2 && endsInNoun {
			chunk := strings.Join(run, " ")
			if _, seen := keywords[chunk]; !seen {
				keywords[chunk] = chunk
			}
		}
		run = nil
		endsInNoun = false
	}

	for _, token := range tokens {
		chunkable := (nounTags[token.Tag] || strings.HasPrefix(token.Tag, "JJ")) && isWordLike(token.Text)
		if !chunkable {
			flush()
			continue
		}
		run = append(run, token.Text)
		endsInNoun = nounTags[token.Tag]
	}
	flush()
}

// stemOf stems a word, falling back to the word itself when the stemmer
// rejects it.
func stemOf(word string) (stem string) {
	stem, err := snowball.Stem(word, "english", true)
	if err != nil || stem == "" {
		stem = word
	}
	return stem
}

// isWordLike filters out punctuation and symbol tokens.
func isWordLike(text string) (ok bool) {
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			ok = true
			return ok
		}
	}
	return ok
}

// Intersect returns the stems present in both sets.
func (k KeywordSet) Intersect(other KeywordSet) (common []string) {
	for stem := range k {
		if _, found := other[stem]; found {
			common = append(common, stem)
		}
	}
	return common
}

// Subtract returns the surface forms of stems in k that are absent from
// other.
func (k KeywordSet) Subtract(other KeywordSet) (missing []string) {
	for stem, surface := range k {
		if _, found := other[stem]; !found {
			missing = append(missing, surface)
		}
	}
	return missing
}
