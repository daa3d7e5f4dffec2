// Package tokenizer splits raw text into sentences and normalized words for a single
// configured language.
//
// Sentence boundaries come from a Punkt model (github.com/neurosnap/sentences), which
// handles abbreviations, initials and decimal numbers. The model is loaded once per
// process by Init; every constructor calls Init, so callers only need to invoke it
// explicitly when they want to fail fast at startup.
package tokenizer

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"
	"unicode"

	"github.com/clipperhouse/uax29/v2/words"
	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/data"
	"github.com/neurosnap/sentences/english"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultLanguage is the language used when none is configured.
const DefaultLanguage = "english"

// extraAbbreviations are added to the bundled english model, which otherwise
// ends a sentence after "et al." and "e.g.".
var extraAbbreviations = []string{"e.g", "al", "i.e"}

// supportedLanguages maps configuration names to language tags.
// Only languages with a bundled Punkt model belong here.
var supportedLanguages = map[string]language.Tag{
	"english": language.English,
}

var (
	initOnce sync.Once
	initErr  error
	punkt    *sentences.DefaultSentenceTokenizer
	ready    atomic.Bool
)

// Init loads the Punkt sentence model. It is idempotent: the model is loaded on the
// first call and later calls return the same result without doing any work.
func Init() error {
	initOnce.Do(func() {
		start := time.Now()
		raw, err := data.Asset("data/english.json")
		if err != nil {
			initErr = fmt.Errorf("read punkt model: %w", err)
			return
		}
		training, err := sentences.LoadTraining(raw)
		if err != nil {
			initErr = fmt.Errorf("parse punkt model: %w", err)
			return
		}
		for _, abbr := range extraAbbreviations {
			training.AbbrevTypes.Add(abbr)
		}
		t, err := english.NewSentenceTokenizer(training)
		if err != nil {
			initErr = fmt.Errorf("load punkt model: %w", err)
			return
		}
		punkt = t
		ready.Store(true)
		slog.Info("sentence tokenizer loaded",
			slog.String("language", DefaultLanguage),
			slog.Duration("duration", time.Since(start)))
	})
	return initErr
}

// Ready reports whether the sentence model has been loaded.
func Ready() bool {
	return ready.Load()
}

// SupportedLanguages returns the configuration names accepted by New.
func SupportedLanguages() []string {
	names := make([]string, 0, len(supportedLanguages))
	for name := range supportedLanguages {
		names = append(names, name)
	}
	return names
}

// ValidateLanguage returns an error if lang has no bundled model.
func ValidateLanguage(lang string) error {
	if _, ok := supportedLanguages[strings.ToLower(lang)]; !ok {
		return fmt.Errorf("unsupported language %q: must be one of %v", lang, SupportedLanguages())
	}
	return nil
}

// Tokenizer splits text for one language. It is immutable and safe for concurrent use.
type Tokenizer struct {
	name string
	tag  language.Tag
}

// New returns a Tokenizer for the named language, loading the sentence model if needed.
func New(lang string) (*Tokenizer, error) {
	if lang == "" {
		lang = DefaultLanguage
	}
	lang = strings.ToLower(lang)
	if err := ValidateLanguage(lang); err != nil {
		return nil, err
	}
	if err := Init(); err != nil {
		return nil, err
	}
	return &Tokenizer{name: lang, tag: supportedLanguages[lang]}, nil
}

// Language returns the configured language name.
func (t *Tokenizer) Language() string {
	return t.name
}

// Sentences splits text into trimmed, non-empty sentences in document order.
func (t *Tokenizer) Sentences(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	tokens := punkt.Tokenize(text)
	out := make([]string, 0, len(tokens))
	for _, s := range tokens {
		trimmed := strings.TrimSpace(s.Text)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Words returns the lower-cased words of a sentence. Punctuation, numbers and
// tokens that do not start with a letter are dropped. Hyphenated compounds stay
// whole and contractions are split the way the Penn Treebank does it: "don't"
// becomes "do" and "n't", while "John's" keeps only "john".
func (t *Tokenizer) Words(sentence string) []string {
	// A Caser keeps state between calls, so each call gets its own.
	lower := cases.Lower(t.tag)

	var out []string
	for _, token := range segment(sentence) {
		for _, part := range splitContraction(token) {
			if isWord(part) {
				out = append(out, lower.String(part))
			}
		}
	}
	return out
}

// segment splits s into Unicode words and punctuation, dropping whitespace.
// Runs such as "state-of-the-art" are rejoined since the segmenter breaks at
// every hyphen.
func segment(s string) []string {
	var segs []string
	iter := words.FromString(s)
	for iter.Next() {
		segs = append(segs, iter.Value())
	}

	out := make([]string, 0, len(segs))
	for i := 0; i < len(segs); i++ {
		seg := segs[i]
		if seg == "-" && len(out) > 0 && i > 0 && i+1 < len(segs) &&
			startsAlnum(segs[i-1]) && startsAlnum(segs[i+1]) {
			out[len(out)-1] += "-" + segs[i+1]
			i++
			continue
		}
		if strings.TrimSpace(seg) == "" {
			continue
		}
		out = append(out, seg)
	}
	return out
}

func startsAlnum(s string) bool {
	for _, r := range s {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}
	return false
}

// clitics are the contraction suffixes split off a word, longest match first.
var clitics = []string{"n't", "'ll", "'re", "'ve", "'s", "'d", "'m"}

// fusedWords are written as one word but tokenized as two, split at the offset.
var fusedWords = map[string]int{
	"cannot": 3,
	"gimme":  3,
	"gonna":  3,
	"gotta":  3,
	"lemme":  3,
	"wanna":  3,
}

// splitContraction splits a clitic or fused word into its parts. Other tokens
// are returned unchanged.
func splitContraction(token string) []string {
	if at, ok := fusedWords[strings.ToLower(token)]; ok {
		return []string{token[:at], token[at:]}
	}
	for _, c := range clitics {
		cut := len(token) - len(c)
		if cut > 0 && strings.EqualFold(token[cut:], c) {
			return []string{token[:cut], token[cut:]}
		}
	}
	return []string{token}
}

// isWord reports whether token is a letter followed by letters, marks, apostrophes or hyphens.
func isWord(token string) bool {
	for i, r := range token {
		if i == 0 {
			if !unicode.IsLetter(r) {
				return false
			}
			continue
		}
		if unicode.IsLetter(r) || unicode.IsMark(r) || r == '\'' || r == '’' || r == '-' {
			continue
		}
		return false
	}
	return token != ""
}
