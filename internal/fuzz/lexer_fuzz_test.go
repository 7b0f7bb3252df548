package fuzztests

import (
	"testing"

	"fanc/internal/diag"
	"fanc/internal/lexer"
	"fanc/internal/source"
	"fanc/internal/token"
)

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampSeed(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.fanc", input))

		bag := diag.NewBag(64)
		lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
		toks := lx.All()
		if toks[len(toks)-1].Kind != token.EOF {
			t.Fatalf("token stream does not end with EOF")
		}
		var prevEnd uint32
		for _, tok := range toks {
			if tok.Span.Start < prevEnd || tok.Span.End < tok.Span.Start {
				t.Fatalf("token %s has span %v after %d", tok.Kind, tok.Span, prevEnd)
			}
			prevEnd = tok.Span.End
		}
		if lx.Err() != nil && !bag.HasErrors() {
			t.Fatalf("lexer error %q was not reported", lx.Err().Error())
		}
	})
}
