package fuzztests

import (
	"path/filepath"
	"testing"

	"fanc/internal/testkit"
)

const maxSeedBytes = 64 << 10

// addCorpusSeeds feeds every program of the Markdown test corpus, plus a
// few hand-picked edge cases.
func addCorpusSeeds(f *testing.F) {
	files, _ := filepath.Glob(filepath.Join("..", "testkit", "testdata", "*.md"))
	for _, path := range files {
		cases, err := testkit.LoadCases(path)
		if err != nil {
			continue
		}
		for _, c := range cases {
			f.Add(clampSeed([]byte(c.Input)))
		}
	}
	f.Add([]byte{})
	f.Add([]byte("void main() { printi(1); }\n"))
	f.Add([]byte("void main() { print(\"\\x41\\n\"); }\n"))
	f.Add([]byte("void main() { while (true) { if (false) break; else continue; } }\n"))
	f.Add([]byte("void main() { bool b = 1 < 2 and not (2 < 1) or false; }\n"))
	f.Add([]byte("void main() { int x = (int) (byte) 300 / 0; }\n"))
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
