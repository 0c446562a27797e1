package parser_test

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/ohodson/tiny-lisp/lisp"
	"github.com/ohodson/tiny-lisp/parser"
)

const fixtureDir = "testfixtures"

func fixtures(tb testing.TB) []string {
	files, err := filepath.Glob(filepath.Join(fixtureDir, "*.lisp"))
	if err != nil {
		tb.Fatalf("Failed to list test fixtures: %v", err)
	}
	if len(files) == 0 {
		tb.Fatalf("No test fixtures found in %s", fixtureDir)
	}
	sort.Strings(files) // should be redundant
	return files
}

func benchmarkParse(path string, newReader func() lisp.Reader) func(*testing.B) {
	return func(b *testing.B) {
		source, err := os.ReadFile(path)
		if err != nil {
			b.Fatalf("Failed to read fixture: %v", err)
		}
		b.SetBytes(int64(len(source)))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, err := newReader().Read(path, bytes.NewReader(source))
			if err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkParser(b *testing.B) {
	for _, path := range fixtures(b) {
		b.Run(filepath.Base(path), benchmarkParse(path, parser.NewReader))
	}
}

func BenchmarkEval(b *testing.B) {
	for _, path := range fixtures(b) {
		path := path
		b.Run(filepath.Base(path), func(b *testing.B) {
			source, err := os.ReadFile(path)
			if err != nil {
				b.Fatalf("Failed to read fixture: %v", err)
			}
			for i := 0; i < b.N; i++ {
				rt, err := lisp.NewRuntime(lisp.WithReader(parser.NewReader()))
				if err != nil {
					b.Fatal(err)
				}
				_, err = rt.Load(path, bytes.NewReader(source))
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
