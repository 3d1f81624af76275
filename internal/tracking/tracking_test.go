package tracking

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestNewCodeFormat(t *testing.T) {
	code := NewCode()
	if !Pattern.MatchString(code) {
		t.Fatalf("code %q does not match %s", code, Pattern)
	}
	if !strings.HasPrefix(code, Prefix+"-") {
		t.Fatalf("code %q missing prefix %q", code, Prefix)
	}
	year := fmt.Sprintf("%d", time.Now().Year())
	if !strings.Contains(code, "-"+year+"-") {
		t.Fatalf("code %q missing current year %s", code, year)
	}
}

func TestNewCodeAtUsesGivenYear(t *testing.T) {
	at := time.Date(2019, 3, 1, 0, 0, 0, 0, time.UTC)
	code := NewCodeAt(at)
	if !strings.HasPrefix(code, "CD-2019-") {
		t.Fatalf("expected CD-2019- prefix, got %q", code)
	}
}

func TestSuffixAvoidsAmbiguousCharacters(t *testing.T) {
	for i := 0; i < 500; i++ {
		code := NewCode()
		suffix := code[strings.LastIndex(code, "-")+1:]
		if len(suffix) != 6 {
			t.Fatalf("suffix %q has wrong length", suffix)
		}
		for _, forbidden := range "0O1IL" {
			if strings.ContainsRune(suffix, forbidden) {
				t.Fatalf("code %q contains ambiguous character %q", code, forbidden)
			}
		}
	}
}

func TestCodesAreDistinctUnderConcurrency(t *testing.T) {
	const n = 64
	codes := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			codes <- NewCode()
		}()
	}
	wg.Wait()
	close(codes)

	seen := make(map[string]bool, n)
	for code := range codes {
		if seen[code] {
			t.Fatalf("duplicate code generated: %q", code)
		}
		seen[code] = true
	}
	if len(seen) != n {
		t.Fatalf("expected %d distinct codes, got %d", n, len(seen))
	}
}
