package openai

import "testing"

func TestTruncate(t *testing.T) {
	if got := truncate("hello", 8000); got != "hello" {
		t.Errorf("short input must pass through, got %q", got)
	}
	long := make([]byte, maxEmbedInputChars+100)
	for i := range long {
		long[i] = 'a'
	}
	if got := truncate(string(long), maxEmbedInputChars); len(got) != maxEmbedInputChars {
		t.Errorf("expected %d chars after truncation, got %d", maxEmbedInputChars, len(got))
	}
}
