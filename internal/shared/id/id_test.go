package id

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/oklog/ulid/v2"
)

func TestGenerate(t *testing.T) {
	gen := NewGenerator()

	id1 := gen.Generate()
	id2 := gen.Generate()

	if id1.String() == id2.String() {
		t.Error("Generated IDs should be unique")
	}
}

func TestGenerateString(t *testing.T) {
	gen := NewGenerator()

	id := gen.GenerateString()

	if len(id) != 26 {
		t.Errorf("ULID should be 26 characters, got %d", len(id))
	}
}

func TestNewRunID(t *testing.T) {
	runID := NewRunID()

	if !strings.HasPrefix(string(runID), "run_") {
		t.Fatalf("RunID should start with 'run_', got: %s", runID)
	}

	parts := strings.Split(string(runID), "_")
	if len(parts) != 2 {
		t.Fatalf("RunID should have format 'run_ulid', got: %s", runID)
	}
	if _, err := ulid.Parse(parts[1]); err != nil {
		t.Errorf("ULID part should be valid: %s: %v", parts[1], err)
	}
}

func TestDeterministicEntropy(t *testing.T) {
	entropy := bytes.Repeat([]byte{0x42}, 64)
	a := NewGeneratorWithEntropy(bytes.NewReader(entropy)).Generate()
	b := NewGeneratorWithEntropy(bytes.NewReader(entropy)).Generate()

	if !bytes.Equal(a.Entropy(), b.Entropy()) {
		t.Errorf("Same entropy source should yield the same entropy bytes")
	}
}

func TestConcurrentGeneration(t *testing.T) {
	const goroutines = 50
	const idsPerGoroutine = 50

	var wg sync.WaitGroup
	idChan := make(chan RunID, goroutines*idsPerGoroutine)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < idsPerGoroutine; j++ {
				idChan <- NewRunID()
			}
		}()
	}

	wg.Wait()
	close(idChan)

	seen := make(map[RunID]bool)
	for id := range idChan {
		if seen[id] {
			t.Errorf("Duplicate RunID generated: %s", id)
		}
		seen[id] = true
	}
}
