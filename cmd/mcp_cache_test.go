package cmd

import (
	"os"
	"testing"
	"time"
)

func TestMCPFixtureCache_TTLZeroAlwaysReparses(t *testing.T) {
	path := writeTempFile(t, "fixture.html", `<button>One</button>`)
	c := newMCPFixtureCache(0)

	doc1, err := c.loadFixtureDoc(path)
	if err != nil {
		t.Fatalf("loadFixtureDoc: %v", err)
	}
	doc2, err := c.loadFixtureDoc(path)
	if err != nil {
		t.Fatalf("loadFixtureDoc: %v", err)
	}
	if doc1 == doc2 {
		t.Error("expected a fresh parse each call when ttl is 0")
	}
}

func TestMCPFixtureCache_ReturnsCachedDocWithinTTL(t *testing.T) {
	path := writeTempFile(t, "fixture.html", `<button>One</button>`)
	c := newMCPFixtureCache(time.Minute)

	doc1, err := c.loadFixtureDoc(path)
	if err != nil {
		t.Fatalf("loadFixtureDoc: %v", err)
	}
	doc2, err := c.loadFixtureDoc(path)
	if err != nil {
		t.Fatalf("loadFixtureDoc: %v", err)
	}
	if doc1 != doc2 {
		t.Error("expected the same cached doc pointer within the TTL window")
	}
}

func TestMCPFixtureCache_MtimeChangeInvalidatesEntry(t *testing.T) {
	path := writeTempFile(t, "fixture.html", `<button>One</button>`)
	c := newMCPFixtureCache(time.Minute)

	doc1, err := c.loadFixtureDoc(path)
	if err != nil {
		t.Fatalf("loadFixtureDoc: %v", err)
	}

	later := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(path, later, later); err != nil {
		t.Fatalf("chtimes: %v", err)
	}
	if err := os.WriteFile(path, []byte(`<button>Two</button>`), 0o644); err != nil {
		t.Fatalf("rewrite fixture: %v", err)
	}
	if err := os.Chtimes(path, later, later); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	doc2, err := c.loadFixtureDoc(path)
	if err != nil {
		t.Fatalf("loadFixtureDoc: %v", err)
	}
	if doc1 == doc2 {
		t.Error("expected a re-parse after the fixture's mtime changed")
	}
}

func TestMCPFixtureCache_Invalidate(t *testing.T) {
	path := writeTempFile(t, "fixture.html", `<button>One</button>`)
	c := newMCPFixtureCache(time.Minute)

	doc1, _ := c.loadFixtureDoc(path)
	c.invalidate(path)
	doc2, _ := c.loadFixtureDoc(path)
	if doc1 == doc2 {
		t.Error("expected a re-parse after explicit invalidation")
	}
}

func TestMCPFixtureCache_InvalidateAll(t *testing.T) {
	pathA := writeTempFile(t, "a.html", `<button>A</button>`)
	pathB := writeTempFile(t, "b.html", `<button>B</button>`)
	c := newMCPFixtureCache(time.Minute)

	docA1, _ := c.loadFixtureDoc(pathA)
	docB1, _ := c.loadFixtureDoc(pathB)
	c.invalidateAll()
	docA2, _ := c.loadFixtureDoc(pathA)
	docB2, _ := c.loadFixtureDoc(pathB)

	if docA1 == docA2 || docB1 == docB2 {
		t.Error("expected every entry to be re-parsed after invalidateAll")
	}
}

func TestParseFixtureFile_MissingFileIsAnError(t *testing.T) {
	if _, err := parseFixtureFile("/nonexistent/path/fixture.html"); err == nil {
		t.Error("expected an error for a missing file")
	}
}
