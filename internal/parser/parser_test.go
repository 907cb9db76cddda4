package parser

import "testing"

func TestParseWithFrontmatter(t *testing.T) {
	data := []byte("---\ntitle: Daily log\n---\n\nSome body text.\n")
	res, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if res.Title != "Daily log" {
		t.Errorf("title = %q", res.Title)
	}
	if res.Body != "Some body text.\n" {
		t.Errorf("body = %q", res.Body)
	}
	if res.Frontmatter["title"] != "Daily log" {
		t.Errorf("frontmatter = %v", res.Frontmatter)
	}
}

func TestParseTitleFromHeading(t *testing.T) {
	res, err := Parse([]byte("# Heading Title\n\ntext"))
	if err != nil {
		t.Fatal(err)
	}
	if res.Title != "Heading Title" {
		t.Errorf("title = %q", res.Title)
	}
	if res.Frontmatter != nil {
		t.Error("no frontmatter expected")
	}
}

func TestParseUnterminatedFrontmatter(t *testing.T) {
	res, err := Parse([]byte("---\ntitle: broken\n\nno closing fence"))
	if err != nil {
		t.Fatal(err)
	}
	if res.Frontmatter != nil {
		t.Error("unterminated frontmatter should fall back to body")
	}
}

func TestParseInvalidYAMLFallsBack(t *testing.T) {
	res, err := Parse([]byte("---\n: : :\n---\nbody"))
	if err != nil {
		t.Fatal(err)
	}
	if res.Frontmatter != nil {
		t.Error("invalid YAML should fall back to body only")
	}
}
