package ai

import "testing"

func TestParseMetadata(t *testing.T) {
	raw := `{"summary": "Short summary.", "keywords": ["go", "notes"], "topics": ["engineering"], "qa": [{"question": "Q?", "answer": "A."}]}`

	meta, err := parseMetadata(raw)
	if err != nil {
		t.Fatalf("parseMetadata: %v", err)
	}
	if meta.Summary != "Short summary." {
		t.Fatalf("summary = %q", meta.Summary)
	}
	if len(meta.Keywords) != 2 || meta.Keywords[0] != "go" {
		t.Fatalf("keywords = %v", meta.Keywords)
	}
	if len(meta.QA) != 1 || meta.QA[0].Question != "Q?" {
		t.Fatalf("qa = %v", meta.QA)
	}
}

func TestParseMetadataCodeFence(t *testing.T) {
	raw := "```json\n{\"summary\": \"Fenced.\", \"keywords\": [], \"topics\": [], \"qa\": []}\n```"

	meta, err := parseMetadata(raw)
	if err != nil {
		t.Fatalf("parseMetadata: %v", err)
	}
	if meta.Summary != "Fenced." {
		t.Fatalf("summary = %q", meta.Summary)
	}
}

func TestParseMetadataRejectsGarbage(t *testing.T) {
	if _, err := parseMetadata("not json at all"); err == nil {
		t.Fatal("expected error for non-JSON response")
	}
	if _, err := parseMetadata(`{"keywords": []}`); err == nil {
		t.Fatal("expected error when summary is missing")
	}
}
