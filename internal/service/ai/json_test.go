package ai

import "testing"

func TestExtractJSONPlainObject(t *testing.T) {
	got, err := ExtractJSON(`{"ready": false}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `{"ready": false}` {
		t.Fatalf("unexpected result %q", got)
	}
}

func TestExtractJSONStripsProseAndFences(t *testing.T) {
	content := "Вот ответ:\n```json\n{\"ready\": true, \"question\": \"\"}\n```\nНадеюсь, это поможет."

	got, err := ExtractJSON(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `{"ready": true, "question": ""}` {
		t.Fatalf("unexpected result %q", got)
	}
}

func TestExtractJSONKeepsNestedObjects(t *testing.T) {
	got, err := ExtractJSON(`prefix {"a": {"b": 1}} suffix`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `{"a": {"b": 1}}` {
		t.Fatalf("unexpected result %q", got)
	}
}

func TestExtractJSONMissingObject(t *testing.T) {
	for _, content := range []string{"", "нет объекта", "}{", "}"} {
		if _, err := ExtractJSON(content); err == nil {
			t.Fatalf("expected error for %q", content)
		}
	}
}
