package extract

import (
	"testing"
)

func TestParseAttributes(t *testing.T) {
	tests := []struct {
		name string
		text string
		ok   bool
		want map[string]string
	}{
		{
			name: "plain JSON object",
			text: `{"Material": "Copper", "Voltage": "240V"}`,
			ok:   true,
			want: map[string]string{"Material": "Copper", "Voltage": "240V"},
		},
		{
			name: "fenced JSON",
			text: "```json\n{\"Material\": \"Brass\"}\n```",
			ok:   true,
			want: map[string]string{"Material": "Brass"},
		},
		{
			name: "JSON embedded in prose",
			text: `Here are the attributes you asked for:

{"Material": "PVC", "Size": "1/2 inch"}

Let me know if you need anything else.`,
			ok:   true,
			want: map[string]string{"Material": "PVC", "Size": "1/2 inch"},
		},
		{
			name: "numeric and boolean values flattened",
			text: `{"Pins": 8, "Weight": 1.5, "RoHS": true, "Notes": null}`,
			ok:   true,
			want: map[string]string{"Pins": "8", "Weight": "1.5", "RoHS": "true", "Notes": ""},
		},
		{
			name: "nested value re-encoded as JSON",
			text: `{"Dimensions": {"w": 10, "h": 20}}`,
			ok:   true,
			want: map[string]string{"Dimensions": `{"h":20,"w":10}`},
		},
		{
			name: "no JSON at all",
			text: "I could not find any information about this part.",
			ok:   false,
		},
		{
			name: "empty response",
			text: "",
			ok:   false,
		},
		{
			name: "JSON array is not an attribute map",
			text: `["Material", "Voltage"]`,
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAttributes(tt.text)
			if ok != tt.ok {
				t.Fatalf("ParseAttributes ok = %v, want %v", ok, tt.ok)
			}
			if !tt.ok {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d attributes, want %d: %v", len(got), len(tt.want), got)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("attribute %q = %q, want %q", k, got[k], v)
				}
			}
		})
	}
}
