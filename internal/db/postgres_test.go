package db

import "testing"

func TestResolveColumnType(t *testing.T) {
	tests := []struct {
		name     string
		dataType string
		udtName  string
		expected string
	}{
		{
			name:     "plain type is lowercased",
			dataType: "integer",
			udtName:  "int4",
			expected: "integer",
		},
		{
			name:     "verbose type stays verbose",
			dataType: "timestamp with time zone",
			udtName:  "timestamptz",
			expected: "timestamp with time zone",
		},
		{
			name:     "enum resolves to udt name",
			dataType: "USER-DEFINED",
			udtName:  "order_status",
			expected: "order_status",
		},
		{
			name:     "mixed-case enum is lowercased",
			dataType: "USER-DEFINED",
			udtName:  "OrderStatus",
			expected: "orderstatus",
		},
		{
			name:     "integer array",
			dataType: "ARRAY",
			udtName:  "_int4",
			expected: "integer[]",
		},
		{
			name:     "text array",
			dataType: "ARRAY",
			udtName:  "_text",
			expected: "text[]",
		},
		{
			name:     "varchar array",
			dataType: "ARRAY",
			udtName:  "_varchar",
			expected: "character varying[]",
		},
		{
			name:     "array without element prefix",
			dataType: "ARRAY",
			udtName:  "anyarray",
			expected: "array",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveColumnType(tt.dataType, tt.udtName)
			if got != tt.expected {
				t.Errorf("resolveColumnType(%q, %q) = %q, want %q", tt.dataType, tt.udtName, got, tt.expected)
			}
		})
	}
}
