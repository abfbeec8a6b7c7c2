package db

import "testing"

func TestParseDatabaseName(t *testing.T) {
	tests := []struct {
		name    string
		conn    string
		want    string
		wantErr bool
	}{
		{
			name: "standard DSN",
			conn: "user:pass@tcp(localhost:3306)/mydb",
			want: "mydb",
		},
		{
			name: "DSN with params",
			conn: "user:pass@tcp(localhost:3306)/mydb?parseTime=true",
			want: "mydb",
		},
		{
			name: "no host section",
			conn: "user:pass@/mydb",
			want: "mydb",
		},
		{
			name:    "missing database",
			conn:    "user:pass@tcp(localhost:3306)/",
			wantErr: true,
		},
		{
			name:    "no slash",
			conn:    "user:pass@tcp(localhost:3306)",
			wantErr: true,
		},
		{
			name:    "params but no database",
			conn:    "user:pass@tcp(localhost:3306)/?parseTime=true",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDatabaseName(tt.conn)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseDatabaseName(%q) = %q, want %q", tt.conn, got, tt.want)
			}
		})
	}
}
