package cmd

import "testing"

func TestParseSource(t *testing.T) {
	tests := []struct {
		arg     string
		path    string
		numOpts int
		wantErr bool
	}{
		{"report.pdf", "report.pdf", 0, false},
		{"report.pdf:2-5", "report.pdf", 1, false},
		{"report.pdf:3", "report.pdf", 1, false},
		{"dir/with:colon/report.pdf", "dir/with:colon/report.pdf", 0, false},
		{"report.pdf:5-2", "", 0, true},
		{"report.pdf:0", "", 0, true},
	}

	for _, tt := range tests {
		path, opts, err := parseSource(tt.arg)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseSource(%q): expected error", tt.arg)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseSource(%q): %v", tt.arg, err)
			continue
		}
		if path != tt.path {
			t.Errorf("parseSource(%q) path = %q, want %q", tt.arg, path, tt.path)
		}
		if len(opts) != tt.numOpts {
			t.Errorf("parseSource(%q) options = %d, want %d", tt.arg, len(opts), tt.numOpts)
		}
	}
}
