package errors

import "testing"

func TestValidateOrder(t *testing.T) {
	tests := []struct {
		n       int
		wantErr bool
	}{
		{1, false},
		{8, false},
		{4096, false},
		{0, true},
		{-5, true},
		{4097, true},
	}

	for _, tt := range tests {
		err := ValidateOrder(tt.n)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateOrder(%d) error = %v, wantErr %v", tt.n, err, tt.wantErr)
		}
		if err != nil && !Is(err, ErrCodeInvalidOrder) {
			t.Errorf("ValidateOrder(%d) code = %v, want INVALID_ORDER", tt.n, GetCode(err))
		}
	}
}

func TestValidateDescriptorTerm(t *testing.T) {
	tests := []struct {
		term    string
		wantErr bool
	}{
		{"c5", false},
		{"c120", false},
		{"q8", false},
		{"d4", false},
		{"klein", false},
		{"", true},
		{"c", true},
		{"q16", true},
		{"s3", true},
		{"C5", true}, // case-sensitive
		{"c5xq8", true},
	}

	for _, tt := range tests {
		err := ValidateDescriptorTerm(tt.term)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateDescriptorTerm(%q) error = %v, wantErr %v", tt.term, err, tt.wantErr)
		}
	}
}

func TestValidateElementName(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"e", false},
		{"r2s", false},
		{"-1", false},
		{"(i,1)", false},
		{"", true},
		{"a\x00b", true},
		{`a"b`, true},
		{"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", true}, // 33 chars
	}

	for _, tt := range tests {
		err := ValidateElementName(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateElementName(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestValidateManifestPath(t *testing.T) {
	tests := []struct {
		path    string
		wantErr bool
	}{
		{"groups/s3.toml", false},
		{"S3.TOML", false},
		{"", true},
		{"groups/s3.json", true},
		{"bad\x00.toml", true},
	}

	for _, tt := range tests {
		err := ValidateManifestPath(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateManifestPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
		}
	}
}
