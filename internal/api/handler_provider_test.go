package api

import "testing"

func TestParseAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "20.00", want: "20.00"},
		{input: "20.000", want: "20.00"}, // trailing zeros are still 2dp
		{input: "0.010", want: "0.01"},
		{input: " 5 ", want: "5.00"},
		{input: "1.234", wantErr: true},
		{input: "0", wantErr: true},
		{input: "-3.00", wantErr: true},
		{input: "", wantErr: true},
		{input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := parseAmount(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("want error, got %s", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.StringFixed(2) != tt.want {
				t.Fatalf("want %s, got %s", tt.want, got.StringFixed(2))
			}
		})
	}
}
