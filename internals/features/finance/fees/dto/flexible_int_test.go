package dto

import (
	"encoding/json"
	"testing"
)

func TestFlexibleIntUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int
		wantErr bool
	}{
		{name: "plain number", in: `10`, want: 10},
		{name: "quoted number", in: `"10"`, want: 10},
		{name: "zero", in: `0`, want: 0},
		{name: "non numeric string", in: `"Grade 10"`, wantErr: true},
		{name: "float rejected", in: `10.5`, wantErr: true},
		{name: "null rejected", in: `null`, wantErr: true},
		{name: "empty string rejected", in: `""`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexibleInt
			err := json.Unmarshal([]byte(tt.in), &f)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal(%s) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && f.Int() != tt.want {
				t.Errorf("Unmarshal(%s) = %d, want %d", tt.in, f.Int(), tt.want)
			}
		})
	}
}
