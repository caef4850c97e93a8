package kube

import "testing"

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int64
		wantErr bool
	}{
		{name: "millicores pass through", value: "500m", want: 500},
		{name: "nanocores to millicores", value: "2000000n", want: 2},
		{name: "kibibytes to mebibytes", value: "1024Ki", want: 1},
		{name: "mebibytes pass through", value: "256Mi", want: 256},
		{name: "plain integer", value: "3", want: 3},
		{name: "nanocores truncate toward zero", value: "1500000n", want: 1},
		{name: "kibibytes truncate toward zero", value: "2047Ki", want: 1},
		{name: "sub-millicore rounds to zero", value: "999999n", want: 0},
		{name: "zero", value: "0", want: 0},
		{name: "gibibyte suffix rejected", value: "2Gi", wantErr: true},
		{name: "decimal SI suffix rejected", value: "2k", wantErr: true},
		{name: "exponent form rejected", value: "1e3", wantErr: true},
		{name: "empty string rejected", value: "", wantErr: true},
		{name: "bare suffix rejected", value: "Mi", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseQuantity(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseQuantity(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseQuantity(%q) = %d, want %d", tt.value, got, tt.want)
			}
		})
	}
}
