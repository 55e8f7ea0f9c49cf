package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanMerchant(t *testing.T) {
	type testCase struct {
		name  string
		input string
		want  string
	}

	tests := []testCase{
		{name: "Punctuation", input: "Tim Hortons #5!", want: "TIM HORTONS 5"},
		{name: "AlreadyClean", input: "TIM HORTONS 5", want: "TIM HORTONS 5"},
		{name: "KeepsHyphenAndAmpersand", input: " h&m - eaton centre ", want: "H&M - EATON CENTRE"},
		{name: "Apostrophe", input: "McDonald's", want: "MCDONALDS"},
		{name: "CollapsesWhitespace", input: "UBER   *TRIP\t HELP.UBER.COM", want: "UBER TRIP HELPUBERCOM"},
		{name: "Accents", input: "Café Dépanneur", want: "CAFÉ DÉPANNEUR"},
		{name: "OnlySymbols", input: "***", want: ""},
		{name: "Empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanMerchant(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, CleanMerchant(got), "cleaning must be idempotent")
		})
	}
}

func TestParseDate(t *testing.T) {
	type args struct {
		value  string
		layout string
	}

	type testCase struct {
		name   string
		args   args
		want   string
		wantOK bool
	}

	tests := []testCase{
		{name: "TD", args: args{"01/15/2024", "1/2/2006"}, want: "2024-01-15", wantOK: true},
		{name: "TDUnpadded", args: args{"1/5/2024", "1/2/2006"}, want: "2024-01-05", wantOK: true},
		{name: "TDRejectsISO", args: args{"2024-01-15", "1/2/2006"}},
		{name: "TDRejectsDayFirst", args: args{"15/01/2024", "1/2/2006"}},
		{name: "RBC", args: args{"2024-03-09", "2006-1-2"}, want: "2024-03-09", wantOK: true},
		{name: "Scotiabank", args: args{"09 Mar 2024", "2 Jan 2006"}, want: "2024-03-09", wantOK: true},
		{name: "ScotiabankUpperMonth", args: args{"9 MAR 2024", "2 Jan 2006"}, want: "2024-03-09", wantOK: true},
		{name: "InvalidCalendarDate", args: args{"02/30/2024", "1/2/2006"}},
		{name: "Empty", args: args{"", "1/2/2006"}},
		{name: "PermissiveISO", args: args{"2024-07-04", ""}, want: "2024-07-04", wantOK: true},
		{name: "PermissiveLongForm", args: args{"July 4, 2024", ""}, want: "2024-07-04", wantOK: true},
		{name: "PermissiveGarbage", args: args{"not a date", ""}},
		{name: "PermissiveClockFragment", args: args{"1:", ""}},
		{name: "PermissiveDottedFragment", args: args{"1.1.", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseDate(tt.args.value, tt.args.layout)

			assert.Equal(t, tt.wantOK, ok)

			if tt.wantOK {
				assert.Equal(t, tt.want, got.Format("2006-01-02"))
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	type testCase struct {
		input  string
		want   string
		wantOK bool
	}

	tests := []testCase{
		{input: "4.25", want: "4.25", wantOK: true},
		{input: "-120.00", want: "-120", wantOK: true},
		{input: "1e2", want: "100", wantOK: true},
		{input: "N/A"},
		{input: "1,234.56"},
		{input: "NaN"},
		{input: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := parseAmount(tt.input)

			assert.Equal(t, tt.wantOK, ok)

			if tt.wantOK {
				assert.Equal(t, tt.want, got.String())
			}
		})
	}
}
