package helper

import "testing"

func TestValidateCPF(t *testing.T) {
	valid := []string{
		"529.982.247-25",
		"52998224725",
		"111.444.777-35",
	}
	for _, cpf := range valid {
		if !ValidateCPF(cpf) {
			t.Errorf("ValidateCPF(%q) = false, want true", cpf)
		}
	}

	invalid := []string{
		"",
		"529.982.247-24",  // wrong second check digit
		"529.982.237-25",  // wrong body digit
		"111.111.111-11",  // repeated digits
		"000.000.000-00",  // repeated digits
		"5299822472",      // too short
		"529982247255",    // too long
		"abc.def.ghi-jk",  // no digits at all
		"529.982.247-2a",  // letter in check digit
	}
	for _, cpf := range invalid {
		if ValidateCPF(cpf) {
			t.Errorf("ValidateCPF(%q) = true, want false", cpf)
		}
	}
}

func TestFormatCPF(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"52998224725", "529.982.247-25"},
		{"529.982.247-25", "529.982.247-25"},
		{"529 982 247 25", "529.982.247-25"},
		{"1234", "1234"}, // not a CPF, returned stripped
	}
	for _, tc := range cases {
		if got := FormatCPF(tc.in); got != tc.want {
			t.Errorf("FormatCPF(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
