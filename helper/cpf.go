package helper

import "strings"

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidateCPF runs the Brazilian CPF check-digit algorithm. Accepts the
// number with or without the XXX.XXX.XXX-XX mask.
func ValidateCPF(cpf string) bool {
	cpf = onlyDigits(cpf)

	if len(cpf) != 11 {
		return false
	}

	// all digits equal is a well-formed but invalid number
	allEqual := true
	for i := 1; i < 11; i++ {
		if cpf[i] != cpf[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		return false
	}

	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(cpf[i]-'0') * (10 - i)
	}
	remainder := 11 - (sum % 11)
	if remainder == 10 || remainder == 11 {
		remainder = 0
	}
	if remainder != int(cpf[9]-'0') {
		return false
	}

	sum = 0
	for i := 0; i < 10; i++ {
		sum += int(cpf[i]-'0') * (11 - i)
	}
	remainder = 11 - (sum % 11)
	if remainder == 10 || remainder == 11 {
		remainder = 0
	}
	return remainder == int(cpf[10]-'0')
}

// FormatCPF applies the XXX.XXX.XXX-XX mask. Input that is not 11 digits is
// returned stripped but unmasked.
func FormatCPF(cpf string) string {
	cpf = onlyDigits(cpf)
	if len(cpf) != 11 {
		return cpf
	}
	return cpf[0:3] + "." + cpf[3:6] + "." + cpf[6:9] + "-" + cpf[9:11]
}
