// Package taxid validates Brazilian taxpayer identifiers.
//
// Two fixed-format identifiers are supported: CPF (11 digits, individuals)
// and CNPJ (14 digits, companies). Both carry two trailing check digits
// computed with a modulo-11 weighted sum. Validation never fails loudly:
// malformed input simply reports false.
package taxid

import "strings"

type Kind string

const (
	KindUnknown Kind = ""
	KindCPF     Kind = "CPF"
	KindCNPJ    Kind = "CNPJ"

	CPFLength  = 11
	CNPJLength = 14
)

// Clean drops every non-digit character.
func Clean(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// DetectKind reports which identifier the digit count of raw corresponds to.
// It does not verify check digits.
func DetectKind(raw string) Kind {
	switch len(Clean(raw)) {
	case CPFLength:
		return KindCPF
	case CNPJLength:
		return KindCNPJ
	default:
		return KindUnknown
	}
}

// Validate dispatches on digit count: 11 digits are checked as a CPF,
// 14 digits as a CNPJ, anything else is invalid.
func Validate(raw string) bool {
	digits := Clean(raw)
	switch len(digits) {
	case CPFLength:
		return validateCPFDigits(digits)
	case CNPJLength:
		return validateCNPJDigits(digits)
	default:
		return false
	}
}

func ValidateCPF(raw string) bool {
	digits := Clean(raw)
	if len(digits) != CPFLength {
		return false
	}
	return validateCPFDigits(digits)
}

func ValidateCNPJ(raw string) bool {
	digits := Clean(raw)
	if len(digits) != CNPJLength {
		return false
	}
	return validateCNPJDigits(digits)
}

func validateCPFDigits(cpf string) bool {
	if allSame(cpf) {
		return false
	}

	if cpfCheckDigit(cpf[:9], 10) != digitAt(cpf, 9) {
		return false
	}
	return cpfCheckDigit(cpf[:10], 11) == digitAt(cpf, 10)
}

// cpfCheckDigit weights the digits from firstWeight down to 2.
func cpfCheckDigit(numbers string, firstWeight int) int {
	sum := 0
	for i := 0; i < len(numbers); i++ {
		sum += digitAt(numbers, i) * (firstWeight - i)
	}
	rev := 11 - (sum % 11)
	if rev == 10 || rev == 11 {
		return 0
	}
	return rev
}

func validateCNPJDigits(cnpj string) bool {
	if allSame(cnpj) {
		return false
	}

	size := CNPJLength - 2
	if cnpjCheckDigit(cnpj[:size]) != digitAt(cnpj, size) {
		return false
	}
	size++
	return cnpjCheckDigit(cnpj[:size]) == digitAt(cnpj, size)
}

// cnpjCheckDigit weights start at len-7, count down to 2 and wrap to 9.
func cnpjCheckDigit(numbers string) int {
	size := len(numbers)
	pos := size - 7
	sum := 0
	for i := 0; i < size; i++ {
		sum += digitAt(numbers, i) * pos
		pos--
		if pos < 2 {
			pos = 9
		}
	}
	if sum%11 < 2 {
		return 0
	}
	return 11 - (sum % 11)
}

// Format renders a valid-length identifier with its usual mask. Inputs of
// any other length are returned as bare digits.
func Format(raw string) string {
	d := Clean(raw)
	switch len(d) {
	case CPFLength:
		return d[0:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:11]
	case CNPJLength:
		return d[0:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-" + d[12:14]
	default:
		return d
	}
}

func digitAt(s string, i int) int {
	return int(s[i] - '0')
}

func allSame(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}
