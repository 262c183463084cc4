package rental

import "strings"

// NormalizeEmail é a forma usada na busca do login: sem espaços nas
// pontas e em minúsculas.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// PasswordMatches compara as senhas em texto puro, ignorando espaços nas pontas.
func PasswordMatches(stored, supplied string) bool {
	return strings.TrimSpace(stored) == strings.TrimSpace(supplied)
}
