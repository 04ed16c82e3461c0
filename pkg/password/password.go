package password

import "golang.org/x/crypto/bcrypt"

// Hash genera un digest bcrypt (algoritmo, coste y salt embebidos en el string).
// El salt es aleatorio por llamada: dos hashes del mismo password nunca coinciden.
func Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify compara en tiempo constante el password contra el digest.
// Un digest malformado devuelve false, nunca panic.
func Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
