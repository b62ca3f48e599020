package password

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha512"
	"fmt"
)

// saltSize bytes de salt por credencial; el salt actúa como clave del HMAC.
const saltSize = 64

// Hash genera un salt aleatorio nuevo y devuelve (digest, salt) para el password dado.
// El digest es HMAC-SHA512(key=salt, msg=plain): dos usuarios con el mismo password
// obtienen digests sin relación entre sí.
func Hash(plain string) (digest, salt []byte, err error) {
	if plain == "" {
		return nil, nil, fmt.Errorf("password: texto plano vacío")
	}
	salt = make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, nil, fmt.Errorf("password: generar salt: %w", err)
	}
	mac := hmac.New(sha512.New, salt)
	mac.Write([]byte(plain))
	return mac.Sum(nil), salt, nil
}

// Verify recalcula el digest con el salt almacenado y compara en tiempo constante.
// Una verificación fallida no es un error: devuelve false.
func Verify(plain string, digest, salt []byte) bool {
	if plain == "" || len(digest) == 0 || len(salt) == 0 {
		return false
	}
	mac := hmac.New(sha512.New, salt)
	mac.Write([]byte(plain))
	return hmac.Equal(mac.Sum(nil), digest)
}
