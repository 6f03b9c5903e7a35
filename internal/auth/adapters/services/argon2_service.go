// Package services содержит реализации вспомогательных сервисов аутентификации.
package services

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"notehub/internal/auth/domain/services"
	svc "notehub/internal/auth/ports/services"
)

// Параметры argon2id по умолчанию.
const (
	defaultMemory      = 64 * 1024
	defaultIterations  = 1
	defaultParallelism = 4
	defaultSaltLength  = 16
	defaultKeyLength   = 32
)

const (
	errMsgFailedToGenerateSalt = "failed to generate salt"
	errMsgUnsupportedVariant   = "unsupported hash variant"
	errMsgIncompatibleVersion  = "incompatible argon2 version"
)

// ErrIncompatibleHash возвращается, когда хэш не может быть разобран.
var ErrIncompatibleHash = errors.New("incompatible password hash")

// ServiceArgon2 реализует интерфейс PasswordService на основе argon2id.
// Соль и параметры встроены в результирующую строку, поэтому для проверки
// отдельное хранение соли не требуется.
type ServiceArgon2 struct {
	memory      uint32
	iterations  uint32
	parallelism uint8
	saltLength  uint32
	keyLength   uint32
}

// NewArgon2 создает новый экземпляр сервиса argon2id с параметрами по умолчанию.
func NewArgon2() svc.PasswordService {
	return &ServiceArgon2{
		memory:      defaultMemory,
		iterations:  defaultIterations,
		parallelism: defaultParallelism,
		saltLength:  defaultSaltLength,
		keyLength:   defaultKeyLength,
	}
}

// Hash хэширует пароль и возвращает строку в PHC-формате
// $argon2id$v=19$m=...,t=...,p=...$salt$hash.
func (s *ServiceArgon2) Hash(_ context.Context, password string) (string, error) {
	if password == "" {
		return "", services.ErrInvalidPassword
	}

	salt := make([]byte, s.saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("%s: %w", errMsgFailedToGenerateSalt, services.ErrHashingFailed)
	}

	key := argon2.IDKey([]byte(password), salt, s.iterations, s.memory, s.parallelism, s.keyLength)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		s.memory,
		s.iterations,
		s.parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)

	return encoded, nil
}

// Verify проверяет соответствие пароля хэшу. Сравнение ключей выполняется
// за постоянное время.
func (s *ServiceArgon2) Verify(_ context.Context, password, hash string) (bool, error) {
	if password == "" || hash == "" {
		return false, services.ErrInvalidPassword
	}

	memory, iterations, parallelism, salt, key, err := decodeHash(hash)
	if err != nil {
		return false, fmt.Errorf("decoding hash: %w", err)
	}

	otherKey := argon2.IDKey([]byte(password), salt, iterations, memory, parallelism, uint32(len(key)))

	if subtle.ConstantTimeCompare(key, otherKey) == 1 {
		return true, nil
	}
	return false, nil
}

// decodeHash разбирает PHC-строку argon2id.
func decodeHash(encoded string) (memory, iterations uint32, parallelism uint8, salt, key []byte, err error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 {
		return 0, 0, 0, nil, nil, fmt.Errorf("%w: %w", ErrIncompatibleHash, services.ErrMalformedHash)
	}

	if parts[1] != "argon2id" {
		return 0, 0, 0, nil, nil, fmt.Errorf("%s: %w", errMsgUnsupportedVariant, ErrIncompatibleHash)
	}

	var version int
	if _, err = fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return 0, 0, 0, nil, nil, fmt.Errorf("%w: %w", ErrIncompatibleHash, err)
	}
	if version != argon2.Version {
		return 0, 0, 0, nil, nil, fmt.Errorf("%s: %w", errMsgIncompatibleVersion, ErrIncompatibleHash)
	}

	var par uint32
	if _, err = fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &par); err != nil {
		return 0, 0, 0, nil, nil, fmt.Errorf("%w: %w", ErrIncompatibleHash, err)
	}
	parallelism = uint8(par)

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return 0, 0, 0, nil, nil, fmt.Errorf("%w: %w", ErrIncompatibleHash, err)
	}

	key, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return 0, 0, 0, nil, nil, fmt.Errorf("%w: %w", ErrIncompatibleHash, err)
	}

	return memory, iterations, parallelism, salt, key, nil
}
