package jwtmanager

import (
	"bhzdravlje-service/internal/app/config"
	"bhzdravlje-service/internal/pkg/constvars"
	"bhzdravlje-service/internal/pkg/utils"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/blake2b"
)

const defaultStepTokenTTL = 2 * time.Hour

// StepClaims is what a registration step token carries. Digests maps a step
// number to the keyed hash of the values that step was validated with.
type StepClaims struct {
	RegistrationType string         `json:"registration_type"`
	Step             int            `json:"step"`
	Digests          map[int]string `json:"digests"`
	jwt.RegisteredClaims
}

// Covers reports the first step in 1..upTo that has no digest, or 0 when
// all of them do.
func (c *StepClaims) Covers(upTo int) int {
	for step := 1; step <= upTo; step++ {
		if _, ok := c.Digests[step]; !ok {
			return step
		}
	}
	return 0
}

// StepTokenManager signs and verifies the tokens that let the registration
// wizard stay stateless on the server.
type StepTokenManager struct {
	log       *zap.Logger
	secret    []byte
	digestKey []byte
	ttl       time.Duration
	now       func() time.Time
}

func NewStepTokenManager(cfg *config.InternalConfig, log *zap.Logger) (*StepTokenManager, error) {
	secret := strings.TrimSpace(cfg.Registration.StepTokenSecret)
	if secret == "" {
		return nil, errors.New("registration step token secret is empty")
	}

	ttl := time.Duration(cfg.Registration.StepTokenTTLInMinutes) * time.Minute
	if ttl <= 0 {
		ttl = defaultStepTokenTTL
	}

	// blake2b keys are limited to 64 bytes
	digestKey := blake2b.Sum256([]byte("step-digest:" + secret))

	return &StepTokenManager{
		log:       log,
		secret:    []byte(secret),
		digestKey: digestKey[:],
		ttl:       ttl,
		now:       time.Now,
	}, nil
}

// Issue signs a token for registrationType that records digests.
func (m *StepTokenManager) Issue(ctx context.Context, registrationType string, step int, digests map[int]string) (string, error) {
	requestID := utils.GetRequestID(ctx)
	m.log.Info("StepTokenManager.Issue called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRegistrationTypeKey, registrationType),
		zap.Int(constvars.LoggingStepKey, step),
	)

	now := m.now().UTC()
	claims := StepClaims{
		RegistrationType: registrationType,
		Step:             step,
		Digests:          digests,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		m.log.Error("StepTokenManager.Issue error signing token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", err
	}
	return signed, nil
}

// Parse verifies signature, expiry and registration type of a step token.
func (m *StepTokenManager) Parse(ctx context.Context, token, registrationType string) (*StepClaims, error) {
	requestID := utils.GetRequestID(ctx)
	m.log.Info("StepTokenManager.Parse called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRegistrationTypeKey, registrationType),
	)

	if strings.TrimSpace(token) == "" {
		return nil, errors.New("step token is required")
	}

	claims := new(StepClaims)
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	_, err := parser.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}

	// Claims are validated here so that expiry follows the injected clock.
	now := m.now().UTC()
	if !claims.VerifyExpiresAt(now, true) {
		return nil, errors.New("step token expired")
	}
	if !claims.VerifyNotBefore(now, false) {
		return nil, errors.New("step token not valid yet")
	}
	if claims.RegistrationType != registrationType {
		return nil, fmt.Errorf("step token issued for %q", claims.RegistrationType)
	}
	return claims, nil
}

// Digest is a keyed BLAKE2b hash over the named struct fields of payload.
// Field order is significant.
func (m *StepTokenManager) Digest(payload interface{}, fields []string) (string, error) {
	value := reflect.Indirect(reflect.ValueOf(payload))
	if value.Kind() != reflect.Struct {
		return "", fmt.Errorf("cannot digest %T", payload)
	}

	hash, err := blake2b.New256(m.digestKey)
	if err != nil {
		return "", err
	}
	for _, name := range fields {
		field := value.FieldByName(name)
		if !field.IsValid() {
			return "", fmt.Errorf("%T has no field %s", payload, name)
		}
		encoded, err := json.Marshal(field.Interface())
		if err != nil {
			return "", err
		}
		hash.Write([]byte(name))
		hash.Write([]byte{'='})
		hash.Write([]byte(strconv.Itoa(len(encoded))))
		hash.Write([]byte{':'})
		hash.Write(encoded)
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}
