package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// VerifyTokenClaims represents the claims in an email verification token
type VerifyTokenClaims struct {
	UserID    string `json:"user_id"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// VerifyTokenService issues and checks the signed, time-limited tokens
// embedded in email verification URLs.
type VerifyTokenService struct {
	signingKey []byte
	tokenTTL   time.Duration
}

// NewVerifyTokenService creates a new verification token service
func NewVerifyTokenService(signingKey string, tokenTTL time.Duration) *VerifyTokenService {
	return &VerifyTokenService{
		signingKey: []byte(signingKey),
		tokenTTL:   tokenTTL,
	}
}

// GenerateToken creates a verification token for a user
func (vts *VerifyTokenService) GenerateToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := VerifyTokenClaims{
		UserID:    userID.String(),
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(vts.tokenTTL).Unix(),
	}

	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("failed to marshal claims: %w", err)
	}

	claimsB64 := base64.RawURLEncoding.EncodeToString(claimsJSON)

	signature := vts.sign(claimsB64)
	signatureB64 := base64.RawURLEncoding.EncodeToString(signature)

	return claimsB64 + "." + signatureB64, nil
}

// ValidateToken validates a verification token for the given user and
// returns the claims
func (vts *VerifyTokenService) ValidateToken(token string, userID uuid.UUID) (*VerifyTokenClaims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid token format")
	}

	// verify signature
	expectedSignature := vts.sign(parts[0])

	providedSignature, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, fmt.Errorf("failed to decode signature: %w", err)
	}

	if !hmac.Equal(expectedSignature, providedSignature) {
		return nil, fmt.Errorf("invalid signature")
	}

	// decode claims
	claimsJSON, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return nil, fmt.Errorf("failed to decode claims: %w", err)
	}

	var claims VerifyTokenClaims
	err = json.Unmarshal(claimsJSON, &claims)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal claims: %w", err)
	}

	if claims.UserID != userID.String() {
		return nil, fmt.Errorf("token does not belong to user")
	}

	// check expiration
	now := time.Now().Unix()
	if claims.ExpiresAt < now {
		return nil, fmt.Errorf("token expired")
	}

	return &claims, nil
}

// VerifyURL builds the verification link sent by email.
func (vts *VerifyTokenService) VerifyURL(baseURL string, userID uuid.UUID) (string, error) {
	token, err := vts.GenerateToken(userID)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/api/v1/verify/%s/%s", strings.TrimRight(baseURL, "/"), EncodeUID(userID), token), nil
}

// EncodeUID encodes a user ID into the uid path segment of a verification URL.
func EncodeUID(userID uuid.UUID) string {
	return base64.RawURLEncoding.EncodeToString([]byte(userID.String()))
}

// DecodeUID decodes the uid path segment of a verification URL.
func DecodeUID(uid string) (uuid.UUID, error) {
	raw, err := base64.RawURLEncoding.DecodeString(uid)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to decode uid: %w", err)
	}
	return uuid.Parse(string(raw))
}

// sign creates HMAC-SHA256 signature
func (vts *VerifyTokenService) sign(message string) []byte {
	h := hmac.New(sha256.New, vts.signingKey)
	h.Write([]byte(message))
	return h.Sum(nil)
}
