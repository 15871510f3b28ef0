package services

import (
	"fmt"
	"strings"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"
)

// IdentityClaims are the claims of an ID token issued by the sign-in
// provider after a local or Google sign-in.
type IdentityClaims struct {
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	jwt.RegisteredClaims
}

// IdentityVerifier checks ID tokens of the sign-in provider, either against
// the provider's published key set (RS256) or a shared key (HS256).
type IdentityVerifier struct {
	keyfunc  jwt.Keyfunc
	methods  []string
	issuer   string
	audience string
	jwks     *keyfunc.JWKS
}

// NewIdentityVerifier returns a verifier for tokens signed with secret. An
// empty issuer accepts any iss claim.
func NewIdentityVerifier(secret, issuer string) *IdentityVerifier {
	key := []byte(secret)
	return &IdentityVerifier{
		keyfunc: func(*jwt.Token) (interface{}, error) { return key, nil },
		methods: []string{jwt.SigningMethodHS256.Alg()},
		issuer:  issuer,
	}
}

// NewJWKSIdentityVerifier fetches the provider key set at jwksURL and keeps
// it refreshed in the background. Call Close to stop the refresh.
func NewJWKSIdentityVerifier(jwksURL, issuer, audience string) (*IdentityVerifier, error) {
	jwks, err := keyfunc.Get(jwksURL, keyfunc.Options{
		RefreshUnknownKID: true,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch identity key set: %w", err)
	}
	return newKeySetVerifier(jwks, issuer, audience), nil
}

func newKeySetVerifier(jwks *keyfunc.JWKS, issuer, audience string) *IdentityVerifier {
	return &IdentityVerifier{
		keyfunc:  jwks.Keyfunc,
		methods:  []string{jwt.SigningMethodRS256.Alg()},
		issuer:   issuer,
		audience: audience,
		jwks:     jwks,
	}
}

// Close stops the background key set refresh, if any.
func (v *IdentityVerifier) Close() {
	if v.jwks != nil {
		v.jwks.EndBackground()
	}
}

// VerifyIdentity validates an ID token and returns the email it proves
// ownership of.
func (v *IdentityVerifier) VerifyIdentity(idToken string) (string, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods(v.methods),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}

	claims := &IdentityClaims{}
	token, err := jwt.ParseWithClaims(idToken, claims, v.keyfunc, opts...)
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	email := strings.TrimSpace(claims.Email)
	if email == "" || !claims.EmailVerified {
		return "", ErrInvalidToken
	}
	return strings.ToLower(email), nil
}
