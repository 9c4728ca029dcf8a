package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testSecret = "my_super_secret_key_for_testing"

func TestHashPassword(t *testing.T) {
	password := "mySecretPassword123"
	hash, err := HashPassword(password)

	require.NoError(t, err)
	require.NotEmpty(t, hash)
	require.NotEqual(t, password, hash)
}

func TestCheckPasswordHash(t *testing.T) {
	password := "mySecretPassword123"
	hash, err := HashPassword(password)
	require.NoError(t, err)

	match := CheckPasswordHash(password, hash)
	require.True(t, match, "Password should match the hash")

	match = CheckPasswordHash("wrongPassword", hash)
	require.False(t, match, "Wrong password should not match the hash")
}

func TestGenerateAndVerifySessionToken(t *testing.T) {
	tokenString, err := GenerateSessionToken("owner", testSecret)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := VerifySessionToken(tokenString, testSecret)
	require.NoError(t, err)
	require.NotNil(t, claims)
	require.Equal(t, "owner", claims.Username)
	require.Equal(t, AdminRole, claims.Role)
	require.NotEmpty(t, claims.ID)
	require.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, 5*time.Second)

	_, err = VerifySessionToken(tokenString, "wrong_secret")
	require.Error(t, err)
	require.ErrorIs(t, err, jwt.ErrSignatureInvalid)

	claimsExpired := &AppClaims{
		Username: "owner",
		Role:     AdminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-1 * time.Minute)),
		},
	}
	tokenExpired := jwt.NewWithClaims(jwt.SigningMethodHS256, claimsExpired)
	tokenStringExpired, err := tokenExpired.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = VerifySessionToken(tokenStringExpired, testSecret)
	require.Error(t, err)
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestSessionTokensAreUnique(t *testing.T) {
	a, err := GenerateSessionToken("owner", testSecret)
	require.NoError(t, err)
	b, err := GenerateSessionToken("owner", testSecret)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestParseCookieHeader(t *testing.T) {
	cookies := ParseCookieHeader("theme=dark; admin_session=abc.def.ghi;broken; empty=; pad=a=b")

	require.Equal(t, "dark", cookies["theme"])
	require.Equal(t, "abc.def.ghi", cookies["admin_session"])
	require.Equal(t, "", cookies["empty"])
	require.Equal(t, "a=b", cookies["pad"])
	_, ok := cookies["broken"]
	require.False(t, ok)
}

func TestVerifySessionCookie(t *testing.T) {
	token, err := GenerateSessionToken("owner", testSecret)
	require.NoError(t, err)

	require.True(t, VerifySessionCookie("admin_session="+token, testSecret))
	require.True(t, VerifySessionCookie("a=1; admin_session="+token+"; b=2", testSecret))

	require.False(t, VerifySessionCookie("", testSecret), "absent header")
	require.False(t, VerifySessionCookie("admin_session="+token, ""), "absent secret")
	require.False(t, VerifySessionCookie("other="+token, testSecret), "absent token")
	require.False(t, VerifySessionCookie("admin_session=", testSecret), "empty token")
	require.False(t, VerifySessionCookie("admin_session=not-a-jwt", testSecret), "malformed token")
	require.False(t, VerifySessionCookie("admin_session="+token, "other_secret"), "wrong secret")
}

func TestVerifySessionCookieRejectsNoneAlgorithm(t *testing.T) {
	claims := &AppClaims{
		Username: "owner",
		Role:     AdminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	require.False(t, VerifySessionCookie("admin_session="+unsigned, testSecret))
}

func TestSessionCookie(t *testing.T) {
	c := SessionCookie("tok", true)
	require.Equal(t, SessionCookieName, c.Name)
	require.Equal(t, "tok", c.Value)
	require.Equal(t, 86400, c.MaxAge)
	require.True(t, c.HttpOnly)
	require.True(t, c.Secure)
	require.Contains(t, c.String(), "SameSite=Lax")

	cleared := ClearedSessionCookie(false)
	require.Contains(t, cleared.String(), "Max-Age=0")
	require.Empty(t, cleared.Value)
}

func TestCredentials(t *testing.T) {
	plain := Credentials{Username: "owner", Password: "hunter2"}
	require.True(t, plain.Configured())
	require.True(t, plain.Check("owner", "hunter2"))
	require.False(t, plain.Check("owner", "hunter3"))
	require.False(t, plain.Check("intruder", "hunter2"))
	require.False(t, plain.Check("owner", ""))

	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	hashed := Credentials{Username: "owner", Password: hash}
	require.True(t, hashed.Check("owner", "hunter2"))
	require.False(t, hashed.Check("owner", hash), "the hash itself is not the password")

	empty := Credentials{}
	require.False(t, empty.Configured())
	require.False(t, empty.Check("", ""))
}
