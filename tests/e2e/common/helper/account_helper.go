//go:build e2e

package helper

import (
	"net/http"
	"testing"

	reqdto "wishlink/internal/handler/dto/request"
	"wishlink/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const (
	registerURL = "/api/auth/register"
	verifyURL   = "/api/auth/verify"
	loginURL    = "/api/auth/login"

	// DefaultPassword は全テストユーザー共通のパスワード
	DefaultPassword = "password123"
)

type registerResponse struct {
	ID                string `json:"id"`
	VerificationToken string `json:"verification_token"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

// Register creates an unverified account and returns its id and verification
// token.
func Register(t *testing.T, router *gin.Engine, email string) (string, string) {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, registerURL, reqdto.RegisterRequest{
		Email:    email,
		Password: DefaultPassword,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, "ユーザー登録に失敗: %s", w.Body.String())

	var res registerResponse
	httptest.DecodeResponseBody(t, w.Body, &res)
	require.NotEmpty(t, res.ID)
	require.NotEmpty(t, res.VerificationToken)
	return res.ID, res.VerificationToken
}

// Verify redeems the verification token so the account can log in.
func Verify(t *testing.T, router *gin.Engine, token string) {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, verifyURL, reqdto.VerifyRequest{Token: token}, "")
	require.Equal(t, http.StatusNoContent, w.Code, "メール確認に失敗: %s", w.Body.String())
}

// Login returns the access token for a verified account.
func Login(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, loginURL, reqdto.LoginRequest{
		Email:    email,
		Password: DefaultPassword,
	}, "")
	require.Equal(t, http.StatusOK, w.Code, "ログインに失敗: %s", w.Body.String())

	var res loginResponse
	httptest.DecodeResponseBody(t, w.Body, &res)
	require.NotEmpty(t, res.AccessToken)
	return res.AccessToken
}

// CreateVerifiedUser runs the full register → verify → login flow and returns
// the access token.
func CreateVerifiedUser(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()

	_, token := Register(t, router, email)
	Verify(t, router, token)
	return Login(t, router, email)
}
