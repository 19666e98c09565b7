//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	reqdto "wishlink/internal/handler/dto/request"
	"wishlink/tests/common/httptest"
	"wishlink/tests/e2e"
	"wishlink/tests/e2e/common/helper"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	verifyURL   = "/api/auth/verify"
	loginURL    = "/api/auth/login"
	logoutURL   = "/api/auth/logout"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) TestRegisterFlow() {
	s.Run("登録からログインまでの一連の流れ", func() {
		t := s.T()

		_, token := helper.Register(t, s.Router, "flow@example.com")

		// 確認前はログインできない
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqdto.LoginRequest{
			Email:    "flow@example.com",
			Password: helper.DefaultPassword,
		}, "")
		require.Equal(t, http.StatusForbidden, w.Code, "未確認アカウントはログインできないこと")

		helper.Verify(t, s.Router, token)

		accessToken := helper.Login(t, s.Router, "flow@example.com")
		require.NotEmpty(t, accessToken)
	})

	s.Run("同じメールアドレスは二重登録できない", func() {
		t := s.T()

		helper.Register(t, s.Router, "dup@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqdto.RegisterRequest{
			Email:    "dup@example.com",
			Password: helper.DefaultPassword,
		}, "")
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("確認トークンは一度しか使えない", func() {
		t := s.T()

		_, token := helper.Register(t, s.Router, "once@example.com")
		helper.Verify(t, s.Router, token)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, verifyURL, reqdto.VerifyRequest{Token: token}, "")
		require.Equal(t, http.StatusNotFound, w.Code, "使用済みトークンは拒否されること")
	})

	s.Run("不正な確認トークン", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, verifyURL, reqdto.VerifyRequest{Token: "no-such-token"}, "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
		description    string
	}{
		{
			name:           "正常なログイン",
			email:          "login@example.com",
			password:       helper.DefaultPassword,
			expectedStatus: http.StatusOK,
			description:    "有効な認証情報でログインできること",
		},
		{
			name:           "存在しないユーザー",
			email:          "nonexistent@example.com",
			password:       helper.DefaultPassword,
			expectedStatus: http.StatusUnauthorized,
			description:    "存在しないユーザーでログインできないこと",
		},
		{
			name:           "間違ったパスワード",
			email:          "login@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
			description:    "間違ったパスワードでログインできないこと",
		},
		{
			name:           "空のメールアドレス",
			email:          "",
			password:       helper.DefaultPassword,
			expectedStatus: http.StatusBadRequest,
			description:    "空のメールアドレスは拒否されること",
		},
		{
			name:           "空のパスワード",
			email:          "login@example.com",
			password:       "",
			expectedStatus: http.StatusBadRequest,
			description:    "空のパスワードは拒否されること",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			_, token := helper.Register(t, s.Router, "login@example.com")
			helper.Verify(t, s.Router, token)

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqdto.LoginRequest{
				Email:    tt.email,
				Password: tt.password,
			}, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				// last_loginが更新されることを確認
				var lastLogin interface{}
				err := s.DB.QueryRow(s.T().Context(), "SELECT last_login FROM users WHERE email = $1", tt.email).Scan(&lastLogin)
				require.NoError(t, err)
				require.NotNil(t, lastLogin, "last_loginが更新されていない")
			}
		})
	}
}

func (s *authSuite) TestMe() {
	s.Run("ログイン中のユーザー情報を取得できる", func() {
		t := s.T()

		token := helper.CreateVerifiedUser(t, s.Router, "me@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "me@example.com")
		require.NotContains(t, w.Body.String(), "password")
	})

	s.Run("認証なしでは取得できない", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("無効なトークンは拒否される", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "invalid-token")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestLogout() {
	s.Run("ログアウトは204を返す", func() {
		t := s.T()

		token := helper.CreateVerifiedUser(t, s.Router, "logout@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)
	})

	s.Run("認証なしではログアウトできない", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
