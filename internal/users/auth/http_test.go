// Copyright (c) 2026 TaskTrail. All rights reserved.

package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasktrail/api/internal/platform/constants"
)

func newTestHandler() *Handler {
	service, _ := newTestAuthService()
	return NewHandler(service, false)
}

func postJSON(t *testing.T, handler http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func TestRegister_Success(t *testing.T) {
	router := newTestHandler().Routes()

	recorder := postJSON(t, router, "/register",
		`{"username":"alice","email":"alice@example.com","password":"Sup3rSecret"}`)

	require.Equal(t, http.StatusCreated, recorder.Code)

	body := decodeBody(t, recorder)
	assert.Equal(t, "alice", body["username"])
	assert.Equal(t, "alice@example.com", body["email"])
	assert.NotContains(t, body, "password_hash")
}

func TestRegister_Validation(t *testing.T) {
	router := newTestHandler().Routes()

	testCases := []struct {
		name    string
		payload string
		message string
	}{
		{
			name:    "short username",
			payload: `{"username":"ab","email":"a@example.com","password":"Sup3rSecret"}`,
			message: "Username must be at least 3 characters",
		},
		{
			name:    "invalid email",
			payload: `{"username":"alice","email":"not-an-email","password":"Sup3rSecret"}`,
			message: "Invalid email address",
		},
		{
			name:    "weak password",
			payload: `{"username":"alice","email":"a@example.com","password":"alllowercase1"}`,
			message: "Password must contain at least one uppercase letter",
		},
		{
			name:    "short password",
			payload: `{"username":"alice","email":"a@example.com","password":"Ab1"}`,
			message: "Password must be at least 8 characters",
		},
		{
			name:    "missing username",
			payload: `{"email":"a@example.com","password":"Sup3rSecret"}`,
			message: "Username is required",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			recorder := postJSON(t, router, "/register", testCase.payload)

			require.Equal(t, http.StatusBadRequest, recorder.Code)
			body := decodeBody(t, recorder)
			assert.Equal(t, testCase.message, body["error"])
			assert.Equal(t, "VALIDATION_ERROR", body["code"])
		})
	}
}

func TestRegister_Duplicate(t *testing.T) {
	router := newTestHandler().Routes()
	payload := `{"username":"alice","email":"alice@example.com","password":"Sup3rSecret"}`

	first := postJSON(t, router, "/register", payload)
	require.Equal(t, http.StatusCreated, first.Code)

	second := postJSON(t, router, "/register", payload)
	require.Equal(t, http.StatusConflict, second.Code)

	body := decodeBody(t, second)
	assert.Equal(t, "Username or email already exists", body["error"])
}

func TestLogin_SetsTokenCookie(t *testing.T) {
	router := newTestHandler().Routes()

	recorder := postJSON(t, router, "/register",
		`{"username":"alice","email":"alice@example.com","password":"Sup3rSecret"}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = postJSON(t, router, "/login",
		`{"email":"alice@example.com","password":"Sup3rSecret"}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	cookies := recorder.Result().Cookies()
	require.Len(t, cookies, 1)

	cookie := cookies[0]
	assert.Equal(t, constants.TokenCookieName, cookie.Name)
	assert.Equal(t, "signed-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, int(constants.TokenTTL.Seconds()), cookie.MaxAge)

	body := decodeBody(t, recorder)
	assert.Equal(t, "alice", body["username"])
}

func TestLogin_BadCredentials(t *testing.T) {
	router := newTestHandler().Routes()

	recorder := postJSON(t, router, "/login",
		`{"email":"nobody@example.com","password":"Sup3rSecret"}`)

	require.Equal(t, http.StatusUnauthorized, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, "Invalid email or password", body["error"])
	assert.Empty(t, recorder.Result().Cookies())
}

func TestLogout_ClearsCookie(t *testing.T) {
	router := newTestHandler().Routes()

	recorder := postJSON(t, router, "/logout", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	cookies := recorder.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, constants.TokenCookieName, cookies[0].Name)
	assert.Equal(t, "", cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)

	body := decodeBody(t, recorder)
	assert.Equal(t, "Logged out successfully", body["message"])
}
