package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domainerrors "supergames/internal/domain/errors"
	usecasemocks "supergames/internal/mocks/usecase"
	"supergames/internal/usecase"
)

func TestAuthHandler_Register_Created(t *testing.T) {
	mockUC := usecasemocks.NewMockAuthUsecase(t)
	mockUC.On("Register", mock.Anything, &usecase.RegisterInput{
		FirstName:       "Ann",
		LastName:        "Lee",
		Email:           "ann@lee.com",
		Password:        "P@ssw0rd",
		ConfirmPassword: "P@ssw0rd",
	}).Return(&usecase.RegisterOutput{
		Status: http.StatusCreated,
		Token:  "issued-token",
		User: usecase.UserInfo{
			ID:       7,
			UserName: "Ann Lee",
			Email:    "ann@lee.com",
		},
	}, nil)

	e := newTestEcho(t)
	e.POST("/register", NewAuthHandler(mockUC, newDiscardLogger()).Register)

	body := `{"firstName":"Ann","lastName":"Lee","email":"ann@lee.com","password":"P@ssw0rd","confirmPassword":"P@ssw0rd"}`
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/users/7", rec.Header().Get(echo.HeaderLocation))

	var got usecase.RegisterOutput
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "issued-token", got.Token)
	assert.Equal(t, "ann@lee.com", got.User.Email)
	assert.Equal(t, "Ann Lee", got.User.UserName)
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	mockUC := usecasemocks.NewMockAuthUsecase(t)
	mockUC.On("Register", mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrEmailExists)

	e := newTestEcho(t)
	e.POST("/register", NewAuthHandler(mockUC, newDiscardLogger()).Register)

	body := `{"firstName":"Ann","lastName":"Lee","email":"ann@lee.com","password":"P@ssw0rd","confirmPassword":"P@ssw0rd"}`
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"status":401,"message":"This email already exists"}`, rec.Body.String())
	assert.Empty(t, rec.Header().Get(echo.HeaderLocation))
}

func TestAuthHandler_Register_PasswordMismatch(t *testing.T) {
	mockUC := usecasemocks.NewMockAuthUsecase(t)
	mockUC.On("Register", mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrPasswordMismatch)

	e := newTestEcho(t)
	e.POST("/register", NewAuthHandler(mockUC, newDiscardLogger()).Register)

	body := `{"firstName":"Ann","lastName":"Lee","email":"ann@lee.com","password":"P@ssw0rd","confirmPassword":"Different1!"}`
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"status":400,"message":"Password and Password confirmation do not match"}`, rec.Body.String())
}

func TestAuthHandler_Login_OK(t *testing.T) {
	mockUC := usecasemocks.NewMockAuthUsecase(t)
	mockUC.On("Login", mock.Anything, &usecase.LoginInput{
		Email:    "ann@lee.com",
		Password: "P@ssw0rd",
	}).Return(&usecase.LoginOutput{
		Status: http.StatusOK,
		Token:  "issued-token",
		User: usecase.UserInfo{
			ID:       7,
			UserName: "Ann Lee",
			Email:    "ann@lee.com",
		},
		MyGames: []int{},
	}, nil)

	e := newTestEcho(t)
	e.POST("/login", NewAuthHandler(mockUC, newDiscardLogger()).Login)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"ann@lee.com","password":"P@ssw0rd"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"issued-token"`)
	assert.Contains(t, rec.Body.String(), `"myGames":[]`)
}

func TestAuthHandler_Login_WrongCredentials(t *testing.T) {
	mockUC := usecasemocks.NewMockAuthUsecase(t)
	mockUC.On("Login", mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrCredentials)

	e := newTestEcho(t)
	e.POST("/login", NewAuthHandler(mockUC, newDiscardLogger()).Login)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"ann@lee.com","password":"Wr0ng!pwd"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"status":404,"message":"User does not exist or Incorrect Credentials"}`, rec.Body.String())
}

func TestAuthHandler_Login_MalformedBody(t *testing.T) {
	mockUC := usecasemocks.NewMockAuthUsecase(t)

	e := newTestEcho(t)
	e.POST("/login", NewAuthHandler(mockUC, newDiscardLogger()).Login)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{not json`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"status":400,"message":"All fields are required"}`, rec.Body.String())
	mockUC.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}
