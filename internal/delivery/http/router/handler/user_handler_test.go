package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	domainerrors "supergames/internal/domain/errors"
	usecasemocks "supergames/internal/mocks/usecase"
	"supergames/internal/usecase"
)

func TestUserHandler_GetUser_OK(t *testing.T) {
	mockUC := usecasemocks.NewMockUserUsecase(t)
	mockUC.On("GetUser", mock.Anything, uint(7)).Return(&usecase.UserRecord{
		ID:        7,
		FirstName: "Ann",
		LastName:  "Lee",
		Email:     "ann@lee.com",
	}, nil)

	e := newTestEcho(t)
	e.GET("/users/:id", NewUserHandler(mockUC, newDiscardLogger()).GetUser)

	req := httptest.NewRequest(http.MethodGet, "/users/7", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"ann@lee.com"`)
}

func TestUserHandler_GetUser_NotFound(t *testing.T) {
	mockUC := usecasemocks.NewMockUserUsecase(t)
	mockUC.On("GetUser", mock.Anything, uint(99)).
		Return(nil, domainerrors.ErrUserNotFound)

	e := newTestEcho(t)
	e.GET("/users/:id", NewUserHandler(mockUC, newDiscardLogger()).GetUser)

	req := httptest.NewRequest(http.MethodGet, "/users/99", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"status":404,"message":"User not found"}`, rec.Body.String())
}

func TestUserHandler_UpdateUser_PathIDWins(t *testing.T) {
	mockUC := usecasemocks.NewMockUserUsecase(t)
	mockUC.On("UpdateUser", mock.Anything, &usecase.UpdateUserInput{
		ID:        7,
		FirstName: "Ann",
		LastName:  "Chen",
		Email:     "ann@lee.com",
	}).Return(nil)

	e := newTestEcho(t)
	e.PUT("/users/:id", NewUserHandler(mockUC, newDiscardLogger()).UpdateUser)

	body := `{"firstName":"Ann","lastName":"Chen","email":"ann@lee.com"}`
	req := httptest.NewRequest(http.MethodPut, "/users/7", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestUserHandler_UpdateUser_ConflictingIDs(t *testing.T) {
	mockUC := usecasemocks.NewMockUserUsecase(t)

	e := newTestEcho(t)
	e.PUT("/users/:id", NewUserHandler(mockUC, newDiscardLogger()).UpdateUser)

	body := `{"id":8,"firstName":"Ann","lastName":"Chen","email":"ann@lee.com"}`
	req := httptest.NewRequest(http.MethodPut, "/users/7", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockUC.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything)
}

func TestUserHandler_DeleteUser_NoContent(t *testing.T) {
	mockUC := usecasemocks.NewMockUserUsecase(t)
	mockUC.On("DeleteUser", mock.Anything, uint(7)).Return(nil)

	e := newTestEcho(t)
	e.DELETE("/users/:id", NewUserHandler(mockUC, newDiscardLogger()).DeleteUser)

	req := httptest.NewRequest(http.MethodDelete, "/users/7", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestHealthCheck(t *testing.T) {
	e := newTestEcho(t)
	e.GET("/health", HealthCheck)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Server OK", rec.Body.String())
}
