package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fsdevblog/virtnum/internal/domain"
	"github.com/fsdevblog/virtnum/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
)

// getUserIDFromContext берет из контекста gin ID текущего юзера. ID устанавливается в
// middlewares.AuthRequired. В случае, если значения в контексте нет или ошибка утверждения типа -
// вернется 0.
func getUserIDFromContext(c *gin.Context) int64 {
	userIDStr, exist := c.Get(middlewares.CurrentUserIDKey)
	if !exist {
		return 0
	}
	userID, ok := userIDStr.(int64)
	if !ok {
		return 0
	}
	return userID
}

// idParam читает положительный числовой параметр пути :id. При ошибке прерывает запрос с 400.
func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		_ = c.AbortWithError(http.StatusBadRequest, errors.New("invalid id")).SetType(gin.ErrorTypePublic)
		return 0, false
	}
	return id, true
}

// serviceErrorStatus http статус для ошибки сервисного слоя и доменная ошибка, текст которой можно отдать
// клиенту. Для неизвестных ошибок возвращается 500 и nil.
func serviceErrorStatus(err error) (int, error) {
	mapping := []struct {
		target error
		status int
	}{
		{domain.ErrInsufficientBalance, http.StatusPaymentRequired},
		{domain.ErrAuthenticationFailed, http.StatusUnauthorized},
		{domain.ErrUnknownReference, http.StatusNotFound},
		{domain.ErrOrderNotFound, http.StatusNotFound},
		{domain.ErrServiceNotFound, http.StatusNotFound},
		{domain.ErrInvalidTransition, http.StatusConflict},
		{domain.ErrAmountMismatch, http.StatusUnprocessableEntity},
		{domain.ErrServiceInactive, http.StatusUnprocessableEntity},
		{domain.ErrInvalidAmount, http.StatusUnprocessableEntity},
		{domain.ErrInvalidConfirmation, http.StatusUnprocessableEntity},
		{domain.ErrPurchaseFailed, http.StatusBadGateway},
	}
	for _, m := range mapping {
		if errors.Is(err, m.target) {
			return m.status, m.target
		}
	}
	return http.StatusInternalServerError, nil
}

// abortWithServiceError прерывает запрос со статусом, соответствующим ошибке сервиса. Клиент видит только
// текст доменной ошибки, полная ошибка уходит в лог.
func abortWithServiceError(c *gin.Context, err error) {
	status, public := serviceErrorStatus(err)
	if public != nil {
		_ = c.Error(public).SetType(gin.ErrorTypePublic)
	}
	_ = c.AbortWithError(status, err).SetType(gin.ErrorTypePrivate)
}
