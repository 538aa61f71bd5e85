// Package dto содержит объекты передачи данных HTTP API.
package dto

// RegisterRequest содержит данные для регистрации пользователя.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest содержит данные для входа пользователя.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse содержит профиль пользователя и токен сессии.
// Имена полей повторяют контракт API (_id).
type AuthResponse struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// FieldError описывает ошибку валидации отдельного поля запроса.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse - ответ с ошибками валидации.
type ValidationErrorResponse struct {
	Errors []FieldError `json:"errors"`
}
