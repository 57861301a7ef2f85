package service

import "errors"

// Сентинельные ошибки сервисного слоя. Хэндлеры сопоставляют их
// с HTTP-статусами через errors.Is, репозитории оборачивают в них
// ошибки драйвера.
var (
	// ErrNotFound - запись с указанным идентификатором не существует
	ErrNotFound = errors.New("record not found")
	// ErrInvalidID - идентификатор не соответствует формату ObjectID (24 hex-символа)
	ErrInvalidID = errors.New("invalid identifier")
	// ErrValidation - отсутствует обязательное поле при создании записи
	ErrValidation = errors.New("validation failed")
	// ErrStoreUnavailable - хранилище недоступно; отличается от ErrNotFound,
	// чтобы UI мог предложить повтор операции
	ErrStoreUnavailable = errors.New("record store unavailable")

	// ErrIncidentClosed - операция над уже закрытым инцидентом
	ErrIncidentClosed = errors.New("incident already closed")
	// ErrResourceUnavailable - ресурс нельзя закрепить (уже назначен или на обслуживании)
	ErrResourceUnavailable = errors.New("resource is not available for assignment")

	// ErrUserExists - имя пользователя уже занято
	ErrUserExists = errors.New("username already taken")
	// ErrInvalidCredentials - неверная пара логин/пароль
	ErrInvalidCredentials = errors.New("invalid credentials")
)
