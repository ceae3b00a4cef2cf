package auth

import "errors"

var (
	// ErrEmailTaken - пользователь с таким email уже зарегистрирован
	ErrEmailTaken = errors.New("auth: email already taken")

	// ErrInvalidCredentials - неверная пара email/пароль
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrInvalidInput - некорректные входные данные
	ErrInvalidInput = errors.New("auth: invalid input")

	// ErrInternal - внутренняя ошибка сервиса
	ErrInternal = errors.New("auth: internal error")
)
