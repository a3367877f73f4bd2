package domain

import "errors"

var (
	ErrSessionNotFound  = errors.New("session record not found")
	ErrCorruptSession   = errors.New("session record is unreadable")
	ErrEmptyCommand     = errors.New("command is empty")
	ErrUnknownCommand   = errors.New("unknown command")
	ErrCommandExists    = errors.New("command already registered")
	ErrInvalidCommandID = errors.New("invalid command name")
)
