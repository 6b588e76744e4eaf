package errors

import "fmt"

var (
	ErrWorkerPanic              = fmt.Errorf("worker panic")
	ErrEmptyWords               = fmt.Errorf("no words have been found")
	ErrSessionAlreadyExists     = fmt.Errorf("a game is already in progress for this sender")
	ErrSessionNotFound          = fmt.Errorf("no game in progress for this sender")
	ErrCommandAlreadyRegistered = fmt.Errorf("command already registered")
	ErrInvalidLine              = fmt.Errorf("line must look like '<sender>: <text>'")
	ErrEmptySender              = fmt.Errorf("sender must not be empty")
	ErrNotTextFile              = fmt.Errorf("dictionary file is not plain text")
	ErrAlreadyStarted           = fmt.Errorf("orchestrator already started")
	ErrNotStarted               = fmt.Errorf("orchestrator not started")
)
