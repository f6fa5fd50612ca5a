package cmd

import "errors"

// ErrInvalidCreds is returned when the stored access token cannot be parsed as a JWT.
var ErrInvalidCreds = errors.New("The stored access token is not a valid JWT. Please sign-in again using `quiz auth login`.")

// ErrExpiredCreds represents an error when the stored access token is past its exp claim.
type ErrExpiredCreds struct {
	Msg string
}

func (e ErrExpiredCreds) Error() string {
	return e.Msg
}

func newErrExpiredCreds() ErrExpiredCreds {
	return ErrExpiredCreds{Msg: "Expired credentials. Please sign-in again using `quiz auth login`."}
}
