package error

// GenericError is implemented by all typed application errors so the
// recovery middleware can translate them into HTTP responses.
type GenericError interface {
	Error() string
	ErrCode() string
	StatusCode() int
}
