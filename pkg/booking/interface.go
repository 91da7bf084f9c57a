package booking

// Reader yields one line of input per call. It returns ErrEndOfInput once the
// source is exhausted and a *ReadError for any other failure.
type Reader interface {
	ReadLine() (string, error)
}
