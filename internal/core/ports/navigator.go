package ports

// Navigator abstracts the navigation layer. The session core only ever
// requests movement to fixed destinations (the sign-in and unauthorized
// views); how navigation happens is owned by the caller.
type Navigator interface {
	// Current returns the path of the current location.
	Current() string
	// To requests navigation to the given path.
	To(path string)
}
