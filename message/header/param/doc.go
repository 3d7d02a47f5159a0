// Package param breaks down parameterized header values such as the
// Content-type header: the primary value before the first semi-colon and the
// parameters after it.
package param
