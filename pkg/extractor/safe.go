package extractor

import "fmt"

// Safely runs an extraction and converts a panic inside it into an error.
func Safely[T any](extract func() ([]T, error)) (out []T, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = fmt.Errorf("extractor panicked: %v", r)
		}
	}()

	return extract()
}
