package models

// ValidationErrors maps a form field name to its failure message.
type ValidationErrors map[string]string

func (errs ValidationErrors) Any() bool {
	return len(errs) > 0
}
