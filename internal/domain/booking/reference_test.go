package booking

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewReferenceCode_Format(t *testing.T) {
	format := regexp.MustCompile(`^[A-Z0-9]{6}$`)

	for i := 0; i < 100; i++ {
		assert.Regexp(t, format, NewReferenceCode())
	}
}
