package postgresql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `quarterly report`, escapeLike(`quarterly report`))
	assert.Equal(t, `50\%`, escapeLike(`50%`))
	assert.Equal(t, `snake\_case`, escapeLike(`snake_case`))
	assert.Equal(t, `back\\slash\%`, escapeLike(`back\slash%`))
}
