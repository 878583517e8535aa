package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "devsa-monthly-meetup", Slugify("DEVSA Monthly Meetup"))
	assert.Equal(t, "cafe-con-codigo", Slugify("Café con Código"))
	assert.Equal(t, "tech-jobs", Slugify("  Tech + Jobs!  "))
	assert.Equal(t, "", Slugify("   "))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "team@devsa.org", NormalizeEmail("  Team@DEVSA.org "))
}

func TestNormalizeNameLower(t *testing.T) {
	assert.Equal(t, "alamo python", NormalizeNameLower("  Alamo   Python "))
}
