package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPracticesOn(t *testing.T) {
	doctor := Doctor{PracticeDays: "Mon,Tue,Wed,Thu,Fri"}

	assert.True(t, doctor.PracticesOn(time.Monday))
	assert.True(t, doctor.PracticesOn(time.Friday))
	assert.False(t, doctor.PracticesOn(time.Saturday))
	assert.False(t, doctor.PracticesOn(time.Sunday))

	spaced := Doctor{PracticeDays: "mon, tue"}
	assert.True(t, spaced.PracticesOn(time.Tuesday))
	assert.False(t, spaced.PracticesOn(time.Wednesday))
}
